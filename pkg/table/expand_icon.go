package table

// Glyphs used by DefaultExpandIcon.
const (
	IconExpanded  = "▼"
	IconCollapsed = "▶"
	IconSpaced    = " "
)

// DefaultExpandIcon renders a toggle glyph. Records that cannot expand get a
// blank placeholder of the same width so sibling rows stay aligned.
func DefaultExpandIcon(p ExpandIconProps) *Node {
	base := cls(p.PrefixCls, "row-expand-icon")
	if !p.Expandable {
		return Span(ClassNames(base, cls(p.PrefixCls, "row-spaced")), nil, Text(IconSpaced))
	}

	icon := Span(ClassNames(
		base,
		when(p.Expanded, cls(p.PrefixCls, "row-expanded")),
		when(!p.Expanded, cls(p.PrefixCls, "row-collapsed")),
	), nil)
	if p.Expanded {
		icon.Children = []*Node{Text(IconExpanded)}
	} else {
		icon.Children = []*Node{Text(IconCollapsed)}
	}
	if p.OnExpand != nil {
		record, onExpand := p.Record, p.OnExpand
		icon.OnActivate = func() { onExpand(record) }
	}
	return icon
}
