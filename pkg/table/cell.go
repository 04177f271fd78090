package table

// CellProps describes one cell for RenderCell.
type CellProps struct {
	Key         string
	PrefixCls   string
	ClassName   string
	Ellipsis    bool
	Record      Record
	Index       int
	RenderIndex int
	DataIndex   DataIndex
	Render      RenderFunc
	Component   ElementFactory
	// Expanded marks a cell that hosts the expand affordance. It carries the
	// same node as AppendNode.
	Expanded        *Node
	AppendNode      *Node
	FixedInfo       FixedInfo
	AdditionalProps Attrs
}

// RenderCell is the cell primitive: it resolves the cell value, renders it,
// places the append node before the content and applies fixed-position and
// additional properties.
func RenderCell(p CellProps) *Node {
	value, _ := p.DataIndex.Lookup(p.Record)

	var content *Node
	if p.Render != nil {
		content = p.Render(value, p.Record, p.RenderIndex)
	} else if value != nil {
		content = Text(stringify(value))
	}

	var attrs Attrs
	switch p.FixedInfo.Side {
	case FixedLeft:
		attrs = Attrs{AttrLeft: p.FixedInfo.Offset}
	case FixedRight:
		attrs = Attrs{AttrRight: p.FixedInfo.Offset}
	}
	if p.Ellipsis && content != nil {
		if title := content.PlainText(); title != "" {
			attrs = Merge(attrs, Attrs{AttrTitle: title})
		}
	}
	attrs = Merge(attrs, p.AdditionalProps)

	className := ClassNames(
		cls(p.PrefixCls, "cell"),
		p.ClassName,
		when(p.FixedInfo.IsFixedLeft(), cls(p.PrefixCls, "cell-fix-left")),
		when(p.FixedInfo.LastFixLeft, cls(p.PrefixCls, "cell-fix-left-last")),
		when(p.FixedInfo.IsFixedRight(), cls(p.PrefixCls, "cell-fix-right")),
		when(p.FixedInfo.FirstFixRight, cls(p.PrefixCls, "cell-fix-right-first")),
		when(p.Ellipsis, cls(p.PrefixCls, "cell-ellipsis")),
		when(p.AppendNode != nil, cls(p.PrefixCls, "cell-with-append")),
	)

	cell := factoryOr(p.Component).Cell(className, attrs, p.AppendNode, content)
	cell.Key = p.Key
	return cell
}

func when(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
