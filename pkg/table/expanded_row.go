package table

// ExpandedRowProps describes a full-width sub-row.
type ExpandedRowProps struct {
	PrefixCls     string
	Expanded      bool
	ClassName     string
	Component     ElementFactory
	CellComponent ElementFactory
	ColSpan       int
	IsEmpty       bool
	Children      *Node
}

// RenderExpandedRow is the expanded-sub-row primitive. It wraps children in a
// single cell spanning ColSpan columns. A collapsed row stays in the tree and
// is marked hidden.
func RenderExpandedRow(p ExpandedRowProps) *Node {
	var attrs Attrs
	if !p.Expanded {
		attrs = Attrs{AttrHidden: true}
	}
	className := ClassNames(p.ClassName, when(p.IsEmpty, cls(p.PrefixCls, "placeholder")))

	cell := factoryOr(p.CellComponent).Cell(
		cls(p.PrefixCls, "cell"),
		Attrs{AttrColSpan: p.ColSpan},
		p.Children,
	)
	return factoryOr(p.Component).Row(className, attrs, cell)
}
