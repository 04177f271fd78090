package table

import "strconv"

// RowAttrsFunc returns native properties for a row element.
type RowAttrsFunc func(record Record, index int) Attrs

// GetRowKeyFunc extracts the key of a record.
type GetRowKeyFunc func(record Record, index int) Key

// RowProps are the per-row inputs of Renderer.RenderRow.
type RowProps struct {
	Record      Record
	Index       int // position of the record in the whole dataset
	RenderIndex int // position among the rows currently rendered
	ClassName   string
	Style       Attrs
	RecordKey   Key
	// ExpandedKeys is a read-only snapshot of the expanded rows.
	ExpandedKeys       KeySet
	RowComponent       ElementFactory
	CellComponent      ElementFactory
	OnRow              RowAttrsFunc
	RowExpandable      func(Record) bool
	Indent             int
	RowKey             Key
	GetRowKey          GetRowKeyFunc
	ChildrenColumnName string
}

// LatchReader exposes the rendered-once flag of mounted rows.
type LatchReader interface {
	RenderedOnce(key Key) bool
}

// Renderer renders single rows against table and body settings.
// It holds no mutable state of its own; the rendered-once latch is read
// through Latches. A nil Latches reads every latch as unset.
type Renderer struct {
	Table   TableContext
	Body    BodyContext
	Latches LatchReader
}

func (r *Renderer) identity(p RowProps) Key {
	if p.RecordKey != "" {
		return p.RecordKey
	}
	return p.RowKey
}

// Expansion derives the expansion state of the row described by p.
func (r *Renderer) Expansion(p RowProps) ExpansionState {
	key := r.identity(p)
	renderedOnce := false
	if r.Latches != nil {
		renderedOnce = r.Latches.RenderedOnce(key)
	}
	return DeriveExpansion(ExpansionInput{
		RowKey:             key,
		ExpandedKeys:       p.ExpandedKeys,
		ExpandableType:     r.Body.ExpandableType,
		Record:             p.Record,
		RowExpandable:      p.RowExpandable,
		ChildrenColumnName: p.ChildrenColumnName,
		RenderedOnce:       renderedOnce,
	})
}

// Cells builds one cell per flattened column, in column order.
func (r *Renderer) Cells(p RowProps, st ExpansionState) []*Node {
	prefix := r.Table.PrefixCls
	columns := r.Body.FlattenColumns
	keys := ColumnsKey(columns)

	cells := make([]*Node, 0, len(columns))
	for colIndex, column := range columns {
		if column == nil {
			continue
		}
		var appendNode *Node
		if colIndex == r.Body.ExpandIconColumnIndex && st.NestExpandable {
			appendNode = r.appendNode(p, st)
		}

		var additional Attrs
		if column.OnCell != nil {
			additional = column.OnCell(p.Record, p.Index)
		}

		cells = append(cells, RenderCell(CellProps{
			Key:             keys[colIndex],
			PrefixCls:       prefix,
			ClassName:       column.ClassName,
			Ellipsis:        column.Ellipsis,
			Record:          p.Record,
			Index:           p.Index,
			RenderIndex:     p.RenderIndex,
			DataIndex:       column.DataIndex,
			Render:          column.Render,
			Component:       p.CellComponent,
			Expanded:        appendNode,
			AppendNode:      appendNode,
			FixedInfo:       r.Table.fixedInfo(colIndex),
			AdditionalProps: additional,
		}))
	}
	return cells
}

// appendNode is the indent spacer plus expand icon injected in nest mode.
func (r *Renderer) appendNode(p RowProps, st ExpansionState) *Node {
	prefix := r.Table.PrefixCls
	spacer := Span(
		ClassNames(cls(prefix, "row-indent"), "indent-level-"+strconv.Itoa(p.Indent)),
		Attrs{AttrPaddingLeft: r.Body.IndentSize * p.Indent},
	)
	expandIcon := r.Body.ExpandIcon
	if expandIcon == nil {
		expandIcon = DefaultExpandIcon
	}
	icon := expandIcon(ExpandIconProps{
		PrefixCls:  prefix,
		Expanded:   st.Expanded,
		Expandable: st.HasNestChildren,
		Record:     p.Record,
		OnExpand:   r.Body.OnTriggerExpand,
	})
	return Fragment(spacer, icon)
}

// BaseRow wraps the cells of p in the row element.
func (r *Renderer) BaseRow(p RowProps, st ExpansionState) *Node {
	prefix := r.Table.PrefixCls

	var custom string
	if r.Body.RowClassName != nil {
		custom = r.Body.RowClassName(p.Record, p.Index, p.Indent)
	}
	className := ClassNames(
		p.ClassName,
		cls(prefix, "row"),
		cls(prefix, "row-level-"+strconv.Itoa(p.Indent)),
		custom,
	)

	var rowAttrs Attrs
	if p.OnRow != nil {
		rowAttrs = p.OnRow(p.Record, p.Index)
	}
	attrs := Merge(Attrs{AttrRowKey: string(r.identity(p))}, p.Style, rowAttrs)

	row := factoryOr(p.RowComponent).Row(className, attrs, r.Cells(p, st)...)
	if r.Body.ExpandRowByClick && st.MergedExpandable && r.Body.OnTriggerExpand != nil {
		record, trigger := p.Record, r.Body.OnTriggerExpand
		row.OnActivate = func() { trigger(record) }
	}
	return row
}

// ExpandedRow builds the detail sub-row, or returns nil when the row has
// never been expanded or cannot carry one.
func (r *Renderer) ExpandedRow(p RowProps, st ExpansionState) *Node {
	if !st.MountDetail() {
		return nil
	}
	prefix := r.Table.PrefixCls

	var content *Node
	if r.Body.ExpandedRowRender != nil {
		content = r.Body.ExpandedRowRender(p.Record, p.Index, p.Indent+1, st.Expanded)
	}

	var custom string
	if r.Body.ExpandedRowClassName != nil {
		custom = r.Body.ExpandedRowClassName(p.Record, p.Index, p.Indent)
	}

	return RenderExpandedRow(ExpandedRowProps{
		PrefixCls: prefix,
		Expanded:  st.Expanded,
		ClassName: ClassNames(
			cls(prefix, "expanded-row"),
			cls(prefix, "expanded-row-level-"+strconv.Itoa(p.Indent+1)),
			custom,
		),
		Component:     p.RowComponent,
		CellComponent: p.CellComponent,
		ColSpan:       len(r.Body.FlattenColumns),
		IsEmpty:       false,
		Children:      content,
	})
}

// RenderRow renders the base row followed by the detail sub-row, if any, as
// one fragment keyed by the row key.
func (r *Renderer) RenderRow(p RowProps) *Node {
	st := r.Expansion(p)
	frag := Fragment(r.BaseRow(p, st), r.ExpandedRow(p, st))
	frag.Key = string(r.identity(p))
	return frag
}
