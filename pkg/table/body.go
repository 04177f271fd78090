package table

// DefaultEmptyText is shown by Body when there are no records.
const DefaultEmptyText = "No Data"

// Body renders a list of records and owns the rendered-once latches of its
// rows. It plays the part of the parent controller for Renderer: rows are
// mounted when they first appear, unmounted when they disappear, and the
// latch hook runs once per pass through Commit.
type Body struct {
	Renderer *Renderer

	RowComponent       ElementFactory
	CellComponent      ElementFactory
	GetRowKey          GetRowKeyFunc
	ChildrenColumnName string
	RowExpandable      func(Record) bool
	OnRow              RowAttrsFunc
	ClassName          func(record Record, renderIndex int) string
	EmptyText          string

	latches *LatchStore
	last    []FlatRecord
}

// NewBody creates a body around r. The body installs its latch store as
// r.Latches.
func NewBody(r *Renderer) *Body {
	b := &Body{Renderer: r, latches: NewLatchStore()}
	r.Latches = b.latches
	return b
}

// Latches returns the latch store of the body.
func (b *Body) Latches() *LatchStore { return b.latches }

// Rows returns the rows of the last render pass.
func (b *Body) Rows() []FlatRecord { return b.last }

// Render renders every visible record. expanded must not be mutated until the
// pass has been committed.
func (b *Body) Render(records []Record, expanded KeySet) []*Node {
	childrenField := ""
	if b.Renderer.Body.ExpandableType == ExpandableNest {
		childrenField = b.ChildrenColumnName
	}
	flat := FlattenRecords(records, childrenField, expanded, b.GetRowKey)
	b.last = flat

	live := make([]Key, 0, len(flat))
	for _, fr := range flat {
		b.latches.Mount(fr.Key)
		live = append(live, fr.Key)
	}
	b.latches.Retain(live)

	if len(flat) == 0 {
		return []*Node{b.placeholder()}
	}

	nodes := make([]*Node, 0, len(flat))
	for _, fr := range flat {
		var className string
		if b.ClassName != nil {
			className = b.ClassName(fr.Record, fr.RenderIndex)
		}
		nodes = append(nodes, b.Renderer.RenderRow(RowProps{
			Record:             fr.Record,
			Index:              fr.Index,
			RenderIndex:        fr.RenderIndex,
			ClassName:          className,
			RecordKey:          fr.Key,
			ExpandedKeys:       expanded,
			RowComponent:       b.RowComponent,
			CellComponent:      b.CellComponent,
			OnRow:              b.OnRow,
			RowExpandable:      b.RowExpandable,
			Indent:             fr.Indent,
			RowKey:             fr.Key,
			GetRowKey:          b.GetRowKey,
			ChildrenColumnName: b.ChildrenColumnName,
		}))
	}
	return nodes
}

// Commit runs the post-commit latch hook for every row of the last pass.
// Call it after the output of Render has been displayed.
func (b *Body) Commit(expanded KeySet) {
	for _, fr := range b.last {
		b.latches.Commit(fr.Key, expanded.Has(fr.Key))
	}
}

func (b *Body) placeholder() *Node {
	text := b.EmptyText
	if text == "" {
		text = DefaultEmptyText
	}
	prefix := b.Renderer.Table.PrefixCls
	return RenderExpandedRow(ExpandedRowProps{
		PrefixCls:     prefix,
		Expanded:      true,
		Component:     b.RowComponent,
		CellComponent: b.CellComponent,
		ColSpan:       len(b.Renderer.Body.FlattenColumns),
		IsEmpty:       true,
		Children:      Text(text),
	})
}
