package table

// ExpansionInput is everything the expansion state of one row depends on.
type ExpansionInput struct {
	RowKey             Key
	ExpandedKeys       KeySet
	ExpandableType     ExpandableType
	Record             Record
	RowExpandable      func(Record) bool
	ChildrenColumnName string
	RenderedOnce       bool
}

// ExpansionState is the derived expansion state of one row.
type ExpansionState struct {
	// Expanded is membership of the row in the expanded set.
	Expanded bool
	// RenderedOnce is the latch value the state was derived with.
	RenderedOnce bool
	// RowSupportExpand is true when the row can carry a detail sub-row.
	RowSupportExpand bool
	// NestExpandable is true when the table expands nested children inline.
	NestExpandable bool
	// HasNestChildren is true when nest mode is on and the record has children.
	HasNestChildren bool
	// MergedExpandable is true when the row can expand in either mode.
	MergedExpandable bool
}

// MountDetail reports whether the detail sub-row must exist in the output.
func (s ExpansionState) MountDetail() bool {
	return s.RowSupportExpand && (s.RenderedOnce || s.Expanded)
}

// DeriveExpansion computes the expansion state of a row. It has no side
// effects; the latch is advanced separately by LatchStore.Commit.
func DeriveExpansion(in ExpansionInput) ExpansionState {
	s := ExpansionState{
		Expanded:     in.ExpandedKeys.Has(in.RowKey),
		RenderedOnce: in.RenderedOnce,
	}
	s.RowSupportExpand = in.ExpandableType == ExpandableRow &&
		(in.RowExpandable == nil || in.RowExpandable(in.Record))
	s.NestExpandable = in.ExpandableType == ExpandableNest
	s.HasNestChildren = s.NestExpandable && len(in.Record.Children(in.ChildrenColumnName)) > 0
	s.MergedExpandable = s.RowSupportExpand || s.NestExpandable
	return s
}
