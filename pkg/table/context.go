package table

// TableContext carries table-wide settings shared by every row.
type TableContext struct {
	PrefixCls string
	// FixedInfoList is index-aligned with the flattened columns. Missing
	// entries are unfixed.
	FixedInfoList []FixedInfo
}

func (t TableContext) fixedInfo(colIndex int) FixedInfo {
	if colIndex < 0 || colIndex >= len(t.FixedInfoList) {
		return FixedInfo{}
	}
	return t.FixedInfoList[colIndex]
}

// RowClassNameFunc returns an extra class for a row.
type RowClassNameFunc func(record Record, index, indent int) string

// ExpandIconProps is what an expand icon renderer receives.
type ExpandIconProps struct {
	PrefixCls  string
	Expanded   bool
	Expandable bool
	Record     Record
	OnExpand   func(Record)
}

// ExpandIconFunc renders the expand/collapse affordance.
type ExpandIconFunc func(props ExpandIconProps) *Node

// ExpandedRowRenderFunc renders the detail content of a record. indent is
// the nesting level of the detail content itself.
type ExpandedRowRenderFunc func(record Record, index, indent int, expanded bool) *Node

// BodyContext carries settings shared by the rows of one table body.
type BodyContext struct {
	FlattenColumns       []*Column
	ExpandableType       ExpandableType
	ExpandRowByClick     bool
	OnTriggerExpand      func(Record)
	RowClassName         RowClassNameFunc
	ExpandedRowClassName RowClassNameFunc
	IndentSize           int
	ExpandIcon           ExpandIconFunc
	ExpandedRowRender    ExpandedRowRenderFunc
	// ExpandIconColumnIndex is the column hosting the expand icon in nest
	// mode. The zero value is the first column.
	ExpandIconColumnIndex int
}
