package table

import "strconv"

// RenderFunc turns a cell value into displayable content. renderIndex is the
// position of the row among the rows currently rendered.
type RenderFunc func(value any, record Record, renderIndex int) *Node

// CellPropsFunc returns extra native properties for one cell of a record.
type CellPropsFunc func(record Record, rowIndex int) Attrs

// Column describes one cell of every row. Grouped headers are expressed
// through Children; rows only ever see the flattened leaves.
type Column struct {
	Key       string
	Title     string
	DataIndex DataIndex
	Render    RenderFunc
	OnCell    CellPropsFunc
	ClassName string
	Ellipsis  bool
	Width     int
	Fixed     FixedSide

	Children []*Column
}

// FlattenColumns resolves grouped columns into the ordered leaf sequence.
// Leaves of a fixed group inherit the group's side unless they set their own.
func FlattenColumns(columns []*Column) []*Column {
	var out []*Column
	var walk func(cols []*Column, fixed FixedSide)
	walk = func(cols []*Column, fixed FixedSide) {
		for _, c := range cols {
			if c == nil {
				continue
			}
			side := c.Fixed
			if side == FixedNone {
				side = fixed
			}
			if len(c.Children) > 0 {
				walk(c.Children, side)
				continue
			}
			if side != c.Fixed {
				leaf := *c
				leaf.Fixed = side
				out = append(out, &leaf)
				continue
			}
			out = append(out, c)
		}
	}
	walk(columns, FixedNone)
	return out
}

// ColumnsKey derives one reconciliation key per column. Columns without an
// explicit key use their ordinal position. A key already taken in the row is
// suffixed with "_next" until it is unique.
func ColumnsKey(columns []*Column) []string {
	keys := make([]string, 0, len(columns))
	taken := make(map[string]bool, len(columns))
	for i, c := range columns {
		key := ""
		if c != nil {
			key = c.Key
		}
		if key == "" {
			key = strconv.Itoa(i)
		}
		for taken[key] {
			key += "_next"
		}
		taken[key] = true
		keys = append(keys, key)
	}
	return keys
}

// FixedInfoList computes sticky offsets for flattened columns from their
// widths. Entry i is aligned with columns[i].
func FixedInfoList(columns []*Column) []FixedInfo {
	n := len(columns)
	infos := make([]FixedInfo, n)

	left := 0
	for i, c := range columns {
		if c.Fixed != FixedLeft {
			continue
		}
		infos[i] = FixedInfo{Side: FixedLeft, Offset: left}
		left += max(c.Width, 0)
	}
	right := 0
	for i := n - 1; i >= 0; i-- {
		c := columns[i]
		if c.Fixed != FixedRight {
			continue
		}
		infos[i] = FixedInfo{Side: FixedRight, Offset: right}
		right += max(c.Width, 0)
	}

	for i := range infos {
		switch infos[i].Side {
		case FixedLeft:
			infos[i].LastFixLeft = i == n-1 || infos[i+1].Side != FixedLeft
		case FixedRight:
			infos[i].FirstFixRight = i == 0 || infos[i-1].Side != FixedRight
		}
	}
	return infos
}
