package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a row. It is used for expanded-set membership and for
// reconciliation of the row across render passes.
type Key string

// KeySet is a set of row keys. A nil KeySet is a valid empty set.
type KeySet map[Key]struct{}

// NewKeySet creates a set holding keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	if s == nil {
		return false
	}
	_, ok := s[k]
	return ok
}

// Add inserts k.
func (s KeySet) Add(k Key) { s[k] = struct{}{} }

// Delete removes k.
func (s KeySet) Delete(k Key) { delete(s, k) }

// Clone returns an independent copy. Owners hand clones to renderers so a
// render pass always sees a stable snapshot.
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Record is the data item a row represents.
type Record map[string]any

// Children returns the nested records stored under field. A missing field or a
// value that is not a sequence of records yields nil.
func (r Record) Children(field string) []Record {
	if r == nil || field == "" {
		return nil
	}
	switch v := r[field].(type) {
	case []Record:
		return v
	case []map[string]any:
		out := make([]Record, 0, len(v))
		for _, m := range v {
			out = append(out, Record(m))
		}
		return out
	case []any:
		out := make([]Record, 0, len(v))
		for _, item := range v {
			switch m := item.(type) {
			case Record:
				out = append(out, m)
			case map[string]any:
				out = append(out, Record(m))
			}
		}
		return out
	}
	return nil
}

// DataIndex is the path of a cell value inside a record. Each element is a
// map field or, for sequences, a decimal position.
type DataIndex []string

// String joins the path with dots.
func (d DataIndex) String() string { return strings.Join(d, ".") }

// Lookup walks the path through r. The second result is false when any step
// is missing.
func (d DataIndex) Lookup(r Record) (any, bool) {
	if len(d) == 0 {
		return nil, false
	}
	var cur any = r
	for _, step := range d {
		switch v := cur.(type) {
		case Record:
			next, ok := v[step]
			if !ok {
				return nil, false
			}
			cur = next
		case map[string]any:
			next, ok := v[step]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(step)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			cur = v[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Attrs holds native element properties such as colSpan, rowSpan or style
// overrides.
type Attrs map[string]any

// Int returns the integer stored under name.
func (a Attrs) Int(name string) (int, bool) {
	switch v := a[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Bool returns the boolean stored under name, false when absent.
func (a Attrs) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// ColSpan returns the colSpan attribute, 1 when unset.
func (a Attrs) ColSpan() int {
	if n, ok := a.Int(AttrColSpan); ok {
		return n
	}
	return 1
}

// RowSpan returns the rowSpan attribute, 1 when unset.
func (a Attrs) RowSpan() int {
	if n, ok := a.Int(AttrRowSpan); ok {
		return n
	}
	return 1
}

// Merge returns a new Attrs with the entries of each argument applied in
// order. Nil inputs are skipped; the result is nil when nothing was set.
func Merge(all ...Attrs) Attrs {
	var out Attrs
	for _, a := range all {
		for k, v := range a {
			if out == nil {
				out = make(Attrs)
			}
			out[k] = v
		}
	}
	return out
}

// Attribute names understood by the primitives and the display package.
const (
	AttrColSpan     = "colSpan"
	AttrRowSpan     = "rowSpan"
	AttrHidden      = "hidden"
	AttrTitle       = "title"
	AttrLeft        = "left"
	AttrRight       = "right"
	AttrPaddingLeft = "paddingLeft"
	AttrRowKey      = "data-row-key"
)

// ExpandableType selects which expansion UI a table uses.
type ExpandableType int

const (
	ExpandableNone ExpandableType = iota
	ExpandableRow                 // detail sub-row under each record
	ExpandableNest                // nested child records inline
)

func (t ExpandableType) String() string {
	switch t {
	case ExpandableRow:
		return "row"
	case ExpandableNest:
		return "nest"
	default:
		return "none"
	}
}

// ParseExpandableType parses "none", "row" or "nest". The empty string is none.
func ParseExpandableType(s string) (ExpandableType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ExpandableNone, nil
	case "row":
		return ExpandableRow, nil
	case "nest", "nested":
		return ExpandableNest, nil
	}
	return ExpandableNone, fmt.Errorf("table: unknown expandable type %q", s)
}

// FixedSide pins a column to an edge during horizontal scrolling.
type FixedSide int

const (
	FixedNone FixedSide = iota
	FixedLeft
	FixedRight
)

func (f FixedSide) String() string {
	switch f {
	case FixedLeft:
		return "left"
	case FixedRight:
		return "right"
	default:
		return ""
	}
}

// ParseFixedSide parses "left", "right" or "" (unfixed).
func ParseFixedSide(s string) (FixedSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FixedNone, nil
	case "left", "true":
		return FixedLeft, nil
	case "right":
		return FixedRight, nil
	}
	return FixedNone, fmt.Errorf("table: unknown fixed side %q", s)
}

// FixedInfo is the sticky-position metadata of one flattened column.
// The zero value is an unfixed column.
type FixedInfo struct {
	Side          FixedSide
	Offset        int  // distance from the pinned edge
	LastFixLeft   bool // rightmost of the left-pinned columns
	FirstFixRight bool // leftmost of the right-pinned columns
}

// IsFixedLeft reports whether the column is pinned left.
func (f FixedInfo) IsFixedLeft() bool { return f.Side == FixedLeft }

// IsFixedRight reports whether the column is pinned right.
func (f FixedInfo) IsFixedRight() bool { return f.Side == FixedRight }
