package table

import "strconv"

// FlatRecord is one visible row of a possibly nested dataset.
type FlatRecord struct {
	Record      Record
	Key         Key
	Indent      int
	Index       int // pre-order position in the whole dataset
	RenderIndex int // position among the visible rows
}

// IndexRowKey keys records by their dataset position.
func IndexRowKey(_ Record, index int) Key {
	return Key(strconv.Itoa(index))
}

// FieldRowKey keys records by the string form of field, falling back to the
// dataset position when the field is missing.
func FieldRowKey(field string) GetRowKeyFunc {
	return func(r Record, index int) Key {
		if v, ok := r[field]; ok && v != nil {
			return Key(stringify(v))
		}
		return IndexRowKey(r, index)
	}
}

// FlattenRecords lists the rows to render. When childrenField is set, the
// children of every expanded record follow it depth-first with one more level
// of indent; collapsed subtrees are skipped but still count towards Index.
func FlattenRecords(records []Record, childrenField string, expanded KeySet, getRowKey GetRowKeyFunc) []FlatRecord {
	if getRowKey == nil {
		getRowKey = IndexRowKey
	}
	var out []FlatRecord
	index := 0
	var walk func(level []Record, indent int, visible bool)
	walk = func(level []Record, indent int, visible bool) {
		for _, r := range level {
			key := getRowKey(r, index)
			if visible {
				out = append(out, FlatRecord{
					Record:      r,
					Key:         key,
					Indent:      indent,
					Index:       index,
					RenderIndex: len(out),
				})
			}
			index++
			if childrenField == "" {
				continue
			}
			if children := r.Children(childrenField); len(children) > 0 {
				walk(children, indent+1, visible && expanded.Has(key))
			}
		}
	}
	walk(records, 0, true)
	return out
}
