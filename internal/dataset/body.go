package dataset

import "github.com/joshuapare/gridkit/pkg/table"

// Body builds a table body configured by the dataset settings. onExpand
// is installed as the expand trigger of icons and clickable rows.
func (d *Dataset) Body(onExpand func(table.Record)) *table.Body {
	columns := d.FlattenColumns()
	r := &table.Renderer{
		Table: table.TableContext{
			PrefixCls:     d.Settings.Prefix,
			FixedInfoList: table.FixedInfoList(columns),
		},
		Body: table.BodyContext{
			FlattenColumns:        columns,
			ExpandableType:        d.Expandable,
			ExpandRowByClick:      d.Settings.ExpandRowByClick,
			OnTriggerExpand:       onExpand,
			IndentSize:            d.Settings.IndentSize,
			ExpandIconColumnIndex: d.Settings.ExpandIconColumn,
		},
	}
	if d.Expandable == table.ExpandableRow {
		r.Body.ExpandedRowRender = d.DetailRenderer()
	}

	b := table.NewBody(r)
	b.GetRowKey = d.RowKey()
	b.ChildrenColumnName = d.Settings.ChildrenField
	b.RowExpandable = d.RowExpandable()
	b.EmptyText = d.Settings.EmptyText
	return b
}

// AllKeys returns the key of every record, descending into children in
// nest mode. Expanding all of them shows the whole dataset.
func (d *Dataset) AllKeys() table.KeySet {
	childrenField := ""
	if d.Expandable == table.ExpandableNest {
		childrenField = d.Settings.ChildrenField
	}
	keys := table.NewKeySet()
	for {
		before := len(keys)
		for _, fr := range table.FlattenRecords(d.Records, childrenField, keys, d.RowKey()) {
			keys.Add(fr.Key)
		}
		if len(keys) == before {
			return keys
		}
	}
}
