package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []Record {
	return []Record{
		{"id": "root", "name": "root", "children": []any{
			map[string]any{"id": "a", "name": "a"},
			map[string]any{"id": "b", "name": "b", "children": []any{
				map[string]any{"id": "b1", "name": "b1"},
			}},
		}},
		{"id": "other", "name": "other"},
	}
}

func newBody(mode ExpandableType) *Body {
	r := &Renderer{
		Table: TableContext{PrefixCls: "rc"},
		Body: BodyContext{
			FlattenColumns: []*Column{{Key: "name", DataIndex: DataIndex{"name"}}},
			ExpandableType: mode,
			IndentSize:     2,
			ExpandedRowRender: func(r Record, index, indent int, expanded bool) *Node {
				return Text("about " + r["name"].(string))
			},
		},
	}
	b := NewBody(r)
	b.GetRowKey = FieldRowKey("id")
	b.ChildrenColumnName = "children"
	return b
}

func TestFlattenRecords_Nested(t *testing.T) {
	flat := FlattenRecords(sampleTree(), "children", NewKeySet("root", "b"), FieldRowKey("id"))

	var keys []Key
	for _, fr := range flat {
		keys = append(keys, fr.Key)
	}
	assert.Equal(t, []Key{"root", "a", "b", "b1", "other"}, keys)
	assert.Equal(t, []int{0, 1, 1, 2, 0}, []int{flat[0].Indent, flat[1].Indent, flat[2].Indent, flat[3].Indent, flat[4].Indent})
	for i, fr := range flat {
		assert.Equal(t, i, fr.RenderIndex)
	}
}

func TestFlattenRecords_CollapsedChildrenStillCountTowardsIndex(t *testing.T) {
	flat := FlattenRecords(sampleTree(), "children", nil, FieldRowKey("id"))

	require.Len(t, flat, 2)
	assert.Equal(t, 0, flat[0].Index)
	assert.Equal(t, 4, flat[1].Index, "root has three descendants")
	assert.Equal(t, 1, flat[1].RenderIndex)
}

func TestFlattenRecords_DefaultKeys(t *testing.T) {
	flat := FlattenRecords([]Record{{}, {}}, "", nil, nil)
	assert.Equal(t, Key("0"), flat[0].Key)
	assert.Equal(t, Key("1"), flat[1].Key)
}

func TestBody_NestModeRendersExpandedChildren(t *testing.T) {
	b := newBody(ExpandableNest)

	rows := b.Render(sampleTree(), NewKeySet("root"))

	require.Len(t, rows, 4)
	assert.Equal(t, "root", rows[0].Key)
	assert.True(t, rows[1].Children[0].HasClass("rc-row-level-1"))
	assert.Equal(t, 4, b.Latches().Len())
}

func TestBody_RowModeLatchLifecycle(t *testing.T) {
	b := newBody(ExpandableRow)
	data := sampleTree()

	expanded := NewKeySet("other")
	rows := b.Render(data, expanded)
	b.Commit(expanded)
	require.Len(t, rows[1].Children, 2)

	collapsed := NewKeySet()
	rows = b.Render(data, collapsed)
	b.Commit(collapsed)
	require.Len(t, rows[1].Children, 2, "collapsed detail row stays mounted")
	assert.True(t, rows[1].Children[1].Attrs.Bool(AttrHidden))

	rows = b.Render(data[:1], collapsed)
	b.Commit(collapsed)
	require.Len(t, rows, 1)
	assert.False(t, b.Latches().Mounted("other"))

	rows = b.Render(data, collapsed)
	require.Len(t, rows[1].Children, 1, "a row that left and came back starts unexpanded")
}

func TestBody_ChildrenIgnoredOutsideNestMode(t *testing.T) {
	b := newBody(ExpandableRow)

	rows := b.Render(sampleTree(), NewKeySet("root"))

	assert.Len(t, rows, 2)
}

func TestBody_EmptyPlaceholder(t *testing.T) {
	b := newBody(ExpandableNone)
	b.EmptyText = "nothing here"

	rows := b.Render(nil, nil)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].HasClass("rc-placeholder"))
	assert.Equal(t, "nothing here", rows[0].PlainText())
	assert.Equal(t, 1, rows[0].Children[0].Attrs.ColSpan())
}

func TestBody_CallerClassName(t *testing.T) {
	b := newBody(ExpandableNone)
	b.ClassName = func(r Record, renderIndex int) string {
		if renderIndex == 1 {
			return "selected"
		}
		return ""
	}

	rows := b.Render(sampleTree(), nil)

	assert.False(t, rows[0].Children[0].HasClass("selected"))
	assert.True(t, rows[1].Children[0].HasClass("selected"))
}
