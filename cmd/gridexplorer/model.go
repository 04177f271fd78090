package main

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/gridkit/internal/dataset"
	"github.com/joshuapare/gridkit/internal/logger"
	"github.com/joshuapare/gridkit/internal/virtuallist"
	"github.com/joshuapare/gridkit/pkg/table"
	"github.com/joshuapare/gridkit/pkg/table/display"
)

// chromeHeight is the number of lines around the row list: title, column
// header and status bar.
const chromeHeight = 3

// cursorGutter is the width of the selection marker before every line.
const cursorGutter = 2

// Model is the explorer state.
type Model struct {
	ds   *dataset.Dataset
	path string
	keys KeyMap

	body *table.Body
	// expanded is replaced, never mutated, so the set a pass rendered with
	// stays intact until that pass is committed.
	expanded table.KeySet
	trigger  *expandTrigger

	nodes    []*table.Node
	src      *lineSource
	list     *virtuallist.Renderer
	rowStart []int // first line of every rendered row

	cursor  int
	scrollX int
	width   int
	height  int

	showHelp bool
	status   string
	statusOK bool
	err      error

	// copy writes to the system clipboard.
	copy func(string) error
}

// expandTrigger collects the records whose expand control was activated.
type expandTrigger struct {
	records []table.Record
}

func (t *expandTrigger) fire(r table.Record) {
	t.records = append(t.records, r)
}

func (t *expandTrigger) take() int {
	n := len(t.records)
	t.records = t.records[:0]
	return n
}

// lineSource feeds rendered lines to the virtual list.
type lineSource struct {
	lines []display.Line
}

func (s *lineSource) Len() int { return len(s.lines) }

func (s *lineSource) Line(i int, selected bool, width int) string {
	marker := "  "
	if selected && !s.lines[i].Detail {
		marker = cursorStyle.Render("▌ ")
	}
	return marker + s.lines[i].Text
}

// NewModel creates the explorer for ds, loaded from path.
func NewModel(ds *dataset.Dataset, path string) Model {
	trigger := &expandTrigger{}
	src := &lineSource{}
	list := virtuallist.New(src)
	list.Empty = ds.Settings.EmptyText

	m := Model{
		ds:       ds,
		path:     path,
		keys:     DefaultKeyMap(),
		body:     ds.Body(trigger.fire),
		expanded: table.NewKeySet(),
		trigger:  trigger,
		src:      src,
		list:     list,
		copy:     clipboard.WriteAll,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// rows returns the rows of the last render pass.
func (m *Model) rows() []table.FlatRecord {
	return m.body.Rows()
}

// current returns the row under the cursor.
func (m *Model) current() (table.FlatRecord, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return table.FlatRecord{}, false
	}
	return rows[m.cursor], true
}

// expansion derives the expansion state of fr against the current set.
func (m *Model) expansion(fr table.FlatRecord) table.ExpansionState {
	return m.body.Renderer.Expansion(table.RowProps{
		Record:             fr.Record,
		Index:              fr.Index,
		RenderIndex:        fr.RenderIndex,
		RecordKey:          fr.Key,
		ExpandedKeys:       m.expanded,
		RowExpandable:      m.body.RowExpandable,
		Indent:             fr.Indent,
		ChildrenColumnName: m.body.ChildrenColumnName,
	})
}

func canExpand(st table.ExpansionState) bool {
	return st.RowSupportExpand || st.HasNestChildren
}

// setExpanded replaces the expanded set with a copy that has key added or
// removed.
func (m *Model) setExpanded(key table.Key, on bool) {
	next := m.expanded.Clone()
	if on {
		next.Add(key)
		logger.Debug("expand row", "key", key)
	} else {
		next.Delete(key)
		logger.Debug("collapse row", "key", key)
	}
	m.expanded = next
}

// refresh runs a render pass and lays out its lines.
func (m *Model) refresh() {
	selected := m.cursor
	selectedClass := m.ds.Settings.Prefix + "-row-selected"
	m.body.ClassName = func(_ table.Record, renderIndex int) string {
		if renderIndex == selected {
			return selectedClass
		}
		return ""
	}

	m.nodes = m.body.Render(m.ds.Records, m.expanded)
	if n := len(m.rows()); m.cursor >= n {
		m.cursor = max(n-1, 0)
		if m.cursor != selected {
			m.refresh()
			return
		}
	}

	m.src.lines = display.RenderRows(m.nodes, m.body.Renderer.Table.FixedInfoList, m.displayOptions())
	m.rowStart = nil
	seen := make(map[string]bool)
	for i, l := range m.src.lines {
		if !l.Detail && !seen[l.RowKey] {
			seen[l.RowKey] = true
			m.rowStart = append(m.rowStart, i)
		}
	}

	start, end := m.rowLines(m.cursor)
	m.list.Select(start, end)
}

// rowLines returns the line range of row i, detail lines included.
func (m *Model) rowLines(i int) (start, end int) {
	if i < 0 || i >= len(m.rowStart) {
		return 0, 1
	}
	start = m.rowStart[i]
	end = len(m.src.lines)
	if i+1 < len(m.rowStart) {
		end = m.rowStart[i+1]
	}
	return start, end
}

func (m *Model) displayOptions() display.Options {
	columns := m.body.Renderer.Body.FlattenColumns
	return display.Options{
		Widths:     display.Widths(columns, dataset.DefaultColumnWidth),
		Width:      max(m.width-cursorGutter, 0),
		ScrollX:    m.scrollX,
		Prefix:     m.ds.Settings.Prefix,
		Theme:      tableTheme(),
		IndentSize: m.ds.Settings.IndentSize,
	}
}

// scrollableColumns counts the columns that horizontal scrolling moves.
func (m *Model) scrollableColumns() int {
	n := 0
	for _, f := range m.body.Renderer.Table.FixedInfoList {
		if f.Side == table.FixedNone {
			n++
		}
	}
	return n
}
