package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/gridkit/internal/dataset"
	"github.com/joshuapare/gridkit/internal/logger"
	"github.com/joshuapare/gridkit/pkg/table"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-chromeHeight, 1))
		m.refresh()
		return m, m.list.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		logger.Info("quit requested")
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Esc) {
			m.showHelp = false
		}
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.rows()))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows()))

	case key.Matches(msg, m.keys.Expand):
		m.expandCurrent()
	case key.Matches(msg, m.keys.Collapse):
		m.collapseCurrent()
	case key.Matches(msg, m.keys.Toggle):
		m.activateCurrent()
	case key.Matches(msg, m.keys.ExpandAll):
		m.expanded = m.ds.AllKeys()
		logger.Debug("expand all", "count", len(m.expanded))
	case key.Matches(msg, m.keys.CollapseAll):
		m.expanded = table.NewKeySet()
		m.cursor = 0
		logger.Debug("collapse all")

	case key.Matches(msg, m.keys.ScrollLeft):
		m.scrollX = max(m.scrollX-1, 0)
	case key.Matches(msg, m.keys.ScrollRight):
		m.scrollX = min(m.scrollX+1, max(m.scrollableColumns()-1, 0))

	case key.Matches(msg, m.keys.CopyKey):
		m.copyCurrentKey()
	case key.Matches(msg, m.keys.CopyRecord):
		m.copyCurrentRecord()

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m *Model) pageSize() int {
	return max(m.height-chromeHeight, 1)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.rows())
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

// expandCurrent expands the current row. An expanded nest row moves the
// cursor to its first child instead.
func (m *Model) expandCurrent() {
	fr, ok := m.current()
	if !ok {
		return
	}
	st := m.expansion(fr)
	if !canExpand(st) {
		return
	}
	if !st.Expanded {
		m.setExpanded(fr.Key, true)
		return
	}
	if st.HasNestChildren {
		m.moveCursor(1)
	}
}

// collapseCurrent collapses the current row, or moves to the parent row of
// a collapsed nested row.
func (m *Model) collapseCurrent() {
	fr, ok := m.current()
	if !ok {
		return
	}
	if m.expanded.Has(fr.Key) {
		m.setExpanded(fr.Key, false)
		return
	}
	if fr.Indent == 0 {
		return
	}
	rows := m.rows()
	for i := m.cursor - 1; i >= 0; i-- {
		if rows[i].Indent < fr.Indent {
			m.cursor = i
			return
		}
	}
}

// activateCurrent activates the current row the way a click would: the
// whole row when it expands by click, otherwise its expand icon.
func (m *Model) activateCurrent() {
	fr, ok := m.current()
	if !ok || m.cursor >= len(m.nodes) {
		return
	}
	frag := m.nodes[m.cursor]
	if len(frag.Children) == 0 {
		return
	}
	row := frag.Children[0]

	target := row.OnActivate
	if target == nil {
		if icon := row.Find(func(n *table.Node) bool { return n.OnActivate != nil }); icon != nil {
			target = icon.OnActivate
		}
	}
	if target == nil {
		// Row mode without click expansion has no rendered control.
		if st := m.expansion(fr); st.RowSupportExpand {
			m.setExpanded(fr.Key, !st.Expanded)
		}
		return
	}

	target()
	if m.trigger.take() > 0 && canExpand(m.expansion(fr)) {
		m.setExpanded(fr.Key, !m.expanded.Has(fr.Key))
	}
}

func (m *Model) copyCurrentKey() {
	fr, ok := m.current()
	if !ok {
		return
	}
	m.setStatus(m.copy(string(fr.Key)), fmt.Sprintf("Copied key %s", fr.Key))
}

func (m *Model) copyCurrentRecord() {
	fr, ok := m.current()
	if !ok {
		return
	}
	text, err := dataset.MarshalRecord(fr.Record, m.ds.Settings.ChildrenField)
	if err == nil {
		err = m.copy(text)
	}
	m.setStatus(err, fmt.Sprintf("Copied record %s", fr.Key))
}

func (m *Model) setStatus(err error, ok string) {
	if err != nil {
		logger.Warn("clipboard copy failed", "error", err)
		m.status = fmt.Sprintf("Copy failed: %v", err)
		m.statusOK = false
		return
	}
	m.status = ok
	m.statusOK = true
}
