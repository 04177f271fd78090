package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/gridkit/internal/dataset"
	"github.com/joshuapare/gridkit/pkg/table"
)

func newTestModel(t *testing.T, name string) Model {
	t.Helper()
	ds, err := dataset.Load(filepath.Join("..", "..", "testdata", name))
	if err != nil {
		t.Fatalf("failed to load %s: %v", name, err)
	}
	m := NewModel(ds, name)
	m.copy = func(string) error { return nil }
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

func rowKeys(m Model) []string {
	var keys []string
	for _, fr := range m.rows() {
		keys = append(keys, string(fr.Key))
	}
	return keys
}

func assertRows(t *testing.T, m Model, want ...string) {
	t.Helper()
	got := rowKeys(m)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestNewModel_InitialRows(t *testing.T) {
	m := newTestModel(t, "files.yaml")

	assertRows(t, m, "/etc", "/home", "/README.md")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if len(m.rowStart) != 3 {
		t.Errorf("rowStart = %v, want 3 entries", m.rowStart)
	}
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t, "files.yaml")

	tests := []struct {
		name string
		key  tea.KeyMsg
		want int
	}{
		{"up at top stays", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"j", runes("j"), 2},
		{"down at bottom stays", runes("j"), 2},
		{"home", runes("g"), 0},
		{"end", runes("G"), 2},
		{"k", runes("k"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m = press(t, m, tt.key)
			if m.cursor != tt.want {
				t.Errorf("cursor = %d, want %d", m.cursor, tt.want)
			}
		})
	}
}

func TestExpandCollapse_Nest(t *testing.T) {
	m := newTestModel(t, "files.yaml")

	m = press(t, m, runes("l"))
	assertRows(t, m, "/etc", "/etc/hosts", "/etc/ssh", "/home", "/README.md")
	if !m.expanded.Has("/etc") {
		t.Fatalf("expected /etc expanded")
	}

	// Expanding an expanded row moves to its first child.
	m = press(t, m, runes("l"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// A leaf does nothing on expand.
	m = press(t, m, runes("l"))
	if m.cursor != 1 || len(m.expanded) != 1 {
		t.Errorf("leaf expand changed state: cursor=%d expanded=%v", m.cursor, m.expanded)
	}

	// Collapsing a collapsed child goes to its parent.
	m = press(t, m, runes("h"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m = press(t, m, runes("h"))
	assertRows(t, m, "/etc", "/home", "/README.md")
}

func TestCollapse_ClampsCursor(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	m = press(t, m, runes("E"), runes("G"))
	if got := rowKeys(m)[m.cursor]; got != "/README.md" {
		t.Fatalf("cursor row = %s, want /README.md", got)
	}

	m = press(t, m, runes("C"))
	assertRows(t, m, "/etc", "/home", "/README.md")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestExpandAll(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	m = press(t, m, runes("E"))
	assertRows(t, m,
		"/etc", "/etc/hosts", "/etc/ssh", "/etc/ssh/sshd_config",
		"/home", "/home/ada", "/README.md")
}

func TestToggle_ClickExpands(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	if !m.body.Renderer.Body.ExpandRowByClick {
		t.Fatal("files.yaml should expand rows by click")
	}
	if m.nodes[0].Children[0].OnActivate == nil {
		t.Fatal("expected the base row to be clickable")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.expanded.Has("/etc") {
		t.Fatalf("enter should expand /etc")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.expanded.Has("/etc") {
		t.Fatalf("second enter should collapse /etc")
	}

	// Leaves are clickable but cannot expand.
	m = press(t, m, runes("G"), tea.KeyMsg{Type: tea.KeySpace})
	if len(m.expanded) != 0 {
		t.Errorf("leaf toggle expanded %v", m.expanded)
	}
}

func TestToggle_IconWithoutClick(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	m.body.Renderer.Body.ExpandRowByClick = false
	m.refresh()

	if m.nodes[0].Children[0].OnActivate != nil {
		t.Fatal("row should not be clickable")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.expanded.Has("/etc") {
		t.Fatalf("enter should activate the expand icon")
	}
}

func detailLines(m Model) []string {
	var out []string
	for _, l := range m.src.lines {
		if l.Detail {
			out = append(out, l.Text)
		}
	}
	return out
}

func TestRowMode_DetailLatch(t *testing.T) {
	m := newTestModel(t, "servers.yaml")
	assertRows(t, m, "web-01", "web-02", "db-01")

	m = press(t, m, runes("l"))
	lines := detailLines(m)
	if len(lines) != 1 || !strings.Contains(lines[0], "Primary frontend") {
		t.Fatalf("detail lines = %q", lines)
	}
	_ = m.View()

	m = press(t, m, runes("h"))
	if got := detailLines(m); len(got) != 0 {
		t.Errorf("collapsed row still shows %q", got)
	}
	frag := m.nodes[0]
	if len(frag.Children) != 2 {
		t.Fatalf("expected the detail row to stay mounted, got %d children", len(frag.Children))
	}
	if !frag.Children[1].Attrs.Bool(table.AttrHidden) {
		t.Errorf("collapsed detail row should be hidden")
	}
}

func TestRowMode_NoLatchWithoutView(t *testing.T) {
	m := newTestModel(t, "servers.yaml")

	m = press(t, m, runes("l"), runes("h"))
	if len(m.nodes[0].Children) != 1 {
		t.Errorf("detail row kept without a committed view: %d children", len(m.nodes[0].Children))
	}
}

func TestRowMode_NotExpandable(t *testing.T) {
	m := newTestModel(t, "servers.yaml")

	m = press(t, m, runes("j"), runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.expanded) != 0 {
		t.Errorf("web-02 has no notes but expanded: %v", m.expanded)
	}

	m = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.expanded.Has("db-01") {
		t.Errorf("enter should toggle db-01")
	}
}

func TestSelectionFollowsDetail(t *testing.T) {
	m := newTestModel(t, "servers.yaml")
	m = press(t, m, runes("l"))

	start, end := m.list.Selection()
	if start != 0 || end != 2 {
		t.Errorf("selection = [%d,%d), want [0,2)", start, end)
	}

	m = press(t, m, runes("j"))
	start, end = m.list.Selection()
	if start != 2 || end != 3 {
		t.Errorf("selection = [%d,%d), want [2,3)", start, end)
	}
}

func TestHorizontalScroll(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	if n := m.scrollableColumns(); n != 3 {
		t.Fatalf("scrollableColumns = %d, want 3", n)
	}

	right := tea.KeyMsg{Type: tea.KeyShiftRight}
	m = press(t, m, right, right, right, right)
	if m.scrollX != 2 {
		t.Errorf("scrollX = %d, want 2", m.scrollX)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	if m.scrollX != 1 {
		t.Errorf("scrollX = %d, want 1", m.scrollX)
	}
	m = press(t, m, runes("["), runes("["))
	if m.scrollX != 0 {
		t.Errorf("scrollX = %d, want 0", m.scrollX)
	}
}

func TestCopy(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m = press(t, m, runes("y"))
	if copied != "/etc" {
		t.Errorf("copied key = %q, want /etc", copied)
	}
	if !m.statusOK || !strings.Contains(m.status, "/etc") {
		t.Errorf("status = %q", m.status)
	}

	m = press(t, m, runes("c"))
	if !strings.Contains(copied, "name: etc") || !strings.Contains(copied, "path: /etc") {
		t.Errorf("copied record = %q", copied)
	}
	if strings.Contains(copied, "children") {
		t.Errorf("copied record includes children: %q", copied)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, runes("y"))
	if m.statusOK || !strings.Contains(m.status, "no clipboard") {
		t.Errorf("status = %q, want failure", m.status)
	}

	m = press(t, m, runes("j"))
	if m.status != "" {
		t.Errorf("status should clear on the next key, got %q", m.status)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "files.yaml")

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}
