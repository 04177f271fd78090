package virtuallist

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type lines []string

func (l lines) Len() int { return len(l) }

func (l lines) Line(i int, selected bool, width int) string {
	if selected {
		return "> " + l[i]
	}
	return "  " + l[i]
}

func numbered(n int) lines {
	out := make(lines, n)
	for i := range n {
		out[i] = fmt.Sprintf("line%03d", i)
	}
	return out
}

func TestRenderer_Empty(t *testing.T) {
	r := New(lines{})
	r.Empty = "No Data"
	r.SetSize(40, 5)

	if got := r.View(); got != "No Data" {
		t.Errorf("View() = %q, want %q", got, "No Data")
	}
}

func TestRenderer_RendersOnlyWindow(t *testing.T) {
	r := New(numbered(100))
	r.SetSize(40, 10)
	r.Select(0, 1)

	view := r.View()
	for i := range 10 {
		if !strings.Contains(view, fmt.Sprintf("line%03d", i)) {
			t.Errorf("expected line%03d in view", i)
		}
	}
	if strings.Contains(view, "line010") {
		t.Errorf("line010 should be outside the window")
	}
	if !strings.Contains(view, "> line000") {
		t.Errorf("expected selection marker on line000, got %q", view)
	}
}

func TestRenderer_ScrollsToSelection(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantOffset int
	}{
		{"inside first window", 5, 6, 0},
		{"below window", 15, 16, 6},
		{"block spills below", 8, 12, 2},
		{"block taller than window", 30, 50, 30},
		{"last line", 99, 100, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(numbered(100))
			r.SetSize(40, 10)
			r.Select(tt.start, tt.end)
			if got := r.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

func TestRenderer_ScrollsBackUp(t *testing.T) {
	r := New(numbered(100))
	r.SetSize(40, 10)
	r.Select(50, 51)
	r.Select(20, 21)

	if got := r.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}

func TestRenderer_SelectedBlock(t *testing.T) {
	r := New(numbered(5))
	r.SetSize(40, 10)
	r.Select(1, 3)

	got := strings.Split(r.View(), "\n")
	want := []string{"  line000", "> line001", "> line002", "  line003", "  line004"}
	for i, w := range want {
		if i >= len(got) || !strings.HasPrefix(got[i], w) {
			t.Errorf("line %d = %q, want prefix %q", i, got, w)
		}
	}
	if start, end := r.Selection(); start != 1 || end != 3 {
		t.Errorf("Selection() = %d,%d, want 1,3", start, end)
	}
}

func TestRenderer_ShrinkingSourceClamps(t *testing.T) {
	src := numbered(100)
	r := New(src)
	r.SetSize(40, 10)
	r.Select(95, 96)

	r.src = src[:12]
	view := r.View()
	if r.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", r.Offset())
	}
	if !strings.Contains(view, "line011") {
		t.Errorf("expected last line in view, got %q", view)
	}
}

func TestRenderer_UpdateIgnoresKeys(t *testing.T) {
	r := New(numbered(100))
	r.SetSize(40, 10)
	r.Select(0, 1)

	if cmd := r.Update(tea.KeyMsg{Type: tea.KeyDown}); cmd != nil {
		t.Errorf("expected nil command for key message")
	}
	if r.Offset() != 0 {
		t.Errorf("key message should not scroll, offset = %d", r.Offset())
	}
	r.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
}
