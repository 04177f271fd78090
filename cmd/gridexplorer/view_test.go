package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestView_Main(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	view := ansi.Strip(m.View())

	for _, want := range []string{"Grid Explorer", "files.yaml", "Name", "Modified", "etc", "README.md", "1/3 rows", "mode nest"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q\n%s", want, view)
		}
	}
	if !strings.Contains(view, "▌ ") {
		t.Errorf("view missing cursor marker\n%s", view)
	}
}

func TestView_Status(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	m = press(t, m, runes("l"), runes("j"))

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "2/5 rows · 1 expanded") {
		t.Errorf("unexpected status\n%s", view)
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m := newTestModel(t, "files.yaml")

	m = press(t, m, runes("?"))
	if !m.showHelp {
		t.Fatal("expected help to be visible")
	}
	view := ansi.Strip(m.View())
	for _, want := range []string{"Keyboard Shortcuts", "Navigation", "copy record as YAML"} {
		if !strings.Contains(view, want) {
			t.Errorf("help missing %q\n%s", want, view)
		}
	}

	// Keys other than help and esc are ignored while help is open.
	m = press(t, m, runes("j"))
	if m.cursor != 0 {
		t.Errorf("cursor moved under help overlay")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Errorf("esc should close help")
	}
}

func TestView_HelpOverlayOnLargeScreen(t *testing.T) {
	m := newTestModel(t, "files.yaml")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = updated.(Model)

	m = press(t, m, runes("?"))
	view := ansi.Strip(m.View())
	for _, want := range []string{"Keyboard Shortcuts", "Grid Explorer"} {
		if !strings.Contains(view, want) {
			t.Errorf("overlay missing %q\n%s", want, view)
		}
	}
}

func TestView_CommitsLatches(t *testing.T) {
	m := newTestModel(t, "servers.yaml")
	m = press(t, m, runes("l"))

	if m.body.Latches().RenderedOnce("web-01") {
		t.Fatal("latch set before the pass was shown")
	}
	_ = m.View()
	if !m.body.Latches().RenderedOnce("web-01") {
		t.Errorf("latch not set after view")
	}
}

func TestView_EmptyDataset(t *testing.T) {
	m := newTestModel(t, "servers.yaml")
	m.ds.Records = nil
	m.refresh()

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No servers") {
		t.Errorf("expected empty text\n%s", view)
	}
	m = press(t, m, runes("j"), runes("y"), runes("l"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}
