package main

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/gridkit/pkg/table/display"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View implements tea.Model. Every view commits the render pass it shows.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	defer m.body.Commit(m.expanded)

	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// renderHelp draws the help box over the main screen, or alone when the
// screen is too small to hold it.
func (m *Model) renderHelp() string {
	help := helpModel{keys: m.keys}
	box, main := help.View(), m.renderMain()
	if lipgloss.Width(box) >= lipgloss.Width(main) || lipgloss.Height(box) >= lipgloss.Height(main) {
		return box
	}
	return overlay.New(
		help,
		mainView{model: m},
		overlay.Center,
		overlay.Center,
		0,
		0,
	).View()
}

func (m *Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitle(),
		m.renderHeader(),
		m.list.View(),
		m.renderStatus(),
	)
}

func (m *Model) renderTitle() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleStyle.Render("Grid Explorer"),
		" ",
		pathStyle.Render(filepath.Base(m.path)),
	)
}

func (m *Model) renderHeader() string {
	columns := m.body.Renderer.Body.FlattenColumns
	return strings.Repeat(" ", cursorGutter) +
		display.RenderHeader(columns, m.body.Renderer.Table.FixedInfoList, m.displayOptions())
}

func (m *Model) renderStatus() string {
	if m.status != "" {
		if m.statusOK {
			return statusOKStyle.Render(m.status)
		}
		return statusErrStyle.Render(m.status)
	}
	rows := len(m.rows())
	pos := 0
	if rows > 0 {
		pos = m.cursor + 1
	}
	return statusStyle.Render(fmt.Sprintf(
		"%d/%d rows · %d expanded · mode %s · ? help · q quit",
		pos, rows, len(m.expanded), m.ds.Expandable,
	))
}

// mainView adapts the main screen as the overlay background.
type mainView struct {
	model *Model
}

func (v mainView) Init() tea.Cmd                       { return nil }
func (v mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v mainView) View() string                        { return v.model.renderMain() }

// helpModel renders the help overlay.
type helpModel struct {
	keys KeyMap
}

func (h helpModel) Init() tea.Cmd                       { return nil }
func (h helpModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h helpModel) View() string {
	const keyWidth = 14

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for i, section := range h.keys.helpSections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			help := binding.Help()
			b.WriteString(helpKeyStyle.Width(keyWidth).Render(help.Key))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(help.Desc))
			b.WriteString("\n")
		}
	}
	return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
}
