package display

import "github.com/charmbracelet/lipgloss"

// Theme maps class names, without the table prefix, to styles. A node with
// several matching classes gets the styles layered in class order.
type Theme map[string]lipgloss.Style

// Basic color palette (presentation only)
var (
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")
	accentColor  = lipgloss.Color("#00D7FF")
)

// DefaultTheme returns the styles used when Options.Theme is nil.
func DefaultTheme() Theme {
	return Theme{
		"header": lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		"row-selected": lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		"expanded-row": lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true),
		"placeholder": lipgloss.NewStyle().
			Foreground(mutedColor),
		"row-expand-icon": lipgloss.NewStyle().
			Foreground(accentColor),
		"cell-fix-left-last": lipgloss.NewStyle().
			Bold(true),
	}
}

// Plain returns a theme without any styling, for tests and pipes.
func Plain() Theme {
	return Theme{}
}
