package display

import "github.com/charmbracelet/x/ansi"

// stripANSI removes escape sequences so width-based truncation never cuts a
// sequence in half.
func stripANSI(s string) string {
	return ansi.Strip(s)
}
