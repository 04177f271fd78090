// Package virtuallist renders the visible window of a long list of lines.
package virtuallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Source supplies the lines of a list.
type Source interface {
	// Len returns the number of lines.
	Len() int
	// Line renders line i. selected reports whether i lies in the
	// selected block.
	Line(i int, selected bool, width int) string
}

// Renderer keeps a block of lines in view and renders only the lines that
// fit the window.
type Renderer struct {
	src      Source
	viewport viewport.Model
	width    int
	height   int
	offset   int

	// selection is the half-open line range [selStart, selEnd).
	selStart int
	selEnd   int

	// Empty is shown when the source has no lines.
	Empty string
}

// New creates a renderer over src.
func New(src Source) *Renderer {
	return &Renderer{
		src:      src,
		viewport: viewport.New(0, 0),
		selEnd:   1,
	}
}

// SetSize sets the window size.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height
	r.scrollTo()
}

// Select marks lines [start, end) as selected and scrolls them into view.
// The first line wins when the block is taller than the window.
func (r *Renderer) Select(start, end int) {
	if end <= start {
		end = start + 1
	}
	r.selStart = start
	r.selEnd = end
	r.scrollTo()
}

// Selection returns the selected line range.
func (r *Renderer) Selection() (start, end int) {
	return r.selStart, r.selEnd
}

// Offset returns the index of the first visible line.
func (r *Renderer) Offset() int {
	return r.offset
}

// Update forwards window size changes to the viewport. Key handling stays
// with the caller, which moves the selection through Select.
func (r *Renderer) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

// View renders the visible lines.
func (r *Renderer) View() string {
	n := r.src.Len()
	if n == 0 {
		return r.Empty
	}

	height := r.height
	if height <= 0 {
		height = 20
	}

	r.clamp(n, height)
	start := r.offset
	end := min(start+height, n)

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(r.src.Line(i, i >= r.selStart && i < r.selEnd, r.width))
	}

	r.viewport.SetContent(b.String())
	r.viewport.YOffset = 0
	return r.viewport.View()
}

func (r *Renderer) scrollTo() {
	if r.height <= 0 {
		return
	}
	end := r.selEnd
	if end-r.selStart > r.height {
		end = r.selStart + r.height
	}
	if end > r.offset+r.height {
		r.offset = end - r.height
	}
	if r.selStart < r.offset {
		r.offset = r.selStart
	}
	r.clamp(r.src.Len(), r.height)
}

// clamp keeps the window inside the list and full at the bottom.
func (r *Renderer) clamp(n, height int) {
	maxOffset := max(n-height, 0)
	if r.offset > maxOffset {
		r.offset = maxOffset
	}
	if r.offset < 0 {
		r.offset = 0
	}
}
