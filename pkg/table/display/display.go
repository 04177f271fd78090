package display

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/gridkit/pkg/table"
	"github.com/mattn/go-runewidth"
)

// Options controls how rows are laid out.
type Options struct {
	// Widths holds the width of every flattened column.
	Widths []int
	// Width pads or cuts every line to this width when positive.
	Width int
	// ScrollX skips that many unfixed columns.
	ScrollX int
	// Prefix is the table's class prefix, stripped before theme lookup.
	Prefix string
	// Theme defaults to DefaultTheme.
	Theme Theme
	// Separator goes between columns. Defaults to a single space.
	Separator string
	// IndentSize is the width of one detail nesting level. Defaults to 2.
	IndentSize int
}

func (o Options) separator() string {
	if o.Separator == "" {
		return " "
	}
	return o.Separator
}

func (o Options) theme() Theme {
	if o.Theme == nil {
		return DefaultTheme()
	}
	return o.Theme
}

func (o Options) indentSize() int {
	if o.IndentSize <= 0 {
		return 2
	}
	return o.IndentSize
}

// Line is one rendered terminal line.
type Line struct {
	Text   string
	RowKey string // key of the row the line belongs to
	Detail bool   // true for lines of a detail or placeholder row
}

// RenderRows lays out rendered rows. Hidden rows produce no lines.
func RenderRows(rows []*table.Node, fixed []table.FixedInfo, opts Options) []Line {
	var lines []Line
	for _, n := range rows {
		lines = appendRows(lines, n, "", fixed, opts)
	}
	return lines
}

func appendRows(lines []Line, n *table.Node, key string, fixed []table.FixedInfo, opts Options) []Line {
	if n == nil {
		return lines
	}
	if n.Tag == table.TagFragment {
		if n.Key != "" {
			key = n.Key
		}
		for _, c := range n.Children {
			lines = appendRows(lines, c, key, fixed, opts)
		}
		return lines
	}
	if n.Tag != table.TagRow || n.Attrs.Bool(table.AttrHidden) {
		return lines
	}
	if k, ok := n.Attrs[table.AttrRowKey].(string); ok {
		key = k
	}
	if isFullWidth(n, opts) {
		for _, text := range renderFullWidth(n, fixed, opts) {
			lines = append(lines, Line{Text: text, RowKey: key, Detail: true})
		}
		return lines
	}
	return append(lines, Line{Text: renderRow(n, fixed, opts), RowKey: key})
}

// isFullWidth reports whether a row is a detail or placeholder row whose
// single cell spans every column.
func isFullWidth(row *table.Node, opts Options) bool {
	if len(row.Children) != 1 {
		return false
	}
	if !row.HasClass(prefixed(opts.Prefix, "expanded-row")) && !row.HasClass(prefixed(opts.Prefix, "placeholder")) {
		return false
	}
	return row.Children[0].Attrs.ColSpan() >= len(opts.Widths)
}

// visibleColumns returns column indexes in screen order.
func visibleColumns(fixed []table.FixedInfo, n, scroll int) []int {
	side := func(i int) table.FixedSide {
		if i < len(fixed) {
			return fixed[i].Side
		}
		return table.FixedNone
	}
	var left, middle, right []int
	for i := 0; i < n; i++ {
		switch side(i) {
		case table.FixedLeft:
			left = append(left, i)
		case table.FixedRight:
			right = append(right, i)
		default:
			middle = append(middle, i)
		}
	}
	scroll = min(max(scroll, 0), max(len(middle)-1, 0))
	out := append(left, middle[scroll:]...)
	return append(out, right...)
}

// segment is a run of adjacent screen columns owned by one cell.
type segment struct {
	cell  int
	width int
}

func layout(row *table.Node, fixed []table.FixedInfo, opts Options) []segment {
	n := len(opts.Widths)
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	col := 0
	for ci, cell := range row.Children {
		span := cell.Attrs.ColSpan()
		for j := 0; j < span && col < n; j++ {
			owner[col] = ci
			col++
		}
	}

	sepWidth := runewidth.StringWidth(opts.separator())
	var segs []segment
	prev := -2
	for _, c := range visibleColumns(fixed, n, opts.ScrollX) {
		w := opts.Widths[c]
		if len(segs) > 0 && owner[c] == prev && prev >= 0 {
			segs[len(segs)-1].width += sepWidth + w
			continue
		}
		segs = append(segs, segment{cell: owner[c], width: w})
		prev = owner[c]
	}
	return segs
}

func renderRow(row *table.Node, fixed []table.FixedInfo, opts Options) string {
	theme := opts.theme()
	parts := make([]string, 0, len(row.Children))
	for _, seg := range layout(row, fixed, opts) {
		if seg.cell < 0 {
			parts = append(parts, strings.Repeat(" ", seg.width))
			continue
		}
		cell := row.Children[seg.cell]
		text, _, _ := strings.Cut(cellText(cell, opts, theme), "\n")
		text = fit(text, seg.width, cell.HasClass(prefixed(opts.Prefix, "cell-ellipsis")))
		parts = append(parts, styleFor(cell.ClassName, opts.Prefix, theme).Render(text))
	}
	line := fitLine(strings.Join(parts, opts.separator()), opts.Width)
	return styleFor(row.ClassName, opts.Prefix, theme).Render(line)
}

func renderFullWidth(row *table.Node, fixed []table.FixedInfo, opts Options) []string {
	theme := opts.theme()
	width := opts.Width
	if width <= 0 {
		width = totalWidth(fixed, opts)
	}
	gutter := strings.Repeat(" ", detailLevel(row.ClassName, opts.Prefix)*opts.indentSize())
	style := styleFor(row.ClassName, opts.Prefix, theme)

	content := cellText(row.Children[0], opts, theme)
	var out []string
	for _, l := range strings.Split(content, "\n") {
		out = append(out, style.Render(fit(gutter+l, width, true)))
	}
	return out
}

// totalWidth is the width of every visible column plus separators.
func totalWidth(fixed []table.FixedInfo, opts Options) int {
	cols := visibleColumns(fixed, len(opts.Widths), opts.ScrollX)
	w := 0
	for _, c := range cols {
		w += opts.Widths[c]
	}
	if len(cols) > 1 {
		w += (len(cols) - 1) * runewidth.StringWidth(opts.separator())
	}
	return w
}

// detailLevel reads N from an expanded-row-level-N class.
func detailLevel(className, prefix string) int {
	marker := prefixed(prefix, "expanded-row-level-")
	for _, c := range strings.Fields(className) {
		if rest, ok := strings.CutPrefix(c, marker); ok {
			if n, err := strconv.Atoi(rest); err == nil {
				return n
			}
		}
	}
	return 0
}

// cellText flattens the content of a cell. Indent spacers become spaces and
// themed inline elements keep their style.
func cellText(n *table.Node, opts Options, theme Theme) string {
	var b strings.Builder
	for _, c := range n.Children {
		switch c.Tag {
		case table.TagText:
			b.WriteString(c.Text)
		default:
			if pad, ok := c.Attrs.Int(table.AttrPaddingLeft); ok && pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			inner := cellText(c, opts, theme)
			if c.Tag == table.TagSpan && inner != "" {
				if st, ok := lookup(c.ClassName, opts.Prefix, theme); ok {
					inner = st.Render(inner)
				}
			}
			b.WriteString(inner)
		}
	}
	return b.String()
}

// fit cuts s to width, with a trailing ellipsis when requested, and pads it.
func fit(s string, width int, ellipsis bool) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		tail := ""
		if ellipsis {
			tail = "…"
		}
		s = runewidth.Truncate(stripANSI(s), width, tail)
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func fitLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return fit(s, width, false)
}

func prefixed(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "-" + suffix
}

func lookup(className, prefix string, theme Theme) (lipgloss.Style, bool) {
	st := lipgloss.NewStyle()
	found := false
	for _, c := range strings.Fields(className) {
		name := c
		if prefix != "" {
			var ok bool
			if name, ok = strings.CutPrefix(c, prefix+"-"); !ok {
				name = c
			}
		}
		if s, ok := theme[name]; ok {
			st = s.Inherit(st)
			found = true
		}
	}
	return st, found
}

func styleFor(className, prefix string, theme Theme) lipgloss.Style {
	st, _ := lookup(className, prefix, theme)
	return st
}

// RenderHeader renders the column titles with the same layout as the rows.
func RenderHeader(columns []*table.Column, fixed []table.FixedInfo, opts Options) string {
	cells := make([]*table.Node, 0, len(columns))
	for _, c := range columns {
		cells = append(cells, table.Elements{}.Cell("", nil, table.Text(Title(c))))
	}
	header := table.Elements{}.Row(prefixed(opts.Prefix, "header"), nil, cells...)
	return renderRow(header, fixed, opts)
}

// Title is the header text of a column.
func Title(c *table.Column) string {
	switch {
	case c.Title != "":
		return c.Title
	case len(c.DataIndex) > 0:
		return c.DataIndex.String()
	default:
		return c.Key
	}
}

// Widths returns the configured width of every column, or fallback when a
// column has none.
func Widths(columns []*table.Column, fallback int) []int {
	out := make([]int, len(columns))
	for i, c := range columns {
		out[i] = c.Width
		if out[i] <= 0 {
			out[i] = fallback
		}
	}
	return out
}
