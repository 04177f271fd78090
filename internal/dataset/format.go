package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/joshuapare/gridkit/pkg/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
	upper   = cases.Upper(language.English)
)

// Formatter returns the cell renderer for a column format name. The empty
// name returns nil, leaving values to the default cell rendering.
func Formatter(name string) (table.RenderFunc, error) {
	var format func(any) string
	switch strings.ToLower(name) {
	case "", "text":
		return nil, nil
	case "number":
		format = formatNumber
	case "bytes":
		format = func(v any) string { return formatBytes(toFloat64(v)) }
	case "upper":
		format = func(v any) string { return upper.String(fmt.Sprint(v)) }
	case "title":
		format = func(v any) string { return titler.String(fmt.Sprint(v)) }
	case "bool":
		format = func(v any) string {
			if b, ok := v.(bool); ok && b {
				return "yes"
			}
			return "no"
		}
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return func(v any, _ table.Record, _ int) *table.Node {
		if v == nil {
			return nil
		}
		return table.Text(format(v))
	}, nil
}

// TitleFor derives a header title from the last step of the column's data
// path, or from its key.
func TitleFor(c *table.Column) string {
	name := c.Key
	if n := len(c.DataIndex); n > 0 {
		name = c.DataIndex[n-1]
	}
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return titler.String(name)
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case int:
		return printer.Sprintf("%d", n)
	case int64:
		return printer.Sprintf("%d", n)
	case uint64:
		return printer.Sprintf("%d", n)
	case float64:
		if n == math.Trunc(n) {
			if math.Abs(n) < 1<<63 {
				return printer.Sprintf("%d", int64(n))
			}
			return printer.Sprintf("%.0f", n)
		}
		return printer.Sprintf("%.2f", n)
	}
	return fmt.Sprint(v)
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// formatBytes converts a byte count to a human-readable string.
func formatBytes(b float64) string {
	if b < 0 {
		return "-" + formatBytes(-b)
	}
	if b < 1 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	exp := int(math.Log(b) / math.Log(1024))
	if exp >= len(units) {
		exp = len(units) - 1
	}
	val := b / math.Pow(1024, float64(exp))
	if exp == 0 {
		return fmt.Sprintf("%.0f %s", val, units[exp])
	}
	return fmt.Sprintf("%.1f %s", val, units[exp])
}
