package table

import (
	"fmt"
	"strconv"
)

// stringify renders scalar values the way row keys and plain cells show them.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case Key:
		return string(t)
	default:
		return fmt.Sprint(v)
	}
}
