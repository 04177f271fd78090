package table

import "strings"

// ClassNames joins class names with single spaces. Empty names are dropped
// and only the first occurrence of a repeated name is kept.
func ClassNames(names ...string) string {
	var b strings.Builder
	seen := make(map[string]struct{}, len(names))
	for _, group := range names {
		for _, name := range strings.Fields(group) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(name)
		}
	}
	return b.String()
}

// cls prefixes a class suffix with the table's style prefix.
func cls(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "-" + suffix
}
