package extract

import "strings"

// SplitTopLevel splits span on sep wherever the shared nesting counter is zero.
// Items are trimmed and empty items are dropped. A span without a top-level
// separator yields one item. Unbalanced input still yields its trailing item.
func SplitTopLevel(span string, sep byte) []string {
	var items []string
	start := 0
	depth := 0

	emit := func(item string) {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	for i := 0; i < len(span); i++ {
		c := span[i]
		if c == sep && depth == 0 {
			emit(span[start:i])
			start = i + 1
			continue
		}
		depth += DepthDelta(c)
	}

	if start < len(span) {
		emit(span[start:])
	}

	return items
}
