// Package textutil provides greedy word wrapping for usage text.
package textutil

import "strings"

// Wrap splits text into lines of at most width characters, breaking at
// whitespace. A single word longer than width is emitted unbroken on its own
// line, never truncated or split. Empty input yields no lines.
func Wrap(text string, width int) []string {
	var (
		lines []string
		cur   string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
