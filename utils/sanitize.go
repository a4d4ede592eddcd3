package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// maxCleanPasses bounds how many layers of entity encoding are peeled off.
const maxCleanPasses = 8

// CleanText strips every HTML tag from s, including tags hidden behind
// entity encoding, and returns plain text. Input that keeps changing after
// maxCleanPasses is treated as hostile and reduced to "".
func CleanText(s string) string {
	cur := strict.Sanitize(s)
	for i := 0; i < maxCleanPasses; i++ {
		next := strict.Sanitize(html.UnescapeString(cur))
		if next == cur {
			// cur is a fixed point: its unescaped form has no markup left
			return strings.TrimSpace(html.UnescapeString(cur))
		}
		cur = next
	}
	return ""
}
