package segment

import (
	"fmt"
	"strings"
)

// NumberLines splits text into its ordered lines and produces the numbered
// form sent to the segmentation collaborator: each line prefixed with a
// 1-based <<i>> marker, joined by newlines. The returned lines slice indexes
// identically to the markers (lines[i-1] is line i's content), so the
// collaborator's line references map directly back onto the raw document.
//
// Splitting follows strings.Split on "\n": blank lines are kept, and a
// trailing newline yields a final empty line. Empty input is a true empty
// document (nil lines).
func NumberLines(text string) (string, []string) {
	if text == "" {
		return "", nil
	}
	lines := strings.Split(text, "\n")
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("<<%d>> %s", i+1, line)
	}
	return strings.Join(numbered, "\n"), lines
}
