package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/itsmostafa/segview/internal/segment"
)

// Format writes a non-interactive render of the segmented document: each
// labeled block under a styled header naming its segment, every line behind
// a dim number gutter. Used by the segment command when no TUI is wanted.
func Format(w io.Writer, units []segment.Unit, lines []string, styles Styles) {
	for _, u := range units {
		if u.Labeled {
			header := fmt.Sprintf("Segment: %s (lines %d-%d)", u.Name, u.Start, u.End)
			fmt.Fprintln(w, styles.StatusLabel.Render(header))
		}
		for num := u.Start; num <= u.End && num <= len(lines); num++ {
			text := lines[num-1]
			if strings.TrimSpace(text) == "" {
				text = " "
			}
			style := styles.Unlabeled
			if u.Labeled {
				style = styles.Labeled
			}
			fmt.Fprintf(w, "%s%s\n", styles.Gutter.Render(fmt.Sprintf("%4d │ ", num)), style.Render(text))
		}
	}
}
