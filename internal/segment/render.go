package segment

import "strings"

// escapeLine escapes markup-special characters. Ampersands are replaced
// first so the entities introduced for < and > are not escaped again.
func escapeLine(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// RenderDocument walks the resolver's units and produces the display
// document. Each unit becomes one visual block; each physical line carries
// its 1-based number and its escaped text. Empty and whitespace-only lines
// render as a single space so the display surface does not collapse their
// height. An empty unit sequence yields an empty document.
func RenderDocument(units []Unit, lines []string) Document {
	var doc Document
	for _, u := range units {
		block := RenderedBlock{Label: u.Name, Labeled: u.Labeled}
		for num := u.Start; num <= u.End && num <= len(lines); num++ {
			text := escapeLine(lines[num-1])
			if strings.TrimSpace(text) == "" {
				text = " "
			}
			block.Lines = append(block.Lines, RenderedLine{Num: num, Text: text})
		}
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc
}
