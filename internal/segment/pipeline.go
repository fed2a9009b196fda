package segment

import "context"

// Result carries everything one document produces on its way through the
// pipeline. Each invocation builds a fresh, unshared Result; nothing here is
// mutated after Process returns.
type Result struct {
	// Numbered is the <<i>>-marked form sent to the collaborator.
	Numbered string

	// Lines is the raw line array; Lines[i-1] is line i.
	Lines []string

	// Sections is the parsed segmentation. Empty when the gateway failed.
	Sections SectionList

	// Units is the resolved, gap-free traversal order over all lines.
	Units []Unit

	// Doc is the display document rendered from Units.
	Doc Document
}

// Process runs one document through the full pipeline: line numbering, the
// blocking gateway call, block resolution and rendering. A gateway failure
// is returned alongside a Result holding the all-unlabeled fallback render,
// so the caller can still show the plain document. There is no partial
// result beyond that: either the full segmented render or the fallback.
func Process(ctx context.Context, gw Gateway, text string) (Result, error) {
	numbered, lines := NumberLines(text)
	res := Result{Numbered: numbered, Lines: lines}

	sections, err := gw.Segment(ctx, numbered)
	if err != nil {
		res.Units = Resolve(nil, len(lines))
		res.Doc = RenderDocument(res.Units, lines)
		return res, err
	}

	res.Sections = sections
	res.Units = Resolve(sections.Sections, len(lines))
	res.Doc = RenderDocument(res.Units, lines)
	return res, nil
}
