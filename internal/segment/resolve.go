package segment

import "sort"

// Flatten expands every section's line pairs into independent blocks. A
// section with k line pairs yields k blocks sharing the section's name;
// sections with no line pairs contribute nothing.
func Flatten(sections []Section) []Block {
	var blocks []Block
	for _, sec := range sections {
		for _, lp := range sec.LinePairs {
			blocks = append(blocks, Block{Start: lp.Start, End: lp.End, Name: sec.Name})
		}
	}
	return blocks
}

// Resolve converts a set of sections into an ordered, non-overlapping
// sequence of render units covering every line of an n-line document exactly
// once. Blocks are sorted ascending by (start, end); the scan walks the
// document with a cursor, and at each position the first sorted block
// starting there wins, its end clamped to n. Lines no block claims become
// single-line unlabeled units.
//
// Overlapping blocks whose start falls inside an already-emitted span are
// skipped: the cursor never revisits consumed lines. When several blocks
// share a start line, the (start, end) sort makes the selection
// deterministic regardless of input order. Degenerate blocks (start > end,
// end < 1, start beyond the document) are dropped silently.
func Resolve(sections []Section, n int) []Unit {
	if n <= 0 {
		return nil
	}

	blocks := Flatten(sections)
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Start != blocks[j].Start {
			return blocks[i].Start < blocks[j].Start
		}
		return blocks[i].End < blocks[j].End
	})

	// Start-indexed lookup: only the first sorted block per start line can
	// ever be selected, so later ones with the same start are not kept.
	byStart := make(map[int]Block, len(blocks))
	for _, b := range blocks {
		if b.Start > b.End || b.End < 1 || b.Start > n {
			continue
		}
		if _, ok := byStart[b.Start]; !ok {
			byStart[b.Start] = b
		}
	}

	var units []Unit
	for current := 1; current <= n; {
		if b, ok := byStart[current]; ok {
			end := b.End
			if end > n {
				end = n
			}
			units = append(units, Unit{Start: current, End: end, Name: b.Name, Labeled: true})
			current = end + 1
			continue
		}
		units = append(units, Unit{Start: current, End: current})
		current++
	}
	return units
}
