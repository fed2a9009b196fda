// Package segment turns a plain-text document plus an LLM-proposed
// segmentation into an ordered display document where every named section is
// visually delineated.
//
// # Overview
//
// The segmentation decision itself is delegated: the document is sent to a
// text-generation collaborator with line markers attached, and the
// collaborator proposes named, possibly non-contiguous line ranges. This
// package owns everything around that call — the line numbering transform,
// the response validation, and the deterministic algorithm that converts the
// proposed ranges into a total, non-overlapping rendering order.
//
// # Key Concepts
//
//   - Line pairs: one contiguous [start, end] line range belonging to a
//     named section. A non-contiguous section carries several pairs.
//
//   - Blocks: sections flattened into independent (start, end, name) units,
//     one per line pair.
//
//   - Resolution: blocks are sorted by (start, end) and a cursor scan emits
//     one unit per span, covering every line of the document exactly once.
//     When blocks overlap, the first sorted block starting at the cursor
//     wins and shadowed blocks are skipped; this is deliberate, not an
//     error.
//
//   - Units: the resolver's output, either labeled (inside a block) or
//     unlabeled (a single line no block claims). The presentation layers
//     serialize units; the algorithm never touches markup.
//
// # Usage
//
//	gw := segment.NewLLMGateway(provider)
//	res, err := segment.Process(ctx, gw, text)
//
// On a gateway failure Process still returns an all-unlabeled render of the
// document, so callers can fall back to a plain view.
//
// # Architecture
//
//   - types.go: data model and error types
//   - number.go: line numbering transform
//   - resolve.go: block flattening and the cursor scan
//   - render.go: escaping and the display document
//   - gateway.go: collaborator boundary and response validation
//   - prompts.go: the segmentation prompt template
//   - pipeline.go: the end-to-end flow for one document
package segment
