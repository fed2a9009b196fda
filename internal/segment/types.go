package segment

import (
	"encoding/json"
	"fmt"
)

// LinePair is one contiguous [Start, End] line range belonging to a section.
// Line numbers are 1-based and inclusive on both ends.
type LinePair struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Section is a named logical part of a document. A section that is
// non-contiguous in the source carries multiple line pairs.
type Section struct {
	Name      string     `json:"name"`
	LinePairs []LinePair `json:"line_pairs"`
}

// SectionList is the structured segmentation returned by the collaborator.
type SectionList struct {
	Sections []Section `json:"sections"`
}

// Block is the atomic unit the resolver operates on: exactly one line pair
// tagged with its section name. A section with k line pairs yields k blocks
// sharing the same name.
type Block struct {
	Start int
	End   int
	Name  string
}

// Unit is one contiguous span emitted by the resolver for display. A labeled
// unit covers the lines of a selected block; an unlabeled unit covers a
// single line no block claims.
type Unit struct {
	Start   int
	End     int
	Name    string
	Labeled bool
}

// RenderedLine is one physical line ready for display: its 1-based number
// and its text with markup-special characters escaped.
type RenderedLine struct {
	Num  int
	Text string
}

// RenderedBlock is one visual block of the display document.
type RenderedBlock struct {
	Label   string
	Labeled bool
	Lines   []RenderedLine
}

// Document is the display form of a segmented document: an ordered list of
// visual blocks covering every line exactly once.
type Document struct {
	Blocks []RenderedBlock
}

// String returns an indented JSON representation of the section list for
// inspection output.
func (s SectionList) String() string {
	b, _ := json.MarshalIndent(s, "", "  ")
	return string(b)
}

// GatewayError reports a failed call to the segmentation collaborator. The
// underlying cause is preserved for display.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("segmentation gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// FormatError reports a collaborator response that does not conform to the
// expected sections/line_pairs shape.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("segmentation response format: %s", e.Reason)
}
