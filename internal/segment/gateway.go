package segment

import (
	"context"
	"fmt"

	"github.com/itsmostafa/segview/internal/llm"
)

// Gateway is the typed boundary to the segmentation collaborator. Tests
// inject fakes returning fixed section lists; production code wraps an LLM
// provider.
type Gateway interface {
	// Segment sends a numbered document and returns the proposed sections.
	Segment(ctx context.Context, numbered string) (SectionList, error)
}

// LLMGateway implements Gateway over a text-generation provider.
type LLMGateway struct {
	provider llm.Provider
}

// NewLLMGateway creates a gateway backed by the given provider.
func NewLLMGateway(provider llm.Provider) *LLMGateway {
	return &LLMGateway{provider: provider}
}

// Segment sends the prompt template plus the numbered document to the
// provider and parses the structured response. Transport and API failures
// come back as *GatewayError with the cause preserved; a response that does
// not match the expected shape comes back as *FormatError.
func (g *LLMGateway) Segment(ctx context.Context, numbered string) (SectionList, error) {
	content, err := g.provider.Complete(ctx, SegmentPrompt+numbered)
	if err != nil {
		return SectionList{}, &GatewayError{Err: err}
	}
	return ParseSectionList(content)
}

// Raw shapes with pointer fields so missing keys are distinguishable from
// zero values during validation.
type rawSectionList struct {
	Sections *[]rawSection `json:"sections"`
}

type rawSection struct {
	Name      *string    `json:"name"`
	LinePairs *[]rawPair `json:"line_pairs"`
}

type rawPair struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

// ParseSectionList validates a collaborator response against the expected
// sections/line_pairs shape. The collaborator's schema conformance is best
// effort, so every required field is checked; any deviation is a
// *FormatError.
func ParseSectionList(content string) (SectionList, error) {
	raw, err := llm.ExtractJSON[rawSectionList](content)
	if err != nil {
		return SectionList{}, &FormatError{Reason: err.Error()}
	}
	if raw.Sections == nil {
		return SectionList{}, &FormatError{Reason: `missing "sections" key`}
	}

	list := SectionList{Sections: make([]Section, 0, len(*raw.Sections))}
	for i, sec := range *raw.Sections {
		if sec.Name == nil {
			return SectionList{}, &FormatError{Reason: fmt.Sprintf(`section %d: missing "name"`, i)}
		}
		if sec.LinePairs == nil {
			return SectionList{}, &FormatError{Reason: fmt.Sprintf(`section %d: missing "line_pairs"`, i)}
		}
		pairs := make([]LinePair, 0, len(*sec.LinePairs))
		for j, lp := range *sec.LinePairs {
			if lp.Start == nil || lp.End == nil {
				return SectionList{}, &FormatError{Reason: fmt.Sprintf("section %d pair %d: missing start/end", i, j)}
			}
			pairs = append(pairs, LinePair{Start: *lp.Start, End: *lp.End})
		}
		list.Sections = append(list.Sections, Section{Name: *sec.Name, LinePairs: pairs})
	}
	return list, nil
}
