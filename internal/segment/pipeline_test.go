package segment

import (
	"context"
	"errors"
	"testing"
)

// fakeGateway returns a fixed section list or error.
type fakeGateway struct {
	sections SectionList
	err      error
}

func (f *fakeGateway) Segment(context.Context, string) (SectionList, error) {
	return f.sections, f.err
}

func TestProcess(t *testing.T) {
	t.Run("full pipeline", func(t *testing.T) {
		gw := &fakeGateway{sections: SectionList{Sections: []Section{
			{Name: "Head", LinePairs: []LinePair{{Start: 1, End: 2}}},
		}}}
		res, err := Process(context.Background(), gw, "title\nsubtitle\nbody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(res.Lines))
		}
		if len(res.Units) != 2 {
			t.Fatalf("expected 2 units, got %d", len(res.Units))
		}
		if !res.Units[0].Labeled || res.Units[0].Name != "Head" {
			t.Errorf("first unit = %+v, want labeled Head", res.Units[0])
		}
		if len(res.Doc.Blocks) != 2 {
			t.Errorf("expected 2 rendered blocks, got %d", len(res.Doc.Blocks))
		}
	})

	t.Run("gateway failure keeps the unlabeled fallback", func(t *testing.T) {
		cause := &GatewayError{Err: errors.New("boom")}
		gw := &fakeGateway{err: cause}
		res, err := Process(context.Background(), gw, "one\ntwo")
		if err == nil {
			t.Fatal("expected error")
		}
		var gwErr *GatewayError
		if !errors.As(err, &gwErr) {
			t.Errorf("expected *GatewayError, got %v", err)
		}
		// The document is still fully numbered and rendered unlabeled.
		if res.Numbered != "<<1>> one\n<<2>> two" {
			t.Errorf("numbered = %q", res.Numbered)
		}
		if len(res.Units) != 2 {
			t.Fatalf("expected 2 fallback units, got %d", len(res.Units))
		}
		for _, u := range res.Units {
			if u.Labeled {
				t.Errorf("fallback unit %v should be unlabeled", u)
			}
		}
	})

	t.Run("empty document", func(t *testing.T) {
		gw := &fakeGateway{}
		res, err := Process(context.Background(), gw, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Units != nil || res.Doc.Blocks != nil {
			t.Errorf("expected empty result, got %+v", res)
		}
	})
}
