package searchui

import (
	"context"
	"errors"
	"testing"

	"github.com/csheth/partscout/internal/lookup"
)

type fakeSearcher struct {
	calls int
	resp  *lookup.Response
	err   error
	last  lookup.Query
}

func (f *fakeSearcher) Search(ctx context.Context, catalog lookup.Catalog, q lookup.Query) (*lookup.Response, error) {
	f.calls++
	f.last = q
	return f.resp, f.err
}

func TestControllerStartsIdle(t *testing.T) {
	c := NewController("")
	if c.State().Phase != PhaseIdle {
		t.Fatalf("expected idle, got %v", c.State().Phase)
	}
	if c.VisiblePanel() != PanelNone {
		t.Fatalf("expected no visible panel, got %v", c.VisiblePanel())
	}
	if c.Catalog() != lookup.CatalogWipers {
		t.Fatalf("expected default wipers catalog, got %q", c.Catalog())
	}
}

func TestBlankInputShowsValidationError(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		searcher := &fakeSearcher{}
		c := NewController(lookup.CatalogWipers)
		state := c.Perform(context.Background(), searcher, input)
		if searcher.calls != 0 {
			t.Fatalf("input %q: expected no request, got %d", input, searcher.calls)
		}
		if state.Phase != PhaseError || state.Message != "Please enter a part number to search" {
			t.Fatalf("input %q: unexpected state %#v", input, state)
		}
		if c.VisiblePanel() != PanelError {
			t.Fatalf("input %q: expected error panel, got %v", input, c.VisiblePanel())
		}
	}
}

func TestBeginShowsLoadingBeforeResolution(t *testing.T) {
	c := NewController(lookup.CatalogBrakePads)
	req, ok := c.Begin("  5E1 ")
	if !ok {
		t.Fatal("expected request for non-empty input")
	}
	if req.Query.PartNumber != "5E1" || req.Catalog != lookup.CatalogBrakePads {
		t.Fatalf("unexpected request: %#v", req)
	}
	if c.VisiblePanel() != PanelLoading {
		t.Fatalf("expected loading panel, got %v", c.VisiblePanel())
	}

	resp := &lookup.Response{Message: "Found"}
	if !c.Resolve(Outcome{Generation: req.Generation, Response: resp}) {
		t.Fatal("expected outcome to be applied")
	}
	if c.VisiblePanel() != PanelResults || c.State().Response != resp {
		t.Fatalf("expected results panel with response, got %#v", c.State())
	}
	if c.State().Message != "" {
		t.Fatal("results state must not carry an error message")
	}
}

func TestPerformMapsErrorsToMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"http error", &lookup.HTTPError{StatusCode: 500, Message: "DB unavailable"}, "DB unavailable"},
		{"http error without message", &lookup.HTTPError{StatusCode: 502}, lookup.GenericErrorMessage},
		{"decode failure", &lookup.NetworkError{Err: errors.New("invalid character"), Message: lookup.InvalidResponseMessage}, lookup.InvalidResponseMessage},
		{"transport failure", &lookup.NetworkError{Err: errors.New("connection refused")}, "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(lookup.CatalogWipers)
			searcher := &fakeSearcher{err: tt.err}
			state := c.Perform(context.Background(), searcher, "6R1998002")
			if searcher.calls != 1 {
				t.Fatalf("expected exactly one request, got %d", searcher.calls)
			}
			if state.Phase != PhaseError || state.Message != tt.want {
				t.Fatalf("unexpected state %#v, want message %q", state, tt.want)
			}
			if state.Response != nil {
				t.Fatal("error state must not keep a response")
			}
		})
	}
}

func TestNilResponseBecomesError(t *testing.T) {
	c := NewController(lookup.CatalogWipers)
	state := c.Perform(context.Background(), &fakeSearcher{}, "X")
	if state.Phase != PhaseError || state.Message == "" {
		t.Fatalf("expected error with fallback message, got %#v", state)
	}
}

func TestStaleOutcomeIsDropped(t *testing.T) {
	c := NewController(lookup.CatalogWipers)
	first, _ := c.Begin("AAA")
	second, _ := c.Begin("BBB")
	if first.Generation == second.Generation {
		t.Fatal("generations must differ")
	}

	if c.Resolve(Outcome{Generation: first.Generation, Err: errors.New("late failure")}) {
		t.Fatal("stale outcome must not be applied")
	}
	if c.State().Phase != PhaseLoading || c.State().Query != "BBB" {
		t.Fatalf("state changed by stale outcome: %#v", c.State())
	}

	resp := &lookup.Response{Message: "ok"}
	if !c.Resolve(Outcome{Generation: second.Generation, Response: resp}) {
		t.Fatal("latest outcome must be applied")
	}
	if c.Resolve(Outcome{Generation: second.Generation, Err: errors.New("duplicate")}) {
		t.Fatal("outcome after settlement must be ignored")
	}
	if c.State().Phase != PhaseResults {
		t.Fatalf("expected results, got %v", c.State().Phase)
	}
}

func TestNewSearchRestartsFromErrorAndResults(t *testing.T) {
	c := NewController(lookup.CatalogWipers)
	c.Begin("")
	if c.State().Phase != PhaseError {
		t.Fatal("expected error state")
	}
	req, ok := c.Begin("1S1")
	if !ok || c.State().Phase != PhaseLoading || c.State().Message != "" {
		t.Fatalf("expected clean loading state, got %#v", c.State())
	}
	c.Resolve(Outcome{Generation: req.Generation, Response: &lookup.Response{}})
	c.Begin("5JB")
	if c.State().Phase != PhaseLoading || c.State().Response != nil {
		t.Fatalf("expected previous results discarded, got %#v", c.State())
	}
}
