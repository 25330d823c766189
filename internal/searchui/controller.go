// Package searchui holds the search panel state machine and its renderer.
// It has no terminal dependencies so the one-shot CLI and the interactive
// program share the same transitions.
package searchui

import (
	"context"
	"errors"

	"github.com/csheth/partscout/internal/lookup"
)

// Phase is the active UI state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseResults
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseResults:
		return "results"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Panel is one of the mutually exclusive visible regions.
type Panel int

const (
	PanelNone Panel = iota
	PanelLoading
	PanelResults
	PanelError
)

// State is a snapshot of the controller. Response is set only in
// PhaseResults and Message only in PhaseError.
type State struct {
	Phase    Phase
	Query    string
	Response *lookup.Response
	Message  string
}

// Request is a search that Begin accepted and that must be sent.
type Request struct {
	Generation uint64
	Catalog    lookup.Catalog
	Query      lookup.Query
}

// Outcome is the settled result of a Request.
type Outcome struct {
	Generation uint64
	Response   *lookup.Response
	Err        error
}

// Searcher performs one lookup call.
type Searcher interface {
	Search(ctx context.Context, catalog lookup.Catalog, q lookup.Query) (*lookup.Response, error)
}

// Controller owns the UIState. It is not safe for concurrent use; callers
// mutate it from a single loop.
type Controller struct {
	state      State
	catalog    lookup.Catalog
	generation uint64
}

// NewController returns a controller in PhaseIdle.
func NewController(catalog lookup.Catalog) *Controller {
	if catalog == "" {
		catalog = lookup.CatalogWipers
	}
	return &Controller{catalog: catalog}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Catalog() lookup.Catalog {
	return c.catalog
}

// SetCatalog switches the endpoint used by subsequent searches. The visible
// state is left untouched.
func (c *Controller) SetCatalog(catalog lookup.Catalog) {
	c.catalog = catalog
}

// Generation is the id of the most recent accepted request.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Begin validates input. Blank input moves to PhaseError and returns false
// without producing a request. Otherwise the controller moves to
// PhaseLoading and returns the request for the caller to send.
func (c *Controller) Begin(input string) (Request, bool) {
	query, err := lookup.NewQuery(input)
	if err != nil {
		c.state = State{Phase: PhaseError, Query: input, Message: lookup.UserMessage(err)}
		return Request{}, false
	}
	c.generation++
	c.state = State{Phase: PhaseLoading, Query: query.PartNumber}
	return Request{Generation: c.generation, Catalog: c.catalog, Query: query}, true
}

// Resolve applies an outcome. Outcomes from superseded requests, or that
// arrive when no request is loading, are dropped and Resolve returns false.
func (c *Controller) Resolve(out Outcome) bool {
	if out.Generation != c.generation || c.state.Phase != PhaseLoading {
		return false
	}
	query := c.state.Query
	if out.Err != nil {
		c.state = State{Phase: PhaseError, Query: query, Message: lookup.UserMessage(out.Err)}
		return true
	}
	if out.Response == nil {
		err := &lookup.NetworkError{Err: errors.New("empty response"), Message: lookup.InvalidResponseMessage}
		c.state = State{Phase: PhaseError, Query: query, Message: lookup.UserMessage(err)}
		return true
	}
	c.state = State{Phase: PhaseResults, Query: query, Response: out.Response}
	return true
}

// Perform runs a full search synchronously: Begin, one Search call, Resolve.
func (c *Controller) Perform(ctx context.Context, searcher Searcher, input string) State {
	req, ok := c.Begin(input)
	if !ok {
		return c.state
	}
	resp, err := searcher.Search(ctx, req.Catalog, req.Query)
	c.Resolve(Outcome{Generation: req.Generation, Response: resp, Err: err})
	return c.state
}

// VisiblePanel reports the single panel that should be shown.
func (c *Controller) VisiblePanel() Panel {
	switch c.state.Phase {
	case PhaseLoading:
		return PanelLoading
	case PhaseResults:
		return PanelResults
	case PhaseError:
		return PanelError
	default:
		return PanelNone
	}
}
