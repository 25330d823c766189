package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/partscout/internal/searchui"
)

const healthTimeout = 5 * time.Second

type searchOutcomeMsg struct {
	outcome searchui.Outcome
}

type healthResultMsg struct {
	err error
}

type hintTickMsg struct{}

// ExamplesMsg replaces the placeholder examples, eg. after a config reload.
type ExamplesMsg struct {
	Examples []string
}

func searchJob(searcher searchui.Searcher, req searchui.Request) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		resp, err := searcher.Search(ctx, req.Catalog, req.Query)
		return searchOutcomeMsg{outcome: searchui.Outcome{
			Generation: req.Generation,
			Response:   resp,
			Err:        err,
		}}, err
	}
}

func healthJob(checker HealthChecker) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, healthTimeout)
		defer cancel()
		err := checker.Health(ctx)
		return healthResultMsg{err: err}, err
	}
}

func hintTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return hintTickMsg{}
	})
}
