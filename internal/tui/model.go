package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/partscout/internal/logger"
	"github.com/csheth/partscout/internal/lookup"
	"github.com/csheth/partscout/internal/searchui"
)

// HealthChecker probes the backend once at startup.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Config wires runtime options into the TUI program.
type Config struct {
	Searcher     searchui.Searcher
	Health       HealthChecker
	Catalog      lookup.Catalog
	Examples     []string
	HintInterval time.Duration
	CompactWidth int
	Endpoint     string // shown in the help overlay
	Logger       *logger.Logger
}

var errNoSearcher = errors.New("no lookup backend configured")

const defaultHintInterval = 3 * time.Second

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.HintInterval <= 0 {
		config.HintInterval = defaultHintInterval
	}
	log := config.Logger
	if log == nil {
		log = logger.Discard()
	}

	hints := newHintRotator(config.Examples)

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = hints.Placeholder()
	input.CharLimit = inputCharLimit
	input.Width = 40
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	layout := newPageLayout()
	vp := viewport.New(layout.resultsWidth(), layout.viewportHeight)
	vp.MouseWheelEnabled = true

	return &model{
		config:     config,
		log:        log.WithComponent("tui"),
		controller: searchui.NewController(config.Catalog),
		theme:      searchui.DefaultTheme(),
		input:      input,
		spinner:    spin,
		viewport:   vp,
		layout:     layout,
		hints:      hints,
		jobs:       newJobBus(log),
		running:    map[string]jobKind{},
		focus:      focusInput,
	}
}

type model struct {
	config     Config
	log        *logger.Logger
	controller *searchui.Controller
	theme      searchui.Theme

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	layout   pageLayout
	hints    *hintRotator
	jobs     *jobBus
	running  map[string]jobKind
	focus    focusTarget
	showHelp bool
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, hintTickCmd(m.config.HintInterval)}
	if m.config.Health != nil {
		cmds = append(cmds, m.jobs.Start(jobKindHealth, healthJob(m.config.Health)))
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.controller.State().Phase == searchui.PhaseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if m.controller.VisiblePanel() == searchui.PanelResults {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height, m.config.CompactWidth)
		m.input.Width = m.layout.inputWidth()
		m.viewport.Width = m.layout.resultsWidth()
		m.viewport.Height = m.layout.viewportHeight
		m.syncResults()
		return m, nil
	case jobSignalMsg:
		m.running[msg.Snapshot.ID] = msg.Snapshot.Kind
		return m, nil
	case jobResultEnvelope:
		delete(m.running, msg.Snapshot.ID)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case searchOutcomeMsg:
		if !m.controller.Resolve(msg.outcome) {
			m.log.Debug("dropped stale search outcome (generation %d, current %d)", msg.outcome.Generation, m.controller.Generation())
			return m, nil
		}
		m.syncResults()
		m.viewport.GotoTop()
		return m, nil
	case healthResultMsg:
		if msg.err != nil {
			m.log.WarnWithFields("backend health probe failed", []logger.Field{logger.Err(msg.err)})
		} else {
			m.log.Info("backend health probe ok")
		}
		return m, nil
	case hintTickMsg:
		if placeholder, apply := m.hints.Tick(m.input.Focused(), m.input.Value()); apply {
			m.input.Placeholder = placeholder
		}
		return m, hintTickCmd(m.config.HintInterval)
	case ExamplesMsg:
		m.hints.SetExamples(msg.Examples)
		if m.input.Value() == "" {
			m.input.Placeholder = m.hints.Placeholder()
		}
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		m.showHelp = false
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		return nil
	}
	if msg.String() == "?" && (m.focus == focusResults || m.input.Value() == "") {
		m.showHelp = true
		return nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEnter:
		return m.submitSearch()
	case tea.KeyTab, tea.KeyShiftTab:
		return m.toggleFocus()
	case tea.KeyCtrlB:
		m.toggleCatalog()
		return nil
	case tea.KeyEsc:
		if m.focus == focusResults {
			return m.focusInputCmd()
		}
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.input.Placeholder = m.hints.Placeholder()
			return nil
		}
		return tea.Quit
	}

	if m.focus == focusResults {
		if msg.String() == "q" {
			return tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submitSearch is the trigger for both Enter and the submit hint.
func (m *model) submitSearch() tea.Cmd {
	req, ok := m.controller.Begin(m.input.Value())
	m.syncResults()
	if !ok {
		return nil
	}
	if m.config.Searcher == nil {
		m.controller.Resolve(searchui.Outcome{Generation: req.Generation, Err: errNoSearcher})
		return nil
	}
	m.log.Info("search %q in %s (generation %d)", req.Query.PartNumber, req.Catalog, req.Generation)
	return tea.Batch(
		m.jobs.Start(jobKindSearch, searchJob(m.config.Searcher, req)),
		m.spinner.Tick,
	)
}

func (m *model) toggleCatalog() {
	next := m.controller.Catalog().Next()
	m.controller.SetCatalog(next)
	m.log.Info("catalog switched to %s", next)
}

func (m *model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		if m.controller.VisiblePanel() != searchui.PanelResults {
			return nil
		}
		m.focus = focusResults
		m.input.Blur()
		return nil
	}
	return m.focusInputCmd()
}

func (m *model) focusInputCmd() tea.Cmd {
	m.focus = focusInput
	if m.input.Value() == "" {
		m.input.Placeholder = m.hints.Placeholder()
	}
	if m.layout.compact {
		m.viewport.GotoTop()
	}
	return m.input.Focus()
}

func (m *model) syncResults() {
	state := m.controller.State()
	if state.Phase != searchui.PhaseResults {
		m.viewport.SetContent("")
		if m.focus == focusResults {
			m.focus = focusInput
			m.input.Focus()
		}
		return
	}
	m.viewport.SetContent(searchui.RenderResults(state.Response, state.Query, m.theme, m.viewport.Width))
}
