package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/partscout/internal/guide"
	"github.com/csheth/partscout/internal/searchui"
)

func (m *model) View() string {
	return joinNonEmpty([]string{
		m.heroView(),
		m.catalogLine(),
		m.inputPanel(),
		m.statePanel(),
		m.keyLegendView(),
	})
}

func (m *model) heroView() string {
	if m.layout.compact || !logoFits(m.layout.windowWidth) {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			heroTitleStyle.Render("PartScout"),
			" ",
			taglineStyle.Render(heroTagline),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, renderLogo(), taglineStyle.Render(heroTagline))
}

func (m *model) catalogLine() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		catalogStyle.Render("Catalog: "+m.controller.Catalog().Label()),
		helperStyle.Render("  ctrl+b to switch"),
	)
}

func (m *model) inputPanel() string {
	submit := submitStyle.Render("⏎ Search")
	if strings.TrimSpace(m.input.Value()) != "" {
		submit = submitActiveStyle.Render("⏎ Search")
	}
	return strings.Join([]string{
		sectionHeaderStyle.Render("Part Number"),
		lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", submit),
	}, "\n")
}

// statePanel renders exactly one of the loading, results and error panels,
// or the idle hint when none is active.
func (m *model) statePanel() string {
	if m.showHelp {
		return m.helpView()
	}
	state := m.controller.State()
	width := m.layout.viewportWidth
	switch m.controller.VisiblePanel() {
	case searchui.PanelLoading:
		return helperStyle.Render(fmt.Sprintf("%s Searching %s for %s…",
			m.spinner.View(), strings.ToLower(m.controller.Catalog().Label()), state.Query))
	case searchui.PanelResults:
		style := panelStyle
		if m.focus == focusResults {
			style = panelFocusedStyle
		}
		return style.Render(m.viewport.View())
	case searchui.PanelError:
		return searchui.RenderError(state.Message, m.theme, width)
	default:
		return helperStyle.Render(wordwrap.String(idleHint, width))
	}
}

func (m *model) helpView() string {
	catalog := m.controller.Catalog()
	steps := guide.Build(guide.Context{
		Catalog:     catalog.Label(),
		NextCatalog: catalog.Next().Label(),
		Example:     m.hints.Current(),
		Endpoint:    m.config.Endpoint,
	})
	width := m.layout.resultsWidth()
	lines := []string{sectionHeaderStyle.Render("How to use PartScout")}
	for i, step := range steps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, keyDescStyle.Copy().Bold(true).Render(step.Title)))
		lines = append(lines, helperStyle.Render(wordwrap.String("   "+step.Description, width)))
	}
	lines = append(lines, "", helperStyle.Render("Press any key to close."))
	return panelStyle.Render(strings.Join(lines, "\n"))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyHints() []keyHint {
	hints := []keyHint{{Key: "enter", Description: "search"}}
	if m.controller.VisiblePanel() == searchui.PanelResults {
		if m.focus == focusResults {
			hints = append(hints, keyHint{Key: "tab", Description: "edit query"}, keyHint{Key: "↑/↓", Description: "scroll"})
		} else {
			hints = append(hints, keyHint{Key: "tab", Description: "browse results"})
		}
	}
	hints = append(hints,
		keyHint{Key: "ctrl+b", Description: "catalog"},
		keyHint{Key: "?", Description: "help"},
		keyHint{Key: "esc", Description: "clear"},
		keyHint{Key: "ctrl+c", Description: "quit"},
	)
	return hints
}

func (m *model) keyLegendView() string {
	cells := make([]string, 0, len(m.keyHints()))
	for _, hint := range m.keyHints() {
		cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(hint.Key),
			keyDescStyle.Render(" "+hint.Description+"  "),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func logoFits(windowWidth int) bool {
	if windowWidth <= 0 {
		return true
	}
	return windowWidth >= logoWidth()+2
}

func logoWidth() int {
	width := 0
	for _, line := range logoArtLines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}
	return width + 1
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width++ // room for the shadow shift
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y][x] = cell{r: r, style: logoFaceStyle}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
