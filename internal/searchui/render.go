package searchui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/partscout/internal/lookup"
)

// HighlightMarker prefixes the part that matches the query so the match is
// visible without color support.
const HighlightMarker = "★ "

// PartView is one rendered part badge.
type PartView struct {
	Text        string
	Highlighted bool
}

// GroupView is the display model of a lookup.ResultGroup.
type GroupView struct {
	MainPart string
	Section  string
	Parts    []PartView
}

// Theme holds the styles used by RenderResults.
type Theme struct {
	Info          lipgloss.Style
	MainPart      lipgloss.Style
	SectionBadge  lipgloss.Style
	Part          lipgloss.Style
	PartHighlight lipgloss.Style
	Error         lipgloss.Style
}

// DefaultTheme is the colored theme used in the terminal program.
func DefaultTheme() Theme {
	return Theme{
		Info:          lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		MainPart:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff8c00")),
		SectionBadge:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1),
		Part:          lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).Padding(0, 1),
		PartHighlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// PlainTheme renders without any styling.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Info:          plain,
		MainPart:      plain,
		SectionBadge:  plain,
		Part:          plain,
		PartHighlight: plain,
		Error:         plain,
	}
}

// BuildGroups projects resp into display groups. Order of groups and parts is
// kept as received; a part is highlighted when it equals query ignoring case.
func BuildGroups(resp *lookup.Response, query string) []GroupView {
	if resp == nil {
		return nil
	}
	query = strings.TrimSpace(query)
	groups := make([]GroupView, 0, len(resp.Results))
	for _, group := range resp.Results {
		parts := group.Parts()
		view := GroupView{
			MainPart: group.MainPart,
			Section:  group.SectionLabel(),
			Parts:    make([]PartView, 0, len(parts)),
		}
		for _, part := range parts {
			view.Parts = append(view.Parts, PartView{
				Text:        part,
				Highlighted: query != "" && strings.EqualFold(part, query),
			})
		}
		groups = append(groups, view)
	}
	return groups
}

// RenderResults renders the results panel body. An empty result list yields
// a single informational line carrying resp.Message; otherwise only the
// groups are shown. width <= 0 disables wrapping.
func RenderResults(resp *lookup.Response, query string, theme Theme, width int) string {
	if resp == nil {
		return ""
	}
	if len(resp.Results) == 0 {
		line := "ℹ " + strings.TrimSpace(resp.Message)
		return theme.Info.Render(wrap(line, width))
	}

	blocks := make([]string, 0, len(resp.Results))
	for _, group := range BuildGroups(resp, query) {
		header := fmt.Sprintf("%s %s",
			theme.MainPart.Render("Main Part: "+group.MainPart),
			theme.SectionBadge.Render("["+group.Section+"]"),
		)
		badges := make([]string, 0, len(group.Parts))
		for _, part := range group.Parts {
			if part.Highlighted {
				badges = append(badges, theme.PartHighlight.Render(HighlightMarker+part.Text))
				continue
			}
			badges = append(badges, theme.Part.Render(part.Text))
		}
		body := wrap(strings.Join(badges, "  "), width-2)
		blocks = append(blocks, header+"\n"+indent(body, "  "))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderError renders the error panel body.
func RenderError(message string, theme Theme, width int) string {
	return theme.Error.Render(wrap("✖ "+message, width))
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
