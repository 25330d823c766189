package tui

import "github.com/charmbracelet/lipgloss"

type focusTarget int

const (
	focusInput focusTarget = iota
	focusResults
)

const heroTagline = "Cross-reference part numbers with PartScout."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	inputCharLimit            = 64
	placeholderFormat         = "Enter part number (e.g., %s)"
	idleHint                  = "Type a part number and press Enter to look up its analogs."
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	submitStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
	submitActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	catalogStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	panelStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	panelFocusedStyle  = panelStyle.Copy().BorderForeground(lipgloss.Color("#ff8c00"))

	heroAccentColor        = lipgloss.Color("#ff8c00")
	heroEmberColor         = lipgloss.Color("#2b1400")
	heroTextColor          = lipgloss.Color("#fff4d0")
	heroSecondaryTextColor = lipgloss.Color("#ffb347")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroEmberColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#110600"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"██████╗    █████╗   ██████╗   ████████╗  ███████╗   ██████╗   ██████╗   ██╗   ██╗  ████████╗",
		"██╔══██╗  ██╔══██╗  ██╔══██╗  ╚══██╔══╝  ██╔════╝  ██╔════╝  ██╔═══██╗  ██║   ██║  ╚══██╔══╝",
		"██████╔╝  ███████║  ██████╔╝     ██║     ███████╗  ██║       ██║   ██║  ██║   ██║     ██║",
		"██╔═══╝   ██╔══██║  ██╔══██╗     ██║     ╚════██║  ██║       ██║   ██║  ██║   ██║     ██║",
		"██║       ██║  ██║  ██║  ██║     ██║     ███████║  ╚██████╗  ╚██████╔╝  ╚██████╔╝     ██║",
		"╚═╝       ╚═╝  ╚═╝  ╚═╝  ╚═╝     ╚═╝     ╚══════╝   ╚═════╝   ╚═════╝    ╚═════╝      ╚═╝",
	}
)
