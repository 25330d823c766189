package tui

const (
	fullChromeHeight    = 20
	compactChromeHeight = 12
	minViewportHeight   = 3
	panelChromeWidth    = 4
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	compact        bool
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 10,
	}
}

// Update recomputes the layout for a window. Widths below compactWidth
// collapse the hero banner into a single line.
func (l *pageLayout) Update(width, height, compactWidth int) {
	l.windowWidth = width
	l.windowHeight = height
	l.compact = compactWidth > 0 && width < compactWidth

	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth

	chrome := fullChromeHeight
	if l.compact {
		chrome = compactChromeHeight
	}
	usable := height - chrome
	if usable < minViewportHeight {
		usable = minViewportHeight
	}
	l.viewportHeight = usable
}

func (l pageLayout) resultsWidth() int {
	return l.viewportWidth - panelChromeWidth
}

func (l pageLayout) inputWidth() int {
	width := l.viewportWidth - 14
	if width > 60 {
		width = 60
	}
	if width < 10 {
		width = 10
	}
	return width
}
