package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name           string
		width          int
		height         int
		viewportWidth  int
		viewportHeight int
		inputWidth     int
		compact        bool
	}{
		{name: "standard", width: 80, height: 24, viewportWidth: 76, viewportHeight: 4, inputWidth: 60},
		{name: "wide", width: 200, height: 40, viewportWidth: 196, viewportHeight: 20, inputWidth: 60},
		{name: "compact", width: 50, height: 30, viewportWidth: 46, viewportHeight: 18, inputWidth: 32, compact: true},
		{name: "tiny", width: 30, height: 10, viewportWidth: 40, viewportHeight: 3, inputWidth: 26, compact: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height, 60)
			if layout.viewportWidth != tc.viewportWidth {
				t.Fatalf("viewport width mismatch: got %d want %d", layout.viewportWidth, tc.viewportWidth)
			}
			if layout.viewportHeight != tc.viewportHeight {
				t.Fatalf("viewport height mismatch: got %d want %d", layout.viewportHeight, tc.viewportHeight)
			}
			if got := layout.inputWidth(); got != tc.inputWidth {
				t.Fatalf("input width mismatch: got %d want %d", got, tc.inputWidth)
			}
			if layout.compact != tc.compact {
				t.Fatalf("compact mismatch: got %v want %v", layout.compact, tc.compact)
			}
			if got := layout.resultsWidth(); got != tc.viewportWidth-panelChromeWidth {
				t.Fatalf("results width mismatch: got %d", got)
			}
		})
	}
}

func TestPageLayoutCompactDisabled(t *testing.T) {
	layout := newPageLayout()
	layout.Update(45, 30, 0)
	if layout.compact {
		t.Fatal("compact layout should be disabled when threshold is zero")
	}
}
