package tui

import (
	"fmt"
	"strings"
)

// hintRotator cycles the input placeholder through example part numbers.
// It never reads or writes search state.
type hintRotator struct {
	examples []string
	index    int
}

func newHintRotator(examples []string) *hintRotator {
	h := &hintRotator{}
	h.SetExamples(examples)
	return h
}

func (h *hintRotator) SetExamples(examples []string) {
	cleaned := make([]string, 0, len(examples))
	for _, example := range examples {
		if trimmed := strings.TrimSpace(example); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	h.examples = cleaned
	if h.index >= len(h.examples) {
		h.index = 0
	}
}

func (h *hintRotator) Current() string {
	if len(h.examples) == 0 {
		return ""
	}
	return h.examples[h.index]
}

func (h *hintRotator) Placeholder() string {
	current := h.Current()
	if current == "" {
		return "Enter part number"
	}
	return fmt.Sprintf(placeholderFormat, current)
}

// Tick advances the rotation unless the user is typing in the focused input.
// The returned placeholder should only be applied when apply is true, which
// happens while the input is empty.
func (h *hintRotator) Tick(focused bool, value string) (placeholder string, apply bool) {
	if len(h.examples) == 0 {
		return "", false
	}
	if focused && value != "" {
		return "", false
	}
	h.index = (h.index + 1) % len(h.examples)
	if value != "" {
		return "", false
	}
	return h.Placeholder(), true
}
