package guide

import (
	"strings"
	"testing"
)

func TestBuildPersonalizesSteps(t *testing.T) {
	steps := Build(Context{Catalog: "Wipers", NextCatalog: "Brake pads", Example: "5E1", Endpoint: "http://parts:8000"})
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	if !strings.Contains(steps[0].Description, "5E1") {
		t.Fatalf("example missing from first step: %q", steps[0].Description)
	}
	if !strings.Contains(steps[3].Description, "ctrl+b to search Brake pads") {
		t.Fatalf("catalog step not personalized: %q", steps[3].Description)
	}
	if !strings.Contains(steps[4].Description, "http://parts:8000") {
		t.Fatalf("endpoint step not personalized: %q", steps[4].Description)
	}
}

func TestBuildDefaults(t *testing.T) {
	steps := Build(Context{})
	if len(steps) != 3 {
		t.Fatalf("expected only the core steps, got %d", len(steps))
	}
	if !strings.Contains(steps[0].Description, "6R1998002") {
		t.Fatalf("fallback example missing: %q", steps[0].Description)
	}
}
