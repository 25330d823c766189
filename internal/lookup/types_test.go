package lookup

import (
	"errors"
	"testing"
)

func TestNewQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "5E1", "5E1", false},
		{"padded", "  1S1\n", "1S1", false},
		{"empty", "", "", true},
		{"whitespace", " \t ", "", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewQuery(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyQuery) {
					t.Fatalf("NewQuery(%q) error = %v, want ErrEmptyQuery", tt.in, err)
				}
				return
			}
			if err != nil || got.PartNumber != tt.want {
				t.Fatalf("NewQuery(%q) = %q, %v; want %q", tt.in, got.PartNumber, err, tt.want)
			}
		})
	}
}

func TestSectionLabelDefaultsToUnknown(t *testing.T) {
	t.Parallel()

	if got := (ResultGroup{}).SectionLabel(); got != UnknownSection {
		t.Fatalf("SectionLabel() = %q, want %q", got, UnknownSection)
	}
	if got := (ResultGroup{Section: "Engine"}).SectionLabel(); got != "Engine" {
		t.Fatalf("SectionLabel() = %q, want Engine", got)
	}
}

func TestPartsKeepsReceivedOrder(t *testing.T) {
	t.Parallel()

	group := ResultGroup{MainPart: "B", AllParts: []string{"C", "A", "C"}}
	got := group.Parts()
	want := []string{"C", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("Parts() = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Parts() = %#v, want %#v", got, want)
		}
	}
}

func TestCatalogs(t *testing.T) {
	t.Parallel()

	if CatalogWipers.Next() != CatalogBrakePads || CatalogBrakePads.Next() != CatalogWipers {
		t.Fatal("catalog toggle order broken")
	}
	if got, err := ParseCatalog("Brake-Pads"); err != nil || got != CatalogBrakePads {
		t.Fatalf("ParseCatalog = %q, %v", got, err)
	}
	if got, err := ParseCatalog(""); err != nil || got != CatalogWipers {
		t.Fatalf("ParseCatalog(\"\") = %q, %v", got, err)
	}
	if _, err := ParseCatalog("mirrors"); err == nil {
		t.Fatal("expected unknown catalog error")
	}
}
