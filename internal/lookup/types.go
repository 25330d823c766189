package lookup

import (
	"fmt"
	"strings"
)

// Catalog selects which backend search endpoint a query is sent to.
type Catalog string

const (
	CatalogWipers    Catalog = "wipers"
	CatalogBrakePads Catalog = "brake-pads"
)

// Catalogs lists every supported catalog in toggle order.
var Catalogs = []Catalog{CatalogWipers, CatalogBrakePads}

// Path returns the endpoint path that serves the catalog.
func (c Catalog) Path() string {
	switch c {
	case CatalogBrakePads:
		return "/search-brake-pads"
	default:
		return "/search"
	}
}

// Label is the human readable catalog name.
func (c Catalog) Label() string {
	switch c {
	case CatalogBrakePads:
		return "Brake pads"
	default:
		return "Wipers"
	}
}

// Next returns the catalog after c in toggle order.
func (c Catalog) Next() Catalog {
	for i, candidate := range Catalogs {
		if candidate == c {
			return Catalogs[(i+1)%len(Catalogs)]
		}
	}
	return CatalogWipers
}

// ParseCatalog maps a config or flag value to a Catalog.
func ParseCatalog(value string) (Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(CatalogWipers):
		return CatalogWipers, nil
	case string(CatalogBrakePads), "brake_pads", "brakepads":
		return CatalogBrakePads, nil
	default:
		return "", fmt.Errorf("unknown catalog %q (must be one of: wipers, brake-pads)", value)
	}
}

// Query is a single trimmed part-number lookup.
type Query struct {
	PartNumber string
}

// NewQuery trims input and rejects blank part numbers with ErrEmptyQuery.
func NewQuery(input string) (Query, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Query{}, ErrEmptyQuery
	}
	return Query{PartNumber: trimmed}, nil
}

// UnknownSection is displayed for groups the backend did not classify.
const UnknownSection = "Unknown"

// ResultGroup is one cluster of cross-referenced part numbers. Wiper results
// carry AllParts; brake-pad results carry OEAnalogue and NotOriginal instead.
type ResultGroup struct {
	MainPart    string   `json:"main_part"`
	Section     string   `json:"section,omitempty"`
	AllParts    []string `json:"all_parts,omitempty"`
	OEAnalogue  string   `json:"oe_analogue,omitempty"`
	NotOriginal string   `json:"not_original,omitempty"`
}

// SectionLabel returns the section badge text.
func (g ResultGroup) SectionLabel() string {
	if strings.TrimSpace(g.Section) == "" {
		return UnknownSection
	}
	return g.Section
}

// Parts returns the parts to display, in the order received.
func (g ResultGroup) Parts() []string {
	if len(g.AllParts) > 0 {
		return g.AllParts
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{g.MainPart, g.OEAnalogue, g.NotOriginal} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// Response is the success payload of a search call.
type Response struct {
	Results []ResultGroup `json:"results"`
	Message string        `json:"message"`
}
