package guide

import (
	"fmt"
	"strings"
)

// Step is one line of the in-app usage guide.
type Step struct {
	Title       string
	Description string
}

// Context personalizes the guide for the current session.
type Context struct {
	Catalog     string
	NextCatalog string
	Example     string
	Endpoint    string
}

// Build returns the usage guide shown by the help overlay.
func Build(ctx Context) []Step {
	example := strings.TrimSpace(ctx.Example)
	if example == "" {
		example = "6R1998002"
	}
	catalog := strings.TrimSpace(ctx.Catalog)
	if catalog == "" {
		catalog = "Wipers"
	}

	steps := []Step{
		{
			Title:       "Search",
			Description: fmt.Sprintf("Type a part number such as %s and press Enter. Surrounding spaces are ignored; case is not.", example),
		},
		{
			Title:       "Read the results",
			Description: "Each group starts with its main part and section. The part you searched for is marked with ★ inside its group.",
		},
		{
			Title:       "Browse",
			Description: "Press tab to move into the results, then use the arrow keys or the mouse wheel to scroll. Tab or esc returns to the input.",
		},
	}
	if next := strings.TrimSpace(ctx.NextCatalog); next != "" {
		steps = append(steps, Step{
			Title:       "Switch catalog",
			Description: fmt.Sprintf("You are searching %s. Press ctrl+b to search %s instead.", catalog, next),
		})
	}
	if endpoint := strings.TrimSpace(ctx.Endpoint); endpoint != "" {
		steps = append(steps, Step{
			Title:       "Backend",
			Description: fmt.Sprintf("Lookups are sent to %s. Use --endpoint or PARTSCOUT_ENDPOINT to change it.", endpoint),
		})
	}
	return steps
}
