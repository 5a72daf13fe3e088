package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
)

// Run executes the components command.
func (c *ComponentsCmd) Run(deps *Dependencies) error {
	site, err := edit.FindSiteByName(deps.Ctx, deps.Sites, c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'rosh list' to see available sites.\n", rosh.ErrorMessage(err))
		return err
	}

	components, err := deps.Editor.Components(deps.Ctx, site.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(components)
	}

	if len(components) == 0 {
		fmt.Fprintf(deps.Stdout, "No components found in %q\n", site.Name)
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for _, comp := range components {
		fmt.Fprintf(w, "%s\t%s\t%s\n", comp.ID, comp.Type, comp.Name)
	}
	return w.Flush()
}
