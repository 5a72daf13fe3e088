package main

import (
	"fmt"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	site, err := edit.FindSiteByName(deps.Ctx, deps.Sites, c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'rosh list' to see available sites.\n", rosh.ErrorMessage(err))
		return err
	}

	if err := fs.WriteBundle(c.Dir, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported site %q to %s\n", site.Name, c.Dir)
	return nil
}
