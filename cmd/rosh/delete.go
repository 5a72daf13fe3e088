package main

import (
	"fmt"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return rosh.Errorf(rosh.EINVALID, "use --force to confirm deletion")
	}

	site, err := edit.FindSiteByName(deps.Ctx, deps.Sites, c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'rosh list' to see available sites.\n", rosh.ErrorMessage(err))
		return err
	}

	if err := deps.Sites.DeleteSite(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted site %q\n", site.Name)
	return nil
}
