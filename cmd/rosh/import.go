package main

import (
	"fmt"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	bundle, err := fs.ReadBundle(c.Dir, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	existing, err := edit.FindSiteByName(deps.Ctx, deps.Sites, c.Name)
	switch {
	case err == nil && !c.Force:
		fmt.Fprintf(deps.Stderr, "error: site %q already exists. Use --force to replace it.\n", c.Name)
		return rosh.Errorf(rosh.EINVALID, "site %q already exists", c.Name)
	case err == nil:
		_, err = deps.Sites.UpdateSite(deps.Ctx, existing.ID, rosh.SiteUpdate{
			HTML: &bundle.HTML,
			CSS:  &bundle.CSS,
			JS:   &bundle.JS,
		})
	case rosh.ErrorCode(err) == rosh.ENOTFOUND:
		err = deps.Sites.CreateSite(deps.Ctx, bundle)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	components := deps.Parser.ParseComponents(bundle.HTML, bundle.CSS)
	fmt.Fprintf(deps.Stdout, "Imported site %q (%d components)\n", c.Name, len(components))
	return nil
}
