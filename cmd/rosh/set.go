package main

import (
	"fmt"
	"os"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
	roshyaml "github.com/Jasper-van-Tilborg/roshproject-sub001/yaml"
)

// Run executes the set command.
func (c *SetCmd) Run(deps *Dependencies) error {
	upd, err := c.update()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}
	if upd.IsZero() {
		fmt.Fprintln(deps.Stderr, "error: nothing to update. Use --prop, --style, --content or --file.")
		return rosh.Errorf(rosh.EINVALID, "nothing to update")
	}

	site, err := edit.FindSiteByName(deps.Ctx, deps.Sites, c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'rosh list' to see available sites.\n", rosh.ErrorMessage(err))
		return err
	}

	comp, err := deps.Editor.ApplyUpdate(deps.Ctx, site.ID, c.Component, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %s (%s)\n", comp.ID, comp.Name)
	return nil
}

// update builds the update from the file, if any, overlaid with the flags.
func (c *SetCmd) update() (rosh.ComponentUpdate, error) {
	var upd rosh.ComponentUpdate
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return upd, err
		}
		defer f.Close()

		if upd, err = roshyaml.DecodeUpdate(f); err != nil {
			return upd, err
		}
	}

	if len(c.Prop) > 0 && upd.Properties == nil {
		upd.Properties = make(map[string]any, len(c.Prop))
	}
	for k, v := range c.Prop {
		upd.Properties[k] = v
	}

	if len(c.Style) > 0 && upd.Styles == nil {
		upd.Styles = make(map[string]string, len(c.Style))
	}
	for k, v := range c.Style {
		upd.Styles[k] = v
	}

	if c.Content != nil {
		upd.Content = c.Content
	}
	return upd, nil
}
