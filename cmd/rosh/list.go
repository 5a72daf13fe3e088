package main

import (
	"fmt"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"golang.org/x/sync/errgroup"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sites, err := deps.Sites.FindSites(deps.Ctx, rosh.SiteFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintln(deps.Stdout, "No sites found. Use 'rosh import' to add one.")
		return nil
	}

	counts := make([]int, len(sites))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for i, site := range sites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = len(deps.Parser.ParseComponents(site.HTML, site.CSS))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
		return err
	}

	for i, s := range sites {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d components\n", s.ID, s.Name, counts[i])
	}

	return nil
}
