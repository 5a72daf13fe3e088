// Package edit drives the parse, mutate and persist loop over stored sites.
package edit

import (
	"context"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
)

// Editor applies component updates to stored sites. The stored HTML is the
// only state: every call re-reads the site and re-parses it, so components
// returned earlier never go stale inside the editor.
type Editor struct {
	Sites   rosh.SiteService
	Parser  rosh.ComponentParser
	Mutator rosh.ComponentMutator
}

// NewEditor creates a new Editor.
func NewEditor(sites rosh.SiteService, parser rosh.ComponentParser, mutator rosh.ComponentMutator) *Editor {
	return &Editor{Sites: sites, Parser: parser, Mutator: mutator}
}

// FindSiteByName returns the site with the given name.
// Returns ENOTFOUND if no site has that name.
func FindSiteByName(ctx context.Context, sites rosh.SiteService, name string) (*rosh.Site, error) {
	found, err := sites.FindSites(ctx, rosh.SiteFilter{Name: &name, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, rosh.Errorf(rosh.ENOTFOUND, "site %q not found", name)
	}
	return found[0], nil
}

// Components returns the components of a site in document order.
func (e *Editor) Components(ctx context.Context, siteID string) ([]*rosh.Component, error) {
	site, err := e.Sites.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return e.Parser.ParseComponents(site.HTML, site.CSS), nil
}

// Component returns one component of a site.
// Returns ENOTFOUND if the id does not resolve.
func (e *Editor) Component(ctx context.Context, siteID, componentID string) (*rosh.Component, error) {
	components, err := e.Components(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return findComponent(components, componentID)
}

// ApplyUpdate applies upd to a component, stores the resulting HTML and
// returns the component as parsed from the stored text.
//
// The id must name one of the parsed components; elements that merely carry
// a matching DOM id are not editable and give ENOTFOUND without a write. An
// update that leaves the document unchanged is a no-op and nothing is
// written.
func (e *Editor) ApplyUpdate(ctx context.Context, siteID, componentID string, upd rosh.ComponentUpdate) (*rosh.Component, error) {
	if upd.IsZero() {
		return nil, rosh.Errorf(rosh.EINVALID, "update changes nothing")
	}

	site, err := e.Sites.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}

	current, err := findComponent(e.Parser.ParseComponents(site.HTML, site.CSS), componentID)
	if err != nil {
		return nil, err
	}

	html := e.Mutator.UpdateComponent(site.HTML, componentID, upd)
	if html == site.HTML {
		return current, nil
	}

	site, err = e.Sites.UpdateSite(ctx, siteID, rosh.SiteUpdate{HTML: &html})
	if err != nil {
		return nil, err
	}

	comp, err := findComponent(e.Parser.ParseComponents(site.HTML, site.CSS), componentID)
	if err != nil {
		return nil, rosh.Errorf(rosh.EINTERNAL, "component %q missing after update", componentID)
	}
	return comp, nil
}

func findComponent(components []*rosh.Component, id string) (*rosh.Component, error) {
	for _, c := range components {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, rosh.Errorf(rosh.ENOTFOUND, "component %q not found", id)
}
