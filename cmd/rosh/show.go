package main

import (
	"fmt"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
	"gopkg.in/yaml.v3"
)

// componentView is the printed form of a component.
type componentView struct {
	ID         string                `yaml:"id"`
	Type       rosh.ComponentType    `yaml:"type"`
	Name       string                `yaml:"name"`
	Properties map[string]any        `yaml:"properties,omitempty"`
	Styles     map[string]string     `yaml:"styles,omitempty"`
	Custom     *rosh.CustomComponent `yaml:"custom,omitempty"`
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	site, err := edit.FindSiteByName(deps.Ctx, deps.Sites, c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'rosh list' to see available sites.\n", rosh.ErrorMessage(err))
		return err
	}

	comp, err := deps.Editor.Component(deps.Ctx, site.ID, c.Component)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'rosh components %s' to see available components.\n", rosh.ErrorMessage(err), c.Site)
		return err
	}

	switch {
	case c.HTML:
		fmt.Fprintln(deps.Stdout, comp.HTML)
		return nil
	case c.Preview:
		md, err := deps.Previewer.Preview(comp)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rosh.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	out, err := yaml.Marshal(componentView{
		ID:         comp.ID,
		Type:       comp.Type,
		Name:       comp.Name,
		Properties: comp.Properties,
		Styles:     comp.Styles,
		Custom:     comp.Custom,
	})
	if err != nil {
		return fmt.Errorf("failed to encode component: %w", err)
	}
	_, err = deps.Stdout.Write(out)
	return err
}
