package main

import (
	"context"
	"io"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/edit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Sites     rosh.SiteService
	Parser    rosh.ComponentParser
	Editor    *edit.Editor
	Previewer rosh.Previewer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Import     ImportCmd     `cmd:"" help:"Import a site from a directory bundle"`
	List       ListCmd       `cmd:"" help:"List all sites"`
	Components ComponentsCmd `cmd:"" help:"List the components of a site"`
	Show       ShowCmd       `cmd:"" help:"Show the properties and styles of a component"`
	Set        SetCmd        `cmd:"" help:"Update a component"`
	Export     ExportCmd     `cmd:"" help:"Export a site to a directory bundle"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a site"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name  string `arg:"" help:"Site name"`
	Dir   string `arg:"" type:"existingdir" help:"Directory holding index.html, styles.css and script.js"`
	Force bool   `short:"f" help:"Replace the site if it exists"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Concurrency int `short:"c" default:"4" help:"Sites parsed concurrently"`
}

// ComponentsCmd is the "components" subcommand.
type ComponentsCmd struct {
	Site string `arg:"" help:"Site name"`
	JSON bool   `help:"Print components as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Site      string `arg:"" help:"Site name"`
	Component string `arg:"" help:"Component id"`
	HTML      bool   `name:"html" help:"Print the component markup"`
	Preview   bool   `short:"p" help:"Print a Markdown preview of the component"`
}

// SetCmd is the "set" subcommand.
type SetCmd struct {
	Site      string            `arg:"" help:"Site name"`
	Component string            `arg:"" help:"Component id"`
	Prop      map[string]string `short:"P" mapsep:"none" help:"Set a property (key=value, repeatable)"`
	Style     map[string]string `short:"s" mapsep:"none" help:"Set a camelCase style; an empty value removes it (repeatable)"`
	Content   *string           `help:"Replace the inner markup of the component"`
	File      string            `short:"f" type:"existingfile" help:"YAML or JSON update file"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Site string `arg:"" help:"Site name"`
	Dir  string `arg:"" help:"Output directory, replaced if it exists"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Site  string `arg:"" help:"Site name"`
	Force bool   `help:"Confirm deletion"`
}
