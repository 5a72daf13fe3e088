// Package htmltomarkdown renders components as Markdown previews.
package htmltomarkdown

import (
	"fmt"
	"strings"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

var _ rosh.Previewer = (*Previewer)(nil)

// emptyBody stands in for components without any text, such as a bare
// image strip.
const emptyBody = "_no text content_"

// Previewer renders component snapshots with html-to-markdown.
type Previewer struct {
	conv *converter.Converter
}

// NewPreviewer creates a new Previewer. Tables are kept since programs are
// often laid out as schedules.
func NewPreviewer() *Previewer {
	return &Previewer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Preview renders c as a quoted header line followed by its markup in
// Markdown. Returns EINVALID if the component has no markup.
func (p *Previewer) Preview(c *rosh.Component) (string, error) {
	if c == nil || strings.TrimSpace(c.HTML) == "" {
		return "", rosh.Errorf(rosh.EINVALID, "component has no markup to preview")
	}

	body, err := p.conv.ConvertString(c.HTML)
	if err != nil {
		return "", rosh.Errorf(rosh.EINTERNAL, "failed to preview component %q: %v", c.ID, err)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = emptyBody
	}

	return fmt.Sprintf("> %s (%s)\n\n%s", header(c), c.ID, body), nil
}

// header returns the display name, falling back to the type for components
// parsed without one.
func header(c *rosh.Component) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Type.DisplayName()
}
