package goquery

import (
	"strconv"
	"strings"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/PuerkitoBio/goquery"
)

// Ensure Parser implements the engine interfaces at compile time.
var (
	_ rosh.ComponentParser  = (*Parser)(nil)
	_ rosh.ComponentMutator = (*Parser)(nil)
)

// candidateSelector deliberately over-selects; one query returns each
// element once, in document order.
const candidateSelector = `[data-component], [id*="section"], [data-editable="true"], ` +
	`header, footer, main > section, .tournament-hero, .tournament-bracket`

// fallbackSelector is used when candidateSelector matches nothing, so
// hand-written markup without data attributes still yields components.
const fallbackSelector = `header, main section, .hero, .bracket, .stream, .sponsors`

// nameHeadingLength is the number of heading characters appended to a
// component name.
const nameHeadingLength = 30

// Parser classifies, extracts and mutates components of site documents.
// It holds no state; every call parses its own tree and discards it.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseComponents returns the components of html in document order.
func (p *Parser) ParseComponents(html, css string) []*rosh.Component {
	doc := parseFragment(Normalize(html))

	candidates := selectCandidates(doc)
	components := make([]*rosh.Component, 0, len(candidates))
	for i, el := range candidates {
		components = append(components, buildComponent(el, i, css))
	}
	return components
}

// selectCandidates returns the candidate elements of a parsed document.
func selectCandidates(doc *goquery.Document) []*goquery.Selection {
	sel := doc.Find(candidateSelector)
	if sel.Length() == 0 {
		sel = doc.Find(fallbackSelector)
	}

	candidates := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		candidates = append(candidates, s)
	})
	return candidates
}

// componentID returns the DOM id, else the data-component value, else a
// synthesized positional id.
func componentID(el *goquery.Selection, index int) string {
	if id := attr(el, "id"); id != "" {
		return id
	}
	if dc := attr(el, "data-component"); dc != "" {
		return dc
	}
	return syntheticIDPrefix + strconv.Itoa(index)
}

const syntheticIDPrefix = "component-"

func buildComponent(el *goquery.Selection, index int, css string) *rosh.Component {
	id := componentID(el, index)
	typ := Classify(el)

	c := &rosh.Component{
		ID:         id,
		Type:       typ,
		Name:       componentName(el, typ),
		Properties: extractProperties(el, typ),
		Styles:     extractStyles(el, id, css),
	}
	if typ == rosh.TypeCustom {
		c.Custom = &rosh.CustomComponent{
			ID:          id,
			Name:        attr(el, "data-name"),
			Description: attr(el, "data-description"),
			Icon:        attr(el, "data-icon"),
			Category:    attr(el, "data-category"),
		}
	}
	if s, err := goquery.OuterHtml(el); err == nil {
		c.HTML = s
	}
	return c
}

// componentName returns the display name of the type, suffixed with the
// start of the title, or of the first heading outside list items, so
// components of the same type can be told apart.
func componentName(el *goquery.Selection, typ rosh.ComponentType) string {
	name := typ.DisplayName()
	if typ == rosh.TypeCustom {
		if custom := strings.TrimSpace(attr(el, "data-name")); custom != "" {
			name = custom
		}
	}

	heading := text(findTitle(el))
	if heading == "" {
		heading = text(first(outsideItems(el.Find(headingSelector))))
	}
	if heading == "" {
		return name
	}
	if r := []rune(heading); len(r) > nameHeadingLength {
		heading = strings.TrimSpace(string(r[:nameHeadingLength]))
	}
	return name + ": " + heading
}
