package goquery_test

import (
	"strings"
	"testing"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/Jasper-van-Tilborg/roshproject-sub001/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// props builds an update that only sets properties.
func props(kv rosh.Properties) rosh.ComponentUpdate {
	return rosh.ComponentUpdate{Properties: kv}
}

// reparse returns the component id of html after parsing it again.
func reparse(t *testing.T, html, id string) *rosh.Component {
	t.Helper()
	return findComponent(t, goquery.NewParser().ParseComponents(html, ""), id)
}

func TestParser_UpdateComponent(t *testing.T) {
	t.Parallel()

	t.Run("updates an existing title in place", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section" data-component="hero"><h1>Welcome</h1><p>Join us</p></section>`

		got := goquery.NewParser().UpdateComponent(html, "hero-section", props(rosh.Properties{"title": "New Title"}))

		assert.Equal(t, `<section id="hero-section" data-component="hero"><h1>New Title</h1><p>Join us</p></section>`, got)
	})

	t.Run("returns the input unchanged for an unknown id", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "missing", props(rosh.Properties{"title": "X"}))

		assert.Equal(t, siteHTML, got)
	})

	t.Run("returns the input unchanged for an empty id", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "", props(rosh.Properties{"title": "X"}))

		assert.Equal(t, siteHTML, got)
	})

	t.Run("leaves other components untouched", func(t *testing.T) {
		t.Parallel()

		before := findComponent(t, goquery.NewParser().ParseComponents(siteHTML, ""), "about-section")

		got := goquery.NewParser().UpdateComponent(siteHTML, "hero-section", props(rosh.Properties{
			"title":    "Winter Cup",
			"heroText": "Nieuw",
		}))

		after := reparse(t, got, "about-section")
		assert.Equal(t, before.HTML, after.HTML)
		assert.Equal(t, before.Properties, after.Properties)
		assert.Equal(t, "Winter Cup", reparse(t, got, "hero-section").Properties["title"])
	})

	t.Run("resolves a component by data-component", func(t *testing.T) {
		t.Parallel()

		html := `<section data-component="registration"><h2>Inschrijven</h2></section>`

		got := goquery.NewParser().UpdateComponent(html, "registration", props(rosh.Properties{"title": "Meld je aan"}))

		assert.Equal(t, `<section data-component="registration"><h2>Meld je aan</h2></section>`, got)
	})

	t.Run("resolves a positional id", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "component-6", props(rosh.Properties{"description": "© 2026 Rosh"}))

		assert.Equal(t, "© 2026 Rosh", reparse(t, got, "component-6").Properties["description"])
	})

	t.Run("ignores a positional id that does not match its candidate", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "component-1", props(rosh.Properties{"title": "X"}))

		assert.Equal(t, siteHTML, got, "candidate 1 has a DOM id, so component-1 does not name it")
	})

	t.Run("accepts a full document", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><section id="hero-section"><h1>A</h1></section></body></html>`

		got := goquery.NewParser().UpdateComponent(html, "hero-section", props(rosh.Properties{"title": "B"}))

		assert.Equal(t, `<section id="hero-section"><h1>B</h1></section>`, got)
	})
}

func TestParser_UpdateComponent_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates a missing title", func(t *testing.T) {
		t.Parallel()

		html := `<section id="s-section"><p>Body</p></section>`

		got := goquery.NewParser().UpdateComponent(html, "s-section", props(rosh.Properties{"title": "T"}))

		assert.Equal(t, `<section id="s-section"><h2 class="section-title" data-editable-text="title">T</h2><p>Body</p></section>`, got)
	})

	t.Run("creates a subtitle after the title", func(t *testing.T) {
		t.Parallel()

		html := `<section id="s-section"><p>Body</p></section>`

		got := goquery.NewParser().UpdateComponent(html, "s-section", props(rosh.Properties{"title": "T", "subtitle": "S"}))

		assert.Equal(t, `<section id="s-section">`+
			`<h2 class="section-title" data-editable-text="title">T</h2>`+
			`<h3 class="section-subtitle" data-editable-text="subtitle">S</h3>`+
			`<p>Body</p></section>`, got)

		c := reparse(t, got, "s-section")
		assert.Equal(t, "T", c.Properties["title"])
		assert.Equal(t, "S", c.Properties["subtitle"])
		assert.Equal(t, "Body", c.Properties["description"])
	})

	t.Run("creates a description after the title", func(t *testing.T) {
		t.Parallel()

		html := `<section id="s-section"><h2>T</h2></section>`

		got := goquery.NewParser().UpdateComponent(html, "s-section", props(rosh.Properties{"description": "D"}))

		assert.Equal(t, `<section id="s-section"><h2>T</h2><p class="section-description" data-editable-text="description">D</p></section>`, got)
	})

	t.Run("converges after repeated edits", func(t *testing.T) {
		t.Parallel()

		html := `<section id="about-section" data-component="about"><div class="container"><p>x</p></div></section>`
		p := goquery.NewParser()

		once := p.UpdateComponent(html, "about-section", props(rosh.Properties{"aboutTitle": "A"}))
		twice := p.UpdateComponent(once, "about-section", props(rosh.Properties{"aboutTitle": "B"}))

		assert.Equal(t, 1, strings.Count(twice, `data-editable-text="about.title"`))
		assert.Equal(t, "B", reparse(t, twice, "about-section").Properties["aboutTitle"])
		assert.Contains(t, twice, `<div class="container"><h2 class="about-title" data-editable-text="about.title">B</h2><p>x</p></div>`)
	})

	t.Run("creates about text after the about title", func(t *testing.T) {
		t.Parallel()

		html := `<section id="about-section"><h2 data-editable-text="about.title">Over</h2></section>`

		got := goquery.NewParser().UpdateComponent(html, "about-section", props(rosh.Properties{"aboutText": "Tekst"}))

		assert.Equal(t, `<section id="about-section"><h2 data-editable-text="about.title">Over</h2>`+
			`<p class="about-text" data-editable-text="about.text">Tekst</p></section>`, got)
	})

	t.Run("creates a logo once", func(t *testing.T) {
		t.Parallel()

		html := `<header id="top-nav"><nav></nav></header>`
		p := goquery.NewParser()
		logo := map[string]any{"src": "l.png", "alt": "L"}

		once := p.UpdateComponent(html, "top-nav", props(rosh.Properties{"logo": logo}))
		twice := p.UpdateComponent(once, "top-nav", props(rosh.Properties{"logo": logo}))

		assert.Equal(t, 1, strings.Count(twice, `id="nav-logo-img"`))
		assert.Equal(t, rosh.Image{Src: "l.png", Alt: "L"}, reparse(t, twice, "top-nav").Properties["logo"])
	})

	t.Run("creates a hero image inside the container", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section" data-component="hero"><div class="container"><h1>X</h1></div></section>`

		got := goquery.NewParser().UpdateComponent(html, "hero-section", props(rosh.Properties{"image": rosh.Image{Src: "b.jpg"}}))

		assert.Equal(t, rosh.Image{Src: "b.jpg"}, reparse(t, got, "hero-section").Properties["image"])
		assert.Contains(t, got, `<h1>X</h1><img id="hero-image"`)
	})

	t.Run("creates hero text after the title", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section"><h1>X</h1></section>`

		got := goquery.NewParser().UpdateComponent(html, "hero-section", props(rosh.Properties{"heroText": "Y"}))

		assert.Equal(t, `<section id="hero-section"><h1>X</h1><p class="hero-text" data-editable-text="hero.text">Y</p></section>`, got)
	})
}

func TestParser_UpdateComponent_SeparateFields(t *testing.T) {
	t.Parallel()

	t.Run("description does not take over hero text", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section" data-component="hero"><h1>W</h1><p data-editable-text="hero.text">Hero</p></section>`

		before := reparse(t, html, "hero-section")
		assert.NotContains(t, before.Properties, "description")

		got := goquery.NewParser().UpdateComponent(html, "hero-section", props(rosh.Properties{"description": "D"}))

		assert.Equal(t, `<section id="hero-section" data-component="hero"><h1>W</h1>`+
			`<p class="section-description" data-editable-text="description">D</p>`+
			`<p data-editable-text="hero.text">Hero</p></section>`, got)
		c := reparse(t, got, "hero-section")
		assert.Equal(t, "Hero", c.Properties["heroText"])
		assert.Equal(t, "D", c.Properties["description"])
	})

	t.Run("description does not take over about text", func(t *testing.T) {
		t.Parallel()

		html := `<section id="about-section" data-component="about"><h2 data-editable-text="about.title">Over</h2>` +
			`<p data-editable-text="about.text">Wij</p></section>`

		got := goquery.NewParser().UpdateComponent(html, "about-section", props(rosh.Properties{"description": "D"}))

		c := reparse(t, got, "about-section")
		assert.Equal(t, "Wij", c.Properties["aboutText"])
		assert.Equal(t, "D", c.Properties["description"])
	})

	t.Run("title does not take over the about title", func(t *testing.T) {
		t.Parallel()

		html := `<section id="about-section" data-component="about"><h2 data-editable-text="about.title">Over</h2></section>`

		before := reparse(t, html, "about-section")
		assert.NotContains(t, before.Properties, "title")

		got := goquery.NewParser().UpdateComponent(html, "about-section", props(rosh.Properties{"title": "X"}))

		c := reparse(t, got, "about-section")
		assert.Equal(t, "Over", c.Properties["aboutTitle"])
		assert.Equal(t, "X", c.Properties["title"])
	})

	t.Run("subtitle does not take over the program title", func(t *testing.T) {
		t.Parallel()

		html := `<section id="program-section" data-component="program"><h2>Dag 1</h2>` +
			`<h2 data-editable-text="program.title">Programma</h2></section>`

		got := goquery.NewParser().UpdateComponent(html, "program-section", props(rosh.Properties{"subtitle": "S"}))

		c := reparse(t, got, "program-section")
		assert.Equal(t, "Programma", c.Properties["programTitle"])
		assert.Equal(t, "Dag 1", c.Properties["title"])
		assert.Equal(t, "S", c.Properties["subtitle"])
	})
}

func TestParser_UpdateComponent_Formats(t *testing.T) {
	t.Parallel()

	t.Run("swaps the format class", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "main-nav", props(rosh.Properties{"navFormat": "split"}))

		c := reparse(t, got, "main-nav")
		assert.Equal(t, "split", c.Properties["navFormat"])
		assert.Contains(t, c.HTML, `data-nav-format="split"`)
		assert.Contains(t, c.HTML, `class="nav-format-split"`)
		assert.NotContains(t, c.HTML, "nav-format-centered")
	})

	t.Run("keeps unrelated classes", func(t *testing.T) {
		t.Parallel()

		html := `<section id="about-section" class="wide about-format-grid"></section>`

		got := goquery.NewParser().UpdateComponent(html, "about-section", props(rosh.Properties{"aboutFormat": "cards"}))

		assert.Equal(t, `<section id="about-section" class="wide about-format-cards" data-about-format="cards"></section>`, got)
	})

	t.Run("stores unknown formats without a class", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section" data-hero-format="split" class="hero-format-split"></section>`

		got := goquery.NewParser().UpdateComponent(html, "hero-section", props(rosh.Properties{"heroFormat": "diagonal"}))

		assert.Contains(t, got, `data-hero-format="diagonal"`)
		assert.NotContains(t, got, "hero-format-")
	})
}

func TestParser_UpdateComponent_Program(t *testing.T) {
	t.Parallel()

	t.Run("schedule markup is edited through program keys", func(t *testing.T) {
		t.Parallel()

		html := `<section id="program-section" data-schedule-format="list" class="program-format-list">` +
			`<h2 data-editable-text="schedule.title">Old</h2></section>`

		got := goquery.NewParser().UpdateComponent(html, "program-section", props(rosh.Properties{
			"programTitle":  "New",
			"programFormat": "cards",
		}))

		c := reparse(t, got, "program-section")
		assert.Equal(t, "New", c.Properties["programTitle"])
		assert.Equal(t, "cards", c.Properties["programFormat"])
		assert.Contains(t, got, `data-schedule-format="cards"`)
		assert.Contains(t, got, `class="program-format-cards"`)
		assert.NotContains(t, got, "data-program-format")
		assert.NotContains(t, got, `data-editable-text="program.title"`)
	})

	t.Run("grows the box list to the given length", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "program-section", props(rosh.Properties{
			"programBoxes": []rosh.Box{{Title: "A"}, {Title: "B"}, {Title: "C"}},
		}))

		c := reparse(t, got, "program-section")
		assert.Equal(t, []rosh.Box{{Title: "A"}, {Title: "B"}, {Title: "C"}}, c.Properties["programBoxes"])
		assert.Equal(t, 3, strings.Count(c.HTML, "data-program-box="))
		assert.Contains(t, c.HTML, `data-program-box="2"`)
	})

	t.Run("shrinks the box list", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "program-section", props(rosh.Properties{
			"programBoxes": []any{map[string]any{"title": "Enige"}},
		}))

		c := reparse(t, got, "program-section")
		assert.Equal(t, []rosh.Box{{Title: "Enige"}}, c.Properties["programBoxes"])
	})

	t.Run("creates boxes in an empty list", func(t *testing.T) {
		t.Parallel()

		html := `<section id="program-section"><div class="program-boxes"></div></section>`

		got := goquery.NewParser().UpdateComponent(html, "program-section", props(rosh.Properties{
			"programBoxes": []rosh.Box{{Title: "A"}},
		}))

		assert.Equal(t, `<section id="program-section"><div class="program-boxes">`+
			`<div class="program-box" data-program-box="0"><h3 class="program-box-title">A</h3></div>`+
			`</div></section>`, got)
	})
}

func TestParser_UpdateComponent_Lists(t *testing.T) {
	t.Parallel()

	t.Run("grows navigation links in list items", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "main-nav", props(rosh.Properties{
			"navLinks": []rosh.NavLink{
				{Text: "Home", Href: "#home"},
				{Text: "Programma", Href: "#program"},
				{Text: "Contact", Href: "#contact"},
			},
		}))

		c := reparse(t, got, "main-nav")
		assert.Equal(t, []rosh.NavLink{
			{Text: "Home", Href: "#home"},
			{Text: "Programma", Href: "#program"},
			{Text: "Contact", Href: "#contact"},
		}, c.Properties["navLinks"])
		assert.Equal(t, 3, strings.Count(c.HTML, "<li>"))
		assert.Contains(t, c.HTML, `<li><a href="#contact" data-nav-link-text="2">Contact</a></li>`)
	})

	t.Run("removes surplus navigation items with their list item", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "main-nav", props(rosh.Properties{
			"navLinks": []rosh.NavLink{{Text: "Home", Href: "#home"}},
		}))

		c := reparse(t, got, "main-nav")
		assert.Equal(t, []rosh.NavLink{{Text: "Home", Href: "#home"}}, c.Properties["navLinks"])
		assert.Equal(t, 1, strings.Count(c.HTML, "<li>"))
	})

	t.Run("creates the first link in an empty list", func(t *testing.T) {
		t.Parallel()

		html := `<header id="top-nav"><ul class="nav-links"></ul></header>`

		got := goquery.NewParser().UpdateComponent(html, "top-nav", props(rosh.Properties{
			"navLinks": []any{map[string]any{"text": "Home", "href": "#home"}},
		}))

		assert.Equal(t, `<header id="top-nav"><ul class="nav-links">`+
			`<li><a class="nav-link" href="#home" data-nav-link-text="0">Home</a></li>`+
			`</ul></header>`, got)
	})

	t.Run("keeps tournament box numbering", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "hero-section", props(rosh.Properties{
			"tournamentBoxes": map[string]rosh.TournamentBox{
				"1": {Title: "Solo", Paragraph: "1v1"},
				"2": {Title: "Duo", Paragraph: "2v2"},
				"3": {Title: "Squad", Paragraph: "4v4"},
			},
		}))

		c := reparse(t, got, "hero-section")
		assert.Equal(t, map[string]rosh.TournamentBox{
			"1": {Title: "Solo", Paragraph: "1v1"},
			"2": {Title: "Duo", Paragraph: "2v2"},
			"3": {Title: "Squad", Paragraph: "4v4"},
		}, c.Properties["tournamentBoxes"])
	})

	t.Run("updates buttons in place", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "hero-section", props(rosh.Properties{
			"buttons": []any{
				map[string]any{"text": "Doe mee"},
				map[string]any{"text": "No such button"},
			},
		}))

		c := reparse(t, got, "hero-section")
		assert.Equal(t, []rosh.Button{{Text: "Doe mee", Href: "#register", Class: "btn"}}, c.Properties["buttons"])
	})

	t.Run("ignores values of the wrong shape", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "main-nav", props(rosh.Properties{"navLinks": 42}))

		c := reparse(t, got, "main-nav")
		assert.Len(t, c.Properties["navLinks"], 2)
	})
}

func TestParser_UpdateComponent_DuplicateBoxMarkers(t *testing.T) {
	t.Parallel()

	html := `<section id="hero-section" data-component="hero">` +
		`<div class="tournament-box" data-tournament-box="1"><h3>A</h3></div>` +
		`<div class="tournament-box" data-tournament-box="1"><h3>B</h3></div></section>`

	t.Run("keeps every box when markers repeat", func(t *testing.T) {
		t.Parallel()

		c := reparse(t, html, "hero-section")

		assert.Equal(t, map[string]rosh.TournamentBox{
			"1": {Title: "A"},
			"2": {Title: "B"},
		}, c.Properties["tournamentBoxes"])
	})

	t.Run("writes back all boxes and renumbers them", func(t *testing.T) {
		t.Parallel()

		boxes := reparse(t, html, "hero-section").Properties["tournamentBoxes"].(map[string]rosh.TournamentBox)
		boxes["2"] = rosh.TournamentBox{Title: "B2"}

		got := goquery.NewParser().UpdateComponent(html, "hero-section", props(rosh.Properties{"tournamentBoxes": boxes}))

		assert.Contains(t, got, `data-tournament-box="1"><h3>A</h3>`)
		assert.Contains(t, got, `data-tournament-box="2"><h3>B2</h3>`)
		assert.Equal(t, map[string]rosh.TournamentBox{
			"1": {Title: "A"},
			"2": {Title: "B2"},
		}, reparse(t, got, "hero-section").Properties["tournamentBoxes"])
	})
}

func TestParser_UpdateComponent_Attributes(t *testing.T) {
	t.Parallel()

	t.Run("stores unknown keys as data attributes", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewParser().UpdateComponent(siteHTML, "contact-section", props(rosh.Properties{"maxTeams": 32}))

		c := reparse(t, got, "contact-section")
		assert.Equal(t, "32", c.Properties["maxteams"])
		assert.Equal(t, "16", c.Properties["max-teams"])
	})

	t.Run("rejects invalid and protected keys", func(t *testing.T) {
		t.Parallel()

		html := `<section id="contact-section"></section>`

		got := goquery.NewParser().UpdateComponent(html, "contact-section", props(rosh.Properties{
			"bad key":       "x",
			"component":     "hero",
			"editable-text": "x",
		}))

		assert.Equal(t, html, got)
	})

	t.Run("merges styles into the inline style", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section" style="color: red"></section>`

		got := goquery.NewParser().UpdateComponent(html, "hero-section", rosh.ComponentUpdate{
			Styles: map[string]string{"color": "black", "fontSize": "12px"},
		})

		assert.Equal(t, `<section id="hero-section" style="color: black; font-size: 12px"></section>`, got)
	})

	t.Run("removes the style attribute when it becomes empty", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section" style="color: red"></section>`

		got := goquery.NewParser().UpdateComponent(html, "hero-section", rosh.ComponentUpdate{
			Styles: map[string]string{"color": ""},
		})

		assert.Equal(t, `<section id="hero-section"></section>`, got)
	})

	t.Run("replaces the content", func(t *testing.T) {
		t.Parallel()

		html := `<section id="hero-section"><h1>Old</h1></section>`
		content := "<h1>Fresh</h1>"

		got := goquery.NewParser().UpdateComponent(html, "hero-section", rosh.ComponentUpdate{Content: &content})

		assert.Equal(t, `<section id="hero-section"><h1>Fresh</h1></section>`, got)
	})
}

func TestParser_UpdateComponent_Symmetry(t *testing.T) {
	t.Parallel()

	p := goquery.NewParser()
	components := p.ParseComponents(siteHTML, "")
	require.NotEmpty(t, components)

	for _, c := range components {
		t.Run(c.ID, func(t *testing.T) {
			t.Parallel()

			got := p.UpdateComponent(siteHTML, c.ID, props(c.Properties))

			assert.Equal(t, c.Properties, reparse(t, got, c.ID).Properties)
		})
	}
}
