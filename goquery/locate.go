package goquery

import "github.com/PuerkitoBio/goquery"

// itemSelector matches the repeated sub-elements owned by list properties.
const itemSelector = "[data-tournament-box], [data-about-box], [data-program-box], [data-schedule-box], [data-nav-link-text]"

// editable returns the selector of an element marked as editable text.
func editable(name string) string {
	return `[data-editable-text="` + name + `"]`
}

// outsideItems drops elements belonging to a list item; their text is owned
// by the list property.
func outsideItems(sel *goquery.Selection) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Closest(itemSelector).Length() == 0
	})
}

// unmarked returns the elements matching selector that carry no
// data-editable-text marker and sit outside list items. Marked elements are
// owned by the property their marker names.
func unmarked(comp *goquery.Selection, selector string) *goquery.Selection {
	return outsideItems(comp.Find(selector).Not("[data-editable-text]"))
}

func findTitle(comp *goquery.Selection) *goquery.Selection {
	if sel := first(comp.Find(editable("title"))); sel != nil {
		return sel
	}
	return first(unmarked(comp, headingSelector))
}

func findSubtitle(comp *goquery.Selection) *goquery.Selection {
	if sel := first(comp.Find(editable("subtitle"))); sel != nil {
		return sel
	}
	headings := unmarked(comp, headingSelector)
	if title := findTitle(comp); title != nil {
		headings = headings.NotSelection(title)
	}
	return first(headings)
}

func findDescription(comp *goquery.Selection) *goquery.Selection {
	if sel := first(comp.Find(editable("description"))); sel != nil {
		return sel
	}
	return first(unmarked(comp, "p"))
}

func createTitle(comp *goquery.Selection) *goquery.Selection {
	n := newElement("h2", "class", "section-title", "data-editable-text", "title")
	return prependTo(comp, container(comp), n)
}

func createSubtitle(comp *goquery.Selection) *goquery.Selection {
	n := newElement("h3", "class", "section-subtitle", "data-editable-text", "subtitle")
	if title := findTitle(comp); title != nil {
		return insertAfter(comp, title, n)
	}
	return prependTo(comp, container(comp), n)
}

func createDescription(comp *goquery.Selection) *goquery.Selection {
	n := newElement("p", "class", "section-description", "data-editable-text", "description")
	if sub := findSubtitle(comp); sub != nil {
		return insertAfter(comp, sub, n)
	}
	if title := findTitle(comp); title != nil {
		return insertAfter(comp, title, n)
	}
	return prependTo(comp, container(comp), n)
}

func findHeroText(comp *goquery.Selection) *goquery.Selection {
	return first(comp.Find(editable("hero.text")))
}

func createHeroText(comp *goquery.Selection) *goquery.Selection {
	n := newElement("p", "class", "hero-text", "data-editable-text", "hero.text")
	if title := findTitle(comp); title != nil {
		return insertAfter(comp, title, n)
	}
	return prependTo(comp, container(comp), n)
}

func findAboutTitle(comp *goquery.Selection) *goquery.Selection {
	return first(comp.Find(editable("about.title")))
}

func createAboutTitle(comp *goquery.Selection) *goquery.Selection {
	n := newElement("h2", "class", "about-title", "data-editable-text", "about.title")
	return prependTo(comp, container(comp), n)
}

func findAboutText(comp *goquery.Selection) *goquery.Selection {
	return first(comp.Find(editable("about.text")))
}

func createAboutText(comp *goquery.Selection) *goquery.Selection {
	n := newElement("p", "class", "about-text", "data-editable-text", "about.text")
	if title := findAboutTitle(comp); title != nil {
		return insertAfter(comp, title, n)
	}
	return prependTo(comp, container(comp), n)
}

// Program selectors accept the legacy schedule prefix as a second choice.

func findProgramTitle(comp *goquery.Selection) *goquery.Selection {
	return findFirst(comp, editable("program.title"), editable("schedule.title"))
}

func createProgramTitle(comp *goquery.Selection) *goquery.Selection {
	n := newElement("h2", "class", "program-title", "data-editable-text", "program.title")
	return prependTo(comp, container(comp), n)
}

func findProgramText(comp *goquery.Selection) *goquery.Selection {
	return findFirst(comp, editable("program.text"), editable("schedule.text"))
}

func createProgramText(comp *goquery.Selection) *goquery.Selection {
	n := newElement("p", "class", "program-text", "data-editable-text", "program.text")
	if title := findProgramTitle(comp); title != nil {
		return insertAfter(comp, title, n)
	}
	return prependTo(comp, container(comp), n)
}

func findLogo(comp *goquery.Selection) *goquery.Selection {
	return findFirst(comp, "#nav-logo-img", `[data-editable-image="true"]`)
}

func createLogo(comp *goquery.Selection) *goquery.Selection {
	n := newElement("img", "id", "nav-logo-img", "class", "nav-logo", "data-editable-image", "true", "src", "", "alt", "")
	return prependTo(comp, comp, n)
}

func findHeroImage(comp *goquery.Selection) *goquery.Selection {
	return first(comp.Find("#hero-image"))
}

func createHeroImage(comp *goquery.Selection) *goquery.Selection {
	n := newElement("img", "id", "hero-image", "class", "hero-image", "src", "", "alt", "")
	return appendTo(comp, container(comp), n)
}
