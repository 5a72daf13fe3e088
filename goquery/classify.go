package goquery

import (
	"strings"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/PuerkitoBio/goquery"
)

// classifier returns the type of a candidate element, or false to defer to
// the next classifier.
type classifier func(el *goquery.Selection) (rosh.ComponentType, bool)

// classifiers are consulted in order; the first match wins. Downstream
// labeling depends on this precedence.
var classifiers = []classifier{
	classifyByDataComponent,
	classifyByID,
	classifyByClass,
	classifyByTag,
}

// tokenRule maps an id or class substring match to a type.
type tokenRule struct {
	typ   rosh.ComponentType
	match func(s string) bool
}

// tokenRules are checked in priority order against ids and classes.
var tokenRules = []tokenRule{
	{rosh.TypeNavigation, containsAny("navigation", "navbar", "nav", "menu", "header")},
	{rosh.TypeHero, containsAny("hero")},
	{rosh.TypeBracket, containsAny("bracket", "teams")},
	{rosh.TypeTwitch, containsAny("twitch", "stream")},
	{rosh.TypeSponsors, containsAny("sponsor")},
	{rosh.TypeProgram, containsAny("schedule", "programma", "program-section", "schedule-section")},
	{rosh.TypeProgram, func(s string) bool {
		return strings.Contains(s, "program") && !strings.Contains(s, "programma")
	}},
	{rosh.TypeRegistration, containsAny("registration", "inschrijving")},
	{rosh.TypeContact, containsAny("contact")},
	{rosh.TypeFooter, containsAny("footer")},
	{rosh.TypeAbout, containsAny("about", "info")},
}

func containsAny(tokens ...string) func(string) bool {
	return func(s string) bool {
		for _, t := range tokens {
			if strings.Contains(s, t) {
				return true
			}
		}
		return false
	}
}

// Classify returns the component type of el. It is a pure function of the
// element's tag and attributes.
func Classify(el *goquery.Selection) rosh.ComponentType {
	for _, c := range classifiers {
		if t, ok := c(el); ok {
			return t
		}
	}
	return rosh.TypeSection
}

func classifyByDataComponent(el *goquery.Selection) (rosh.ComponentType, bool) {
	v, ok := el.Attr("data-component")
	v = strings.ToLower(strings.TrimSpace(v))
	if !ok || v == "" {
		return "", false
	}
	return rosh.ParseComponentType(v), true
}

func classifyByID(el *goquery.Selection) (rosh.ComponentType, bool) {
	id := strings.ToLower(attr(el, "id"))
	if id == "" {
		return "", false
	}
	return matchTokens(id)
}

func classifyByClass(el *goquery.Selection) (rosh.ComponentType, bool) {
	classes := strings.Fields(strings.ToLower(attr(el, "class")))
	for _, rule := range tokenRules {
		for _, class := range classes {
			if rule.match(class) {
				return rule.typ, true
			}
		}
	}
	return "", false
}

func classifyByTag(el *goquery.Selection) (rosh.ComponentType, bool) {
	switch goquery.NodeName(el) {
	case "header", "nav":
		return rosh.TypeNavigation, true
	case "footer":
		return rosh.TypeFooter, true
	}
	return "", false
}

func matchTokens(s string) (rosh.ComponentType, bool) {
	for _, rule := range tokenRules {
		if rule.match(s) {
			return rule.typ, true
		}
	}
	return "", false
}
