package goquery

import (
	"strconv"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// listField is a list property backed by repeated sub-elements carrying a
// numeric marker attribute. Updates are reconciled by position.
type listField struct {
	// markers are the accepted marker attributes, preferred first.
	markers []string

	// containers locate the parent of the first item when none exist yet.
	containers []string

	// template builds a new, empty item for the given marker and index.
	template func(marker string, index int) *html.Node

	// collect converts the current items into the property value.
	collect func(marker string, items []*goquery.Selection) any

	// write stores one record into an item.
	write func(item *goquery.Selection, r record)
}

// items returns the marker in use and its items in document order.
func (f listField) items(comp *goquery.Selection) (string, []*goquery.Selection) {
	for _, marker := range f.markers {
		sel := comp.Find("[" + marker + "]")
		if sel.Length() == 0 {
			continue
		}
		items := make([]*goquery.Selection, 0, sel.Length())
		sel.Each(func(_ int, s *goquery.Selection) {
			items = append(items, s)
		})
		return marker, items
	}
	return f.markers[0], nil
}

func (f listField) extract(comp *goquery.Selection) (any, bool) {
	marker, items := f.items(comp)
	if len(items) == 0 {
		return nil, false
	}
	return f.collect(marker, items), true
}

// apply updates existing items in place, grows the list by cloning the last
// item (or by template when there is none) and removes surplus items.
func (f listField) apply(comp *goquery.Selection, v any) {
	recs, ok := toRecords(v)
	if !ok {
		return
	}

	marker, items := f.items(comp)
	base := markerBase(marker, items)

	for i, r := range recs {
		var item *goquery.Selection
		if i < len(items) {
			item = items[i]
		} else {
			item = f.grow(comp, marker, items, i)
			items = append(items, item)
		}
		item.SetAttr(marker, strconv.Itoa(base+i))
		f.write(item, r)
	}

	for _, surplus := range items[len(recs):] {
		unit(surplus).Remove()
	}
}

// grow adds one item after the last existing one.
func (f listField) grow(comp *goquery.Selection, marker string, items []*goquery.Selection, index int) *goquery.Selection {
	if len(items) == 0 {
		parent := findFirst(comp, f.containers...)
		if parent == nil {
			parent = container(comp)
		}
		n := f.template(marker, index)
		if tag := goquery.NodeName(parent); tag == "ul" || tag == "ol" {
			li := newElement("li")
			li.AppendChild(n)
			appendTo(comp, parent, li)
			return wrap(comp, n)
		}
		return appendTo(comp, parent, n)
	}

	last := unit(items[len(items)-1])
	clone := last.Clone()
	clone.RemoveAttr("id")
	clone.Find("[id]").RemoveAttr("id")

	added := insertAfter(comp, last, clone.Get(0))
	if added.Is("[" + marker + "]") {
		return added
	}
	return added.Find("[" + marker + "]").First()
}

// unit returns the element that is added or removed together with an item:
// the enclosing list element for items wrapped in <li>.
func unit(item *goquery.Selection) *goquery.Selection {
	if parent := item.Parent(); goquery.NodeName(parent) == "li" && parent.Children().Length() == 1 {
		return parent
	}
	return item
}

// markerBase returns the index of the first item, so lists numbered from 1
// keep their numbering.
func markerBase(marker string, items []*goquery.Selection) int {
	if len(items) == 0 {
		return 0
	}
	if n, err := strconv.Atoi(attr(items[0], marker)); err == nil && n >= 0 {
		return n
	}
	return 0
}

// itemKeys returns the map key of each item: its numeric marker when every
// marker is a distinct number, otherwise its position counted from the first
// item's marker, which is the numbering an update writes back.
func itemKeys(marker string, items []*goquery.Selection) []string {
	keys := make([]string, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		v := attr(item, marker)
		if _, err := strconv.Atoi(v); err != nil || seen[v] {
			base := markerBase(marker, items)
			for j := range keys {
				keys[j] = strconv.Itoa(base + j)
			}
			return keys
		}
		seen[v] = true
		keys[i] = v
	}
	return keys
}

// setChildText sets the text of the first child matching selector, creating
// it from build when absent.
func setChildText(item *goquery.Selection, selector string, prepend bool, build func() *html.Node, value string) {
	child := first(item.Find(selector))
	if child == nil {
		if prepend {
			child = prependTo(item, item, build())
		} else {
			child = appendTo(item, item, build())
		}
	}
	child.SetText(value)
}

// boxTitle reads the heading of a box, or the box's own text when it has no
// heading.
func boxTitle(item *goquery.Selection) string {
	if h := first(item.Find(headingSelector)); h != nil {
		return text(h)
	}
	return text(item)
}

// writeBoxTitle writes the heading of a box. Boxes holding only text get
// their text replaced.
func writeBoxTitle(item *goquery.Selection, class string, title string) {
	if first(item.Find(headingSelector)) == nil && item.Children().Length() == 0 {
		item.SetText(title)
		return
	}
	setChildText(item, headingSelector, true, func() *html.Node {
		return newElement("h3", "class", class)
	}, title)
}

var navLinksField = listField{
	markers:    []string{"data-nav-link-text"},
	containers: []string{".nav-links", "ul", "nav"},
	template: func(marker string, index int) *html.Node {
		return newElement("a", "class", "nav-link", "href", "#", marker, strconv.Itoa(index))
	},
	collect: func(_ string, items []*goquery.Selection) any {
		links := make([]rosh.NavLink, 0, len(items))
		for _, item := range items {
			links = append(links, rosh.NavLink{Text: text(item), Href: linkOf(item).AttrOr("href", "")})
		}
		return links
	},
	write: func(item *goquery.Selection, r record) {
		link := linkOf(item)
		if t, ok := r["text"]; ok {
			link.SetText(t)
		}
		if href, ok := r["href"]; ok {
			link.SetAttr("href", href)
		}
	},
}

// linkOf returns the anchor of a navigation item: the item itself, or the
// first anchor inside it.
func linkOf(item *goquery.Selection) *goquery.Selection {
	if goquery.NodeName(item) == "a" {
		return item
	}
	if a := first(item.Find("a")); a != nil {
		return a
	}
	return item
}

var tournamentBoxesField = listField{
	markers:    []string{"data-tournament-box"},
	containers: []string{".tournament-boxes"},
	template: func(marker string, index int) *html.Node {
		return newElement("div", "class", "tournament-box", marker, strconv.Itoa(index))
	},
	collect: func(marker string, items []*goquery.Selection) any {
		keys := itemKeys(marker, items)
		boxes := make(map[string]rosh.TournamentBox, len(items))
		for i, item := range items {
			boxes[keys[i]] = rosh.TournamentBox{
				Title:     text(first(item.Find(headingSelector))),
				Paragraph: text(first(item.Find("p"))),
			}
		}
		return boxes
	},
	write: func(item *goquery.Selection, r record) {
		if t, ok := r["title"]; ok {
			setChildText(item, headingSelector, true, func() *html.Node {
				return newElement("h3", "class", "tournament-box-title")
			}, t)
		}
		if p, ok := r["paragraph"]; ok {
			setChildText(item, "p", false, func() *html.Node {
				return newElement("p", "class", "tournament-box-text")
			}, p)
		}
	},
}

var aboutBoxesField = listField{
	markers:    []string{"data-about-box"},
	containers: []string{".about-boxes"},
	template: func(marker string, index int) *html.Node {
		box := newElement("div", "class", "about-box", marker, strconv.Itoa(index))
		box.AppendChild(newElement("h3", "class", "about-box-title"))
		return box
	},
	collect: collectBoxes,
	write: func(item *goquery.Selection, r record) {
		if t, ok := r["title"]; ok {
			writeBoxTitle(item, "about-box-title", t)
		}
	},
}

var programBoxesField = listField{
	markers:    []string{"data-program-box", "data-schedule-box"},
	containers: []string{".program-boxes", ".schedule-boxes", ".program-list", ".schedule-list"},
	template: func(marker string, index int) *html.Node {
		class := "program-box"
		if marker == "data-schedule-box" {
			class = "schedule-box"
		}
		box := newElement("div", "class", class, marker, strconv.Itoa(index))
		box.AppendChild(newElement("h3", "class", class+"-title"))
		return box
	},
	collect: collectBoxes,
	write: func(item *goquery.Selection, r record) {
		if t, ok := r["title"]; ok {
			writeBoxTitle(item, "program-box-title", t)
		}
	},
}

func collectBoxes(_ string, items []*goquery.Selection) any {
	boxes := make([]rosh.Box, 0, len(items))
	for _, item := range items {
		boxes = append(boxes, rosh.Box{Title: boxTitle(item)})
	}
	return boxes
}
