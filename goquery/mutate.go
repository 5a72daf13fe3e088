package goquery

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/PuerkitoBio/goquery"
)

// UpdateComponent applies upd to the component identified by id and returns
// the resulting fragment. The latest text is always re-parsed; when id does
// not resolve the input is returned unchanged.
func (p *Parser) UpdateComponent(src, id string, upd rosh.ComponentUpdate) string {
	doc := parseFragment(Normalize(src))

	comp := findComponent(doc, id)
	if comp == nil {
		return src
	}

	applyProperties(comp, upd.Properties)
	if len(upd.Styles) > 0 {
		applyStyles(comp, upd.Styles)
	}
	if upd.Content != nil {
		comp.SetHtml(*upd.Content)
	}

	out, err := render(doc)
	if err != nil {
		return src
	}
	return out
}

// findComponent resolves a component id by DOM id, then by data-component,
// then as a positional id assigned by ParseComponents.
func findComponent(doc *goquery.Document, id string) *goquery.Selection {
	if id == "" {
		return nil
	}
	if sel := first(matchAttr(doc.Find("[id]"), "id", id)); sel != nil {
		return sel
	}
	if sel := first(matchAttr(doc.Find("[data-component]"), "data-component", id)); sel != nil {
		return sel
	}
	if rest, ok := strings.CutPrefix(id, syntheticIDPrefix); ok {
		index, err := strconv.Atoi(rest)
		if err != nil {
			return nil
		}
		candidates := selectCandidates(doc)
		if index >= 0 && index < len(candidates) && componentID(candidates[index], index) == id {
			return candidates[index]
		}
	}
	return nil
}

// matchAttr filters sel to the elements whose attribute equals value.
// Comparing values avoids escaping ids inside a selector.
func matchAttr(sel *goquery.Selection, name, value string) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return attr(s, name) == value
	})
}

// applyProperties dispatches each key to its structured field. Keys without
// one are stored as data-<key> attributes on the component root.
func applyProperties(comp *goquery.Selection, props map[string]any) {
	for _, key := range fieldOrder {
		if v, ok := props[key]; ok {
			fields[key].apply(comp, v)
		}
	}

	var rest []string
	for key := range props {
		if _, ok := fields[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		setDataAttr(comp, key, props[key])
	}
}

var attrKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.:-]*$`)

func setDataAttr(comp *goquery.Selection, key string, v any) {
	name := "data-" + strings.ToLower(key)
	k, ok := dataKey(name)
	if !ok || !attrKeyPattern.MatchString(k) {
		return
	}
	s, ok := toText(v)
	if !ok {
		return
	}
	comp.SetAttr(name, s)
}

// applyStyles merges style updates into the inline style attribute. The
// stylesheet is never modified.
func applyStyles(comp *goquery.Selection, styles map[string]string) {
	merged := mergeInlineStyle(attr(comp, "style"), styles)
	if merged == "" {
		comp.RemoveAttr("style")
		return
	}
	comp.SetAttr("style", merged)
}
