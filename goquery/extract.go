package goquery

import (
	"strings"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/PuerkitoBio/goquery"
)

// extractProperties reads the generic properties, the structured fields of
// the component's type and any remaining data-* attributes of its root.
func extractProperties(comp *goquery.Selection, typ rosh.ComponentType) rosh.Properties {
	props := make(rosh.Properties)

	keys := append(append([]string{}, genericKeys...), typeKeys[typ]...)
	for _, key := range keys {
		if v, ok := fields[key].extract(comp); ok {
			props[key] = v
		}
	}

	owned := formatAttrs(typ)
	for _, a := range comp.Get(0).Attr {
		key, ok := dataKey(a.Key)
		if !ok || owned[a.Key] {
			continue
		}
		if _, structured := fields[key]; structured {
			continue
		}
		if _, exists := props[key]; exists {
			continue
		}
		props[key] = a.Val
	}
	return props
}

// formatAttrs returns the root attributes exposed as format properties of
// typ. Format attributes of other types stay free-form data properties.
func formatAttrs(typ rosh.ComponentType) map[string]bool {
	attrs := make(map[string]bool)
	for _, key := range typeKeys[typ] {
		if f, ok := fields[key].(formatField); ok {
			for _, a := range f.attrs {
				attrs[a] = true
			}
		}
	}
	return attrs
}

// dataKey returns the property key of a free-form data attribute. The
// component marker and editor markers are not properties.
func dataKey(name string) (string, bool) {
	if !strings.HasPrefix(name, "data-") || name == "data-component" || strings.HasPrefix(name, "data-editable") {
		return "", false
	}
	key := strings.TrimPrefix(name, "data-")
	return key, key != ""
}
