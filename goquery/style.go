package goquery

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/parser"
)

// declaration is one CSS property/value pair.
type declaration struct {
	property string
	value    string
}

var cssComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

// extractStyles merges the stylesheet rules for #id with the element's
// inline style. Inline declarations win over stylesheet ones; among several
// matching rule blocks the later block wins.
func extractStyles(el *goquery.Selection, id, css string) map[string]string {
	styles := make(map[string]string)
	for _, body := range idRuleBlocks(css, id) {
		for _, d := range parseDeclarations(body) {
			styles[camelCase(d.property)] = d.value
		}
	}
	for _, d := range parseDeclarations(attr(el, "style")) {
		styles[camelCase(d.property)] = d.value
	}
	return styles
}

// idRuleBlocks returns the bodies of the rule blocks whose selector mentions
// #id. It is a pattern match over flat stylesheets, not a CSS parser: nested
// blocks and at-rules are not understood.
func idRuleBlocks(css, id string) []string {
	if css == "" || id == "" {
		return nil
	}
	css = cssComment.ReplaceAllString(css, "")

	// The id must end at a non-name character so #hero does not match #hero-2.
	re, err := regexp.Compile(`#` + regexp.QuoteMeta(id) + `(?:[^\w{-][^{]*)?\{([^}]+)\}`)
	if err != nil {
		return nil
	}

	var blocks []string
	for _, m := range re.FindAllStringSubmatch(css, -1) {
		blocks = append(blocks, m[1])
	}
	return blocks
}

// parseDeclarations parses the body of a style attribute or rule block.
// Text douceur rejects is split on ";" and the first ":" instead.
func parseDeclarations(text string) []declaration {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// douceur only terminates a declaration at ";" or "}".
	body := strings.TrimSpace(text)
	if !strings.HasSuffix(body, ";") {
		body += ";"
	}

	if decls, err := parser.ParseDeclarations(body); err == nil {
		out := make([]declaration, 0, len(decls))
		for _, d := range decls {
			if d == nil {
				continue
			}
			value := strings.TrimSpace(d.Value)
			if d.Important {
				value += " !important"
			}
			out = appendDeclaration(out, d.Property, value)
		}
		return out
	}

	var out []declaration
	for _, part := range strings.Split(text, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		out = appendDeclaration(out, prop, strings.TrimSpace(value))
	}
	return out
}

func appendDeclaration(out []declaration, prop, value string) []declaration {
	prop = strings.ToLower(strings.TrimSpace(prop))
	if prop == "" || value == "" {
		return out
	}
	return append(out, declaration{property: prop, value: value})
}

// mergeInlineStyle applies camelCase style updates over an inline style
// attribute value. Existing properties keep their position, new ones are
// appended in key order and empty values remove a property.
func mergeInlineStyle(current string, updates map[string]string) string {
	decls := parseDeclarations(current)

	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prop := kebabCase(k)
		value := strings.TrimSpace(updates[k])

		idx := -1
		for i, d := range decls {
			if d.property == prop {
				idx = i
				break
			}
		}

		switch {
		case value == "" && idx >= 0:
			decls = append(decls[:idx], decls[idx+1:]...)
		case value == "":
		case idx >= 0:
			decls[idx].value = value
		default:
			decls = append(decls, declaration{property: prop, value: value})
		}
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.property+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// camelCase converts a CSS property name to its camelCase form. Vendor
// prefixes become a leading capital (-webkit-box → WebkitBox); custom
// properties are returned unchanged.
func camelCase(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	parts := strings.Split(prop, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return b.String()
}

// kebabCase converts a camelCase property name back to CSS form.
func kebabCase(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	var b strings.Builder
	for _, r := range prop {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
