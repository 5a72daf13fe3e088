package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// headingSelector matches every heading level.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// containerSelector matches the inner wrapper that synthesized content is
// inserted into. Components without one receive content directly.
const containerSelector = ".container, .content, .section-content"

// parseFragment parses a fragment into an isolated tree under one synthetic
// wrapper element. The wrapper is never matched by Find, so multiple
// top-level siblings are handled uniformly.
func parseFragment(fragment string) *goquery.Document {
	wrapper := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err == nil {
		for _, n := range nodes {
			wrapper.AppendChild(n)
		}
	}
	return goquery.NewDocumentFromNode(wrapper)
}

// render returns the markup inside the synthetic wrapper.
func render(doc *goquery.Document) (string, error) {
	return doc.Selection.Html()
}

// first returns the first element of sel, or nil when sel is empty.
func first(sel *goquery.Selection) *goquery.Selection {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

// findFirst tries each selector in order and returns the first match.
func findFirst(root *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, s := range selectors {
		if sel := first(root.Find(s)); sel != nil {
			return sel
		}
	}
	return nil
}

// text returns the trimmed, whitespace-collapsed text of sel.
func text(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// attr returns the value of the named attribute, or "" when absent.
func attr(sel *goquery.Selection, name string) string {
	if sel == nil {
		return ""
	}
	v, _ := sel.Attr(name)
	return v
}

// newElement builds a detached element node.
func newElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// container returns the content container of a component, or the component
// itself when it has none.
func container(comp *goquery.Selection) *goquery.Selection {
	if c := first(comp.Find(containerSelector)); c != nil {
		return c
	}
	return comp
}

// prependTo inserts n as the first child of parent and returns it as a
// selection relative to root.
func prependTo(root, parent *goquery.Selection, n *html.Node) *goquery.Selection {
	p := parent.Get(0)
	p.InsertBefore(n, p.FirstChild)
	return wrap(root, n)
}

// appendTo inserts n as the last child of parent.
func appendTo(root, parent *goquery.Selection, n *html.Node) *goquery.Selection {
	parent.Get(0).AppendChild(n)
	return wrap(root, n)
}

// insertAfter inserts n as the next sibling of ref.
func insertAfter(root, ref *goquery.Selection, n *html.Node) *goquery.Selection {
	r := ref.Get(0)
	r.Parent.InsertBefore(n, r.NextSibling)
	return wrap(root, n)
}

// wrap returns n as a selection. root is returned when n is the root node
// itself.
func wrap(root *goquery.Selection, n *html.Node) *goquery.Selection {
	if root.Get(0) == n {
		return root
	}
	return root.FindNodes(n)
}
