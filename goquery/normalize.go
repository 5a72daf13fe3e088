package goquery

import "regexp"

var bodyPattern = regexp.MustCompile(`(?is)<body[^>]*>(.*)</body\s*>`)

// Normalize returns the inner markup of the document's <body> when a body
// tag pair is present, and the input unchanged otherwise.
func Normalize(doc string) string {
	if m := bodyPattern.FindStringSubmatch(doc); m != nil {
		return m[1]
	}
	return doc
}
