package goquery

import (
	"fmt"
	"sort"
	"strconv"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
)

// record is the generic shape of one structured value: a set of named text
// fields such as text/href or title/paragraph.
type record map[string]string

// toText converts a scalar property value into text.
func toText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case bool, int, int64, float64, uint, uint64, float32, int32:
		return fmt.Sprint(t), true
	}
	return "", false
}

// toRecord converts an object property value into a record. A bare string
// is taken as an image source.
func toRecord(v any) (record, bool) {
	switch t := v.(type) {
	case rosh.Image:
		return record{"src": t.Src, "alt": t.Alt}, true
	case *rosh.Image:
		if t == nil {
			return nil, false
		}
		return record{"src": t.Src, "alt": t.Alt}, true
	case rosh.NavLink:
		return record{"text": t.Text, "href": t.Href}, true
	case rosh.TournamentBox:
		return record{"title": t.Title, "paragraph": t.Paragraph}, true
	case rosh.Box:
		return record{"title": t.Title}, true
	case rosh.Button:
		return record{"text": t.Text, "href": t.Href, "class": t.Class}, true
	case record:
		return t, true
	case map[string]string:
		return record(t), true
	case map[string]any:
		r := make(record, len(t))
		for k, val := range t {
			if s, ok := toText(val); ok {
				r[k] = s
			}
		}
		return r, true
	case string:
		return record{"src": t, "text": t, "title": t}, true
	}
	return nil, false
}

// toRecords converts a list property value into records. Index-keyed maps,
// as produced for tournament boxes, are ordered by their numeric keys.
func toRecords(v any) ([]record, bool) {
	switch t := v.(type) {
	case []rosh.NavLink:
		return convertAll(t)
	case []rosh.Box:
		return convertAll(t)
	case []rosh.TournamentBox:
		return convertAll(t)
	case []rosh.Button:
		return convertAll(t)
	case []rosh.Image:
		return convertAll(t)
	case []record:
		return t, true
	case []map[string]string:
		return convertAll(t)
	case []map[string]any:
		return convertAll(t)
	case []any:
		return convertAll(t)
	case map[string]rosh.TournamentBox:
		return convertIndexed(t)
	case map[string]any:
		return convertIndexed(t)
	}
	return nil, false
}

func convertAll[T any](items []T) ([]record, bool) {
	out := make([]record, 0, len(items))
	for _, item := range items {
		r, ok := toRecord(item)
		if !ok {
			return nil, false
		}
		out = append(out, r)
	}
	return out, true
}

func convertIndexed[T any](m map[string]T) ([]record, bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return indexLess(keys[i], keys[j]) })

	out := make([]record, 0, len(keys))
	for _, k := range keys {
		r, ok := toRecord(m[k])
		if !ok {
			return nil, false
		}
		out = append(out, r)
	}
	return out, true
}

// indexLess orders numeric keys numerically and everything else after them
// lexically.
func indexLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	}
	return a < b
}
