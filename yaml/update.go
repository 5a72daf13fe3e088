// Package yaml decodes component update files. JSON input is accepted as
// a subset of YAML.
package yaml

import (
	"errors"
	"fmt"
	"io"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"gopkg.in/yaml.v3"
)

// updateFile is the on-disk shape of an update before values are
// normalized.
type updateFile struct {
	Properties map[string]any `yaml:"properties"`
	Styles     map[string]any `yaml:"styles"`
	Content    *string        `yaml:"content"`
}

// DecodeUpdate reads one update document from r.
//
//	properties:
//	  title: Winter Cup
//	  tournamentBoxes:
//	    1: {title: Solo, paragraph: 1v1}
//	styles:
//	  backgroundColor: "#000"
//	content: "<h1>Hi</h1>"
func DecodeUpdate(r io.Reader) (rosh.ComponentUpdate, error) {
	var f updateFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return rosh.ComponentUpdate{}, rosh.Errorf(rosh.EINVALID, "empty update file")
		}
		return rosh.ComponentUpdate{}, rosh.Errorf(rosh.EINVALID, "invalid update file: %v", err)
	}

	upd := rosh.ComponentUpdate{Content: f.Content}
	if len(f.Properties) > 0 {
		upd.Properties = make(map[string]any, len(f.Properties))
		for k, v := range f.Properties {
			upd.Properties[k] = normalize(v)
		}
	}
	if len(f.Styles) > 0 {
		upd.Styles = make(map[string]string, len(f.Styles))
		for k, v := range f.Styles {
			if v == nil {
				upd.Styles[k] = ""
				continue
			}
			upd.Styles[k] = fmt.Sprint(v)
		}
	}
	return upd, nil
}

// normalize converts mappings with non-string keys, such as numbered
// tournament boxes, into string-keyed maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	}
	return v
}
