package goquery

import (
	"slices"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/PuerkitoBio/goquery"
)

// field is one structured property. The extractor and the mutator share the
// same field for a key, so every key that can be read can also be written.
type field interface {
	// extract reads the property value; false means the backing markup is
	// absent and the key is omitted.
	extract(comp *goquery.Selection) (any, bool)

	// apply writes v into the component, ignoring values of the wrong shape.
	apply(comp *goquery.Selection, v any)
}

// fields maps each structured property key to its field.
var fields = map[string]field{
	rosh.PropTitle:       textField{find: findTitle, create: createTitle},
	rosh.PropSubtitle:    textField{find: findSubtitle, create: createSubtitle},
	rosh.PropDescription: textField{find: findDescription, create: createDescription},
	rosh.PropButtons:     buttonsField{},
	rosh.PropImages:      imagesField{},

	rosh.PropNavFormat: formatField{
		attrs:  []string{"data-nav-format"},
		prefix: "nav-format-",
		values: []string{"default", "centered", "split", "minimal"},
	},
	rosh.PropNavLinks: navLinksField,
	rosh.PropLogo:     imageField{find: findLogo, create: createLogo},

	rosh.PropHeroFormat: formatField{
		attrs:  []string{"data-hero-format"},
		prefix: "hero-format-",
		values: []string{"centered", "split", "fullscreen", "minimal"},
	},
	rosh.PropImage:           imageField{find: findHeroImage, create: createHeroImage},
	rosh.PropHeroText:        textField{find: findHeroText, create: createHeroText},
	rosh.PropTournamentBoxes: tournamentBoxesField,

	rosh.PropAboutFormat: formatField{
		attrs:  []string{"data-about-format"},
		prefix: "about-format-",
		values: []string{"grid", "list", "cards", "split"},
	},
	rosh.PropAboutTitle: textField{find: findAboutTitle, create: createAboutTitle},
	rosh.PropAboutText:  textField{find: findAboutText, create: createAboutText},
	rosh.PropAboutBoxes: aboutBoxesField,

	rosh.PropProgramFormat: formatField{
		attrs:  []string{"data-program-format", "data-schedule-format"},
		prefix: "program-format-",
		values: []string{"timeline", "list", "cards", "grid"},
	},
	rosh.PropProgramTitle: textField{find: findProgramTitle, create: createProgramTitle},
	rosh.PropProgramText:  textField{find: findProgramText, create: createProgramText},
	rosh.PropProgramBoxes: programBoxesField,
}

// fieldOrder is the order in which update keys are applied. Fields that are
// positioned relative to a title come after it.
var fieldOrder = []string{
	rosh.PropTitle, rosh.PropSubtitle, rosh.PropDescription, rosh.PropButtons, rosh.PropImages,
	rosh.PropNavFormat, rosh.PropNavLinks, rosh.PropLogo,
	rosh.PropHeroFormat, rosh.PropImage, rosh.PropHeroText, rosh.PropTournamentBoxes,
	rosh.PropAboutFormat, rosh.PropAboutTitle, rosh.PropAboutText, rosh.PropAboutBoxes,
	rosh.PropProgramFormat, rosh.PropProgramTitle, rosh.PropProgramText, rosh.PropProgramBoxes,
}

// genericKeys are extracted for every component.
var genericKeys = []string{
	rosh.PropTitle, rosh.PropSubtitle, rosh.PropDescription, rosh.PropButtons, rosh.PropImages,
}

// typeKeys are the structured fields extracted per component type.
var typeKeys = map[rosh.ComponentType][]string{
	rosh.TypeNavigation: {rosh.PropNavFormat, rosh.PropNavLinks, rosh.PropLogo},
	rosh.TypeHero:       {rosh.PropHeroFormat, rosh.PropImage, rosh.PropHeroText, rosh.PropTournamentBoxes},
	rosh.TypeAbout:      {rosh.PropAboutFormat, rosh.PropAboutTitle, rosh.PropAboutText, rosh.PropAboutBoxes},
	rosh.TypeProgram:    {rosh.PropProgramFormat, rosh.PropProgramTitle, rosh.PropProgramText, rosh.PropProgramBoxes},
}

// findOrCreate returns the node backing a field, synthesizing it when the
// document lacks one. Once created the node is found by find, so repeated
// edits update it instead of adding another.
func findOrCreate(comp *goquery.Selection, find, create func(*goquery.Selection) *goquery.Selection) *goquery.Selection {
	if sel := find(comp); sel != nil {
		return sel
	}
	return create(comp)
}

// textField is a scalar text property backed by a single element.
type textField struct {
	find   func(comp *goquery.Selection) *goquery.Selection
	create func(comp *goquery.Selection) *goquery.Selection
}

func (f textField) extract(comp *goquery.Selection) (any, bool) {
	sel := f.find(comp)
	if sel == nil {
		return nil, false
	}
	return text(sel), true
}

func (f textField) apply(comp *goquery.Selection, v any) {
	s, ok := toText(v)
	if !ok {
		return
	}
	findOrCreate(comp, f.find, f.create).SetText(s)
}

// formatField is a layout variant stored in a data-*-format attribute and
// mirrored by one class out of a bounded set.
type formatField struct {
	attrs  []string
	prefix string
	values []string
}

func (f formatField) extract(comp *goquery.Selection) (any, bool) {
	for _, a := range f.attrs {
		if v, ok := comp.Attr(a); ok {
			return v, true
		}
	}
	return nil, false
}

func (f formatField) apply(comp *goquery.Selection, v any) {
	s, ok := toText(v)
	if !ok {
		return
	}

	target := f.attrs[0]
	for _, a := range f.attrs {
		if _, exists := comp.Attr(a); exists {
			target = a
			break
		}
	}
	comp.SetAttr(target, s)

	for _, value := range f.values {
		comp.RemoveClass(f.prefix + value)
	}
	if slices.Contains(f.values, s) {
		comp.AddClass(f.prefix + s)
	}
}

// imageField is an {src, alt} property backed by a single image element.
type imageField struct {
	find   func(comp *goquery.Selection) *goquery.Selection
	create func(comp *goquery.Selection) *goquery.Selection
}

func (f imageField) extract(comp *goquery.Selection) (any, bool) {
	sel := f.find(comp)
	if sel == nil {
		return nil, false
	}
	return rosh.Image{Src: attr(sel, "src"), Alt: attr(sel, "alt")}, true
}

func (f imageField) apply(comp *goquery.Selection, v any) {
	r, ok := toRecord(v)
	if !ok {
		return
	}
	sel := findOrCreate(comp, f.find, f.create)
	if src, ok := r["src"]; ok {
		sel.SetAttr("src", src)
	}
	if alt, ok := r["alt"]; ok {
		sel.SetAttr("alt", alt)
	}
}

const buttonSelector = `button, a.btn, a.button, [role="button"]`

// buttonsField lists the buttons of a component. Updates are applied in
// place; there is no template to synthesize new buttons from.
type buttonsField struct{}

func (buttonsField) extract(comp *goquery.Selection) (any, bool) {
	var buttons []rosh.Button
	comp.Find(buttonSelector).Each(func(_ int, s *goquery.Selection) {
		buttons = append(buttons, rosh.Button{
			Text:  text(s),
			Href:  attr(s, "href"),
			Class: attr(s, "class"),
		})
	})
	return buttons, len(buttons) > 0
}

func (buttonsField) apply(comp *goquery.Selection, v any) {
	recs, ok := toRecords(v)
	if !ok {
		return
	}
	comp.Find(buttonSelector).Each(func(i int, s *goquery.Selection) {
		if i >= len(recs) {
			return
		}
		r := recs[i]
		if t, ok := r["text"]; ok {
			s.SetText(t)
		}
		if href, ok := r["href"]; ok {
			s.SetAttr("href", href)
		}
		if class, ok := r["class"]; ok {
			s.SetAttr("class", class)
		}
	})
}

// imagesField lists the images of a component, updated in place.
type imagesField struct{}

func (imagesField) extract(comp *goquery.Selection) (any, bool) {
	var images []rosh.Image
	comp.Find("img").Each(func(_ int, s *goquery.Selection) {
		images = append(images, rosh.Image{Src: attr(s, "src"), Alt: attr(s, "alt")})
	})
	return images, len(images) > 0
}

func (imagesField) apply(comp *goquery.Selection, v any) {
	recs, ok := toRecords(v)
	if !ok {
		return
	}
	comp.Find("img").Each(func(i int, s *goquery.Selection) {
		if i >= len(recs) {
			return
		}
		if src, ok := recs[i]["src"]; ok {
			s.SetAttr("src", src)
		}
		if alt, ok := recs[i]["alt"]; ok {
			s.SetAttr("alt", alt)
		}
	})
}
