package rosh

// ComponentType identifies the semantic role of a component.
type ComponentType string

// ComponentType constants. The set is closed except for TypeCustom, which
// covers AI-generated extras whose shape is opaque to the engine.
const (
	TypeNavigation   ComponentType = "navigation"
	TypeHero         ComponentType = "hero"
	TypeBracket      ComponentType = "bracket"
	TypeTwitch       ComponentType = "twitch"
	TypeSponsors     ComponentType = "sponsors"
	TypeProgram      ComponentType = "program"
	TypeRegistration ComponentType = "registration"
	TypeContact      ComponentType = "contact"
	TypeFooter       ComponentType = "footer"
	TypeAbout        ComponentType = "about"
	TypeSection      ComponentType = "section"
	TypeCustom       ComponentType = "custom"
)

// componentNames maps each type to the label shown in the edit panel.
var componentNames = map[ComponentType]string{
	TypeNavigation:   "Navigatie",
	TypeHero:         "Hero Sectie",
	TypeBracket:      "Toernooi Bracket",
	TypeTwitch:       "Twitch Stream",
	TypeSponsors:     "Sponsors",
	TypeProgram:      "Programma",
	TypeRegistration: "Inschrijving",
	TypeContact:      "Contact",
	TypeFooter:       "Footer",
	TypeAbout:        "Over Ons",
	TypeSection:      "Sectie",
	TypeCustom:       "Custom Component",
}

// DisplayName returns the edit-panel label for the type.
// Unknown types fall back to the generic section label.
func (t ComponentType) DisplayName() string {
	if name, ok := componentNames[t]; ok {
		return name
	}
	return componentNames[TypeSection]
}

// Valid reports whether t belongs to the component taxonomy.
func (t ComponentType) Valid() bool {
	_, ok := componentNames[t]
	return ok
}

// ParseComponentType canonicalizes a data-component value into a type.
// "schedule" is an alias of program. Values outside the taxonomy are
// reported as custom components.
func ParseComponentType(s string) ComponentType {
	t := ComponentType(s)
	if t == "schedule" {
		return TypeProgram
	}
	if !t.Valid() {
		return TypeCustom
	}
	return t
}

// Property keys produced by the extractor and understood by the mutator.
const (
	PropTitle       = "title"
	PropSubtitle    = "subtitle"
	PropDescription = "description"
	PropButtons     = "buttons"
	PropImages      = "images"

	PropNavFormat = "navFormat"
	PropNavLinks  = "navLinks"
	PropLogo      = "logo"

	PropHeroFormat      = "heroFormat"
	PropImage           = "image"
	PropHeroText        = "heroText"
	PropTournamentBoxes = "tournamentBoxes"

	PropAboutFormat = "aboutFormat"
	PropAboutTitle  = "aboutTitle"
	PropAboutText   = "aboutText"
	PropAboutBoxes  = "aboutBoxes"

	PropProgramFormat = "programFormat"
	PropProgramTitle  = "programTitle"
	PropProgramText   = "programText"
	PropProgramBoxes  = "programBoxes"
)

// Component represents a classified region of a site document.
//
// HTML is a snapshot taken at extraction time. It is stale as soon as the
// document changes; callers re-parse after every mutation.
type Component struct {
	ID         string            `json:"id"`
	Type       ComponentType     `json:"type"`
	Name       string            `json:"name"`
	Properties Properties        `json:"properties"`
	Styles     map[string]string `json:"styles"`
	HTML       string            `json:"html"`

	// Custom holds the wizard metadata of a custom component.
	// Nil for every other type.
	Custom *CustomComponent `json:"custom,omitempty"`
}

// Properties maps a property key to its value. Values are a string, one of
// the structured types below, or a slice/map of them.
type Properties map[string]any

// String returns the value of a string property, or "" when absent.
func (p Properties) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Button is a link or button found inside a component.
type Button struct {
	Text  string `json:"text"`
	Href  string `json:"href"`
	Class string `json:"class"`
}

// Image is an image reference.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// NavLink is one entry of a navigation menu.
type NavLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// TournamentBox is one highlighted box of a hero component.
type TournamentBox struct {
	Title     string `json:"title"`
	Paragraph string `json:"paragraph"`
}

// Box is one item of an about or program component.
type Box struct {
	Title string `json:"title"`
}

// CustomComponent is the opaque shape produced by the site wizard for
// components outside the taxonomy.
type CustomComponent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// ComponentUpdate is a partial edit of one component. Nil or empty fields
// are left untouched.
type ComponentUpdate struct {
	// Properties use the same keys the extractor produces. Values may be the
	// typed shapes above or generic decoded JSON/YAML values.
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Styles are camelCase CSS properties; an empty value removes the property.
	Styles map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`

	// Content replaces the component's inner markup verbatim.
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
}

// IsZero reports whether the update changes nothing.
func (u ComponentUpdate) IsZero() bool {
	return len(u.Properties) == 0 && len(u.Styles) == 0 && u.Content == nil
}

// ComponentParser classifies the components of a document.
type ComponentParser interface {
	// ParseComponents returns the components of html in document order.
	// It never fails; unparseable input yields an empty list.
	ParseComponents(html, css string) []*Component
}

// ComponentMutator applies edits to a single component of a document.
type ComponentMutator interface {
	// UpdateComponent returns the document with upd applied to the component
	// identified by id. The input is returned unchanged when id does not
	// resolve.
	UpdateComponent(html, id string, upd ComponentUpdate) string
}
