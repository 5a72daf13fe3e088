package rosh

// Previewer renders a component for reading in a terminal.
type Previewer interface {
	// Preview returns the component's markup as Markdown, headed by its
	// display name and id.
	Preview(c *Component) (string, error)
}
