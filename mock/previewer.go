package mock

import rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"

var _ rosh.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of rosh.Previewer.
type Previewer struct {
	PreviewFn func(c *rosh.Component) (string, error)
}

func (p *Previewer) Preview(c *rosh.Component) (string, error) {
	return p.PreviewFn(c)
}
