package mock

import rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"

var (
	_ rosh.ComponentParser  = (*Parser)(nil)
	_ rosh.ComponentMutator = (*Mutator)(nil)
)

// Parser is a mock implementation of rosh.ComponentParser.
type Parser struct {
	ParseComponentsFn func(html, css string) []*rosh.Component
}

func (p *Parser) ParseComponents(html, css string) []*rosh.Component {
	return p.ParseComponentsFn(html, css)
}

// Mutator is a mock implementation of rosh.ComponentMutator.
type Mutator struct {
	UpdateComponentFn func(html, id string, upd rosh.ComponentUpdate) string
}

func (m *Mutator) UpdateComponent(html, id string, upd rosh.ComponentUpdate) string {
	return m.UpdateComponentFn(html, id, upd)
}
