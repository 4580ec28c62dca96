package mock

import "github.com/fwojciec/wikisum"

var _ wikisum.HTMLDocument = (*HTMLDocument)(nil)

// HTMLDocument is a mock implementation of wikisum.HTMLDocument.
type HTMLDocument struct {
	SelectFn func(sel wikisum.Selector) wikisum.Nodes
	TextFn   func() string
}

func (d *HTMLDocument) Select(sel wikisum.Selector) wikisum.Nodes {
	return d.SelectFn(sel)
}

func (d *HTMLDocument) Text() string {
	return d.TextFn()
}

var _ wikisum.Nodes = (*Nodes)(nil)

// Nodes is a mock implementation of wikisum.Nodes.
type Nodes struct {
	LenFn    func() int
	RemoveFn func()
}

func (n *Nodes) Len() int {
	return n.LenFn()
}

func (n *Nodes) Remove() {
	n.RemoveFn()
}
