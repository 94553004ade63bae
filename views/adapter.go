package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent wraps a gomponents.Node so it satisfies templ.Component.
type nodeComponent struct {
	node g.Node
}

func (n nodeComponent) Render(_ context.Context, w io.Writer) error {
	return n.node.Render(w)
}

// Component adapts a gomponents node to the templ.Component interface used by
// the HTTP layer.
func Component(node g.Node) templ.Component {
	return nodeComponent{node: node}
}
