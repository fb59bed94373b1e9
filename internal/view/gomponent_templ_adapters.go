// Package view bridges the two component libraries the pages are built with
// and carries request-scoped view state such as flash messages.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent renders a gomponents node where a templ.Component is expected.
type nodeComponent struct {
	node g.Node
}

func (a nodeComponent) Render(_ context.Context, w io.Writer) error {
	if a.node == nil {
		return nil
	}
	return a.node.Render(w)
}

// AdaptGomponentToTempl lets a gomponents tree sit inside a templ layout.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return nodeComponent{node: node}
}

// componentNode renders a templ.Component as a gomponents node. gomponents
// carries no context, so ctx is captured when the node is built.
type componentNode struct {
	ctx       context.Context
	component templ.Component
}

func (a componentNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent lets a templ component sit inside a gomponents tree.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) g.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return componentNode{ctx: ctx, component: component}
}
