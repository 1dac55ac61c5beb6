package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode wraps a templ.Component so it can sit inside a gomponents tree.
type templNode struct {
	component templ.Component
}

func (n *templNode) Render(w io.Writer) error {
	// gomponents rendering carries no context, so the bridge uses Background.
	return n.component.Render(context.Background(), w)
}

// TemplToNode converts a templ component into a gomponents node, letting
// templ fragments render inside gomponents layouts.
func TemplToNode(component templ.Component) gomponents.Node {
	return &templNode{component: component}
}

// gomponentComponent wraps a gomponents node so it satisfies templ.Component.
type gomponentComponent struct {
	node gomponents.Node
}

func (c *gomponentComponent) Render(ctx context.Context, w io.Writer) error {
	return c.node.Render(w)
}

// NodeToTempl converts a gomponents node into a templ component for use in
// templ-driven render paths.
func NodeToTempl(node gomponents.Node) templ.Component {
	return &gomponentComponent{node: node}
}
