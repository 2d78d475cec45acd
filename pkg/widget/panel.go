package widget

import (
	"image/color"

	"dockbox/pkg/layout"
)

// Decor is the box appearance shared by every widget. Nil colours are not drawn.
type Decor struct {
	Background color.Color
	Border     color.Color
}

// Decoration returns the widget's box appearance.
func (d Decor) Decoration() Decor {
	return d
}

// Panel is a plain container.
type Panel struct {
	layout.Container
	Decor
}

func (p *Panel) Kind() string { return "panel" }

// innerBox returns the node's padded content area relative to its own origin,
// clamped to the node's box.
func innerBox(n *layout.Node) (x, y, w, h int) {
	x = n.ContentPadding.West
	y = n.ContentPadding.North
	w = max(0, n.W-n.ContentPadding.West-n.ContentPadding.East)
	h = max(0, n.H-n.ContentPadding.North-n.ContentPadding.South)
	return x, y, w, h
}
