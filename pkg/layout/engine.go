// Package layout docks a tree of rectangular nodes against the edges of their
// parents and computes pixel geometry for every node at a given DPI.
package layout

// LayoutAsRoot lays out the subtree rooted at n for the given DPI.
//
// The horizontal axis is measured and arranged over the whole tree before the
// vertical axis starts, so OnLayoutFinal (fired at the tail of the vertical
// arrange) always sees both axes settled. Window offsets are propagated last.
func (n *Node) LayoutAsRoot(dpi float64) {
	if n.disabled {
		return
	}
	measure(n, AxisX, dpi)
	arrange(n, AxisX)
	measure(n, AxisY, dpi)
	arrange(n, AxisY)
	if n.Content != nil {
		n.Content.OnLayoutFinal(n)
	}
	n.WindowOffsetX = n.X
	n.WindowOffsetY = n.Y
	propagateWindowOffsets(n)
}
