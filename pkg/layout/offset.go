package layout

// propagateWindowOffsets converts parent-relative positions below n into
// absolute ones. n's own window offset must already be set.
func propagateWindowOffsets(n *Node) {
	for _, child := range n.Children {
		if !child.laidOut() {
			continue
		}
		child.WindowOffsetX = n.WindowOffsetX + n.ContentOffsetX + child.X
		child.WindowOffsetY = n.WindowOffsetY + n.ContentOffsetY + child.Y
		propagateWindowOffsets(child)
	}
}
