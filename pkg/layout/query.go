package layout

import "image"

// Walk visits n and every laid-out descendant in pre-order, skipping disabled
// and NONE subtrees. A disabled n is not visited at all; n's own rule is
// ignored, as in LayoutAsRoot. Returning false from fn prunes the node's
// children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	if n.disabled {
		return
	}
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		if child.laidOut() {
			child.walk(fn, depth+1)
		}
	}
}

// Find returns the first node named name in pre-order, including disabled
// nodes, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Bounds returns the node's rectangle in window coordinates.
func (n *Node) Bounds() image.Rectangle {
	return image.Rect(n.WindowOffsetX, n.WindowOffsetY, n.WindowOffsetX+n.W, n.WindowOffsetY+n.H)
}

// HitTest returns the deepest laid-out node whose window rectangle contains
// (x, y), or nil. Later siblings are on top of earlier ones.
func (n *Node) HitTest(x, y int) *Node {
	if n.disabled || !image.Pt(x, y).In(n.Bounds()) {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		child := n.Children[i]
		if !child.laidOut() {
			continue
		}
		if hit := child.HitTest(x, y); hit != nil {
			return hit
		}
	}
	return n
}

// Snapshot returns the results of n and its laid-out descendants in pre-order.
func (n *Node) Snapshot() []Result {
	var results []Result
	n.Walk(func(node *Node, _ int) bool {
		results = append(results, node.Result)
		return true
	})
	return results
}
