package layout

// Edges holds declared per-side values in points.
type Edges struct {
	West  float64
	East  float64
	North float64
	South float64
}

// EdgesAll returns Edges with the same value on every side.
func EdgesAll(v float64) Edges {
	return Edges{West: v, East: v, North: v, South: v}
}

// Insets holds per-side pixel values derived from Edges at a given DPI.
type Insets struct {
	West  int
	East  int
	North int
	South int
}

// Result is the layout output for a node. Every field except the content
// offsets is overwritten on each LayoutAsRoot.
type Result struct {
	// X and Y are relative to the parent's content origin.
	X, Y int
	W, H int

	// ContentSizeX/Y is the box needed to hold the node's children plus its
	// own padding. Never smaller than W/H after a pass.
	ContentSizeX int
	ContentSizeY int

	ContentPadding Insets

	// ContentOffsetX/Y is the scroll offset into the content. It belongs to
	// whoever scrolls the node; the engine only reads it.
	ContentOffsetX int
	ContentOffsetY int

	// WindowOffsetX/Y is the absolute origin in root coordinates.
	WindowOffsetX int
	WindowOffsetY int
}

// Node is a rectangle in the layout tree.
type Node struct {
	// Name identifies the node in diagnostics and lookups.
	Name string

	Rule Rule

	// MinSizeX and MinSizeY are in points (1/72 inch).
	MinSizeX float64
	MinSizeY float64

	// Padding insets the node's own content area, in points.
	Padding Edges

	CanScrollX bool
	CanScrollY bool

	// Content supplies the intrinsic size and post-layout hooks.
	// Nil behaves as a plain container.
	Content Content

	Children []*Node

	Result

	parent   *Node
	disabled bool
}

// NewNode creates an enabled node with the given name and rule.
func NewNode(name string, rule Rule) *Node {
	return &Node{Name: name, Rule: rule}
}

// AddChild appends children and takes ownership of them.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.Children = append(n.Children, child)
	}
}

// RemoveChild detaches child, keeping sibling order.
// Returns false if child is not a direct child of n.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Enabled reports whether the node takes part in layout.
func (n *Node) Enabled() bool {
	return !n.disabled
}

// SetEnabled includes or excludes the node and its subtree from layout.
func (n *Node) SetEnabled(enabled bool) {
	n.disabled = !enabled
}

// laidOut reports whether the node is visited by the passes at all.
func (n *Node) laidOut() bool {
	return !n.disabled && n.Rule != RuleNone && n.Rule.Valid()
}
