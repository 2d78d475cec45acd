package markup

import "strings"

type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
	Line       int
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Document is a parsed markup file. Root is a synthetic "document" element
// whose children are the top-level elements.
type Document struct {
	Root        *Node
	Stylesheets []string
	Scripts     []string
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{Type: ElementNode, TagName: "document"},
	}
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return n.TagName
}

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	return n.GetAttribute(name)
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// AddChild adds a child node and sets up the parent relationship
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node and adds it as a child
func (n *Node) AppendText(text string, line int) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text, Line: line})
}

// Elements returns the element children, skipping text.
func (n *Node) Elements() []*Node {
	var elems []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode {
			elems = append(elems, c)
		}
	}
	return elems
}

// TextContent joins the node's text children. <br> elements become newlines.
func (n *Node) TextContent() string {
	var sb strings.Builder
	for _, c := range n.Children {
		switch {
		case c.Type == TextNode:
			sb.WriteString(c.Text)
		case c.TagName == "br":
			sb.WriteByte('\n')
		}
	}
	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// GetElementByID returns the first element in the subtree with the given id.
func (n *Node) GetElementByID(id string) *Node {
	if v, ok := n.GetAttribute("id"); ok && v == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.GetElementByID(id); found != nil {
			return found
		}
	}
	return nil
}
