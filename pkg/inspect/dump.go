// Package inspect prints laid-out node trees for debugging.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dockbox/pkg/layout"
)

type styles struct {
	kind   lipgloss.Style
	name   lipgloss.Style
	rule   lipgloss.Style
	geom   lipgloss.Style
	detail lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		kind:   r.NewStyle().Foreground(lipgloss.Color("6")),
		name:   r.NewStyle().Bold(true),
		rule:   r.NewStyle().Foreground(lipgloss.Color("3")),
		geom:   r.NewStyle(),
		detail: r.NewStyle().Faint(true),
	}
}

// Kind names the content of n, or "node" for a plain container.
func Kind(n *layout.Node) string {
	if k, ok := n.Content.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	return "node"
}

// Line formats one node without styling.
func Line(n *layout.Node) string {
	return fmt.Sprintf("%s %s %s %d,%d %dx%d content %dx%d window %d,%d",
		Kind(n), n.Name, n.Rule, n.X, n.Y, n.W, n.H,
		n.ContentSizeX, n.ContentSizeY, n.WindowOffsetX, n.WindowOffsetY)
}

// Dump writes one line per laid-out node, indented by depth. Colours are
// used only when w is a terminal.
func Dump(w io.Writer, root *layout.Node) error {
	s := newStyles(w)
	var err error
	root.Walk(func(n *layout.Node, depth int) bool {
		if err != nil {
			return false
		}
		line := strings.Repeat("  ", depth) +
			s.kind.Render(Kind(n)) + " " +
			s.name.Render(n.Name) + " " +
			s.rule.Render(n.Rule.String()) + " " +
			s.geom.Render(fmt.Sprintf("%d,%d %dx%d", n.X, n.Y, n.W, n.H)) + " " +
			s.detail.Render(fmt.Sprintf("content %dx%d window %d,%d",
				n.ContentSizeX, n.ContentSizeY, n.WindowOffsetX, n.WindowOffsetY))
		_, err = fmt.Fprintln(w, line)
		return true
	})
	return err
}
