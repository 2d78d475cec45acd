package widget

import "dockbox/pkg/layout"

// ScrollView keeps a scroll position for a node whose content may exceed its
// box. After every layout the position is clamped to the scrollable range and
// published as the node's content offset.
type ScrollView struct {
	Decor
	ScrollX int
	ScrollY int
}

func (s *ScrollView) Kind() string { return "scroll" }

// ScrollBy moves the scroll position. It takes effect on the next layout.
func (s *ScrollView) ScrollBy(dx, dy int) {
	s.ScrollX += dx
	s.ScrollY += dy
}

func (s *ScrollView) MeasureIntrinsic(*layout.Node, layout.Axis, float64) int { return 0 }

func (s *ScrollView) OnLayoutFinal(n *layout.Node) {
	s.ScrollX = clampScroll(s.ScrollX, n.CanScrollX, n.ContentSizeX-n.W)
	s.ScrollY = clampScroll(s.ScrollY, n.CanScrollY, n.ContentSizeY-n.H)
	n.ContentOffsetX = -s.ScrollX
	n.ContentOffsetY = -s.ScrollY
}

// Overflow reports how far the content extends past the box on each axis.
func Overflow(n *layout.Node) (x, y int) {
	return max(0, n.ContentSizeX-n.W), max(0, n.ContentSizeY-n.H)
}

func clampScroll(pos int, enabled bool, limit int) int {
	if !enabled || pos < 0 {
		return 0
	}
	return min(pos, max(0, limit))
}
