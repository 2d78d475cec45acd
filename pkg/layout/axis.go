package layout

import "math"

// Axis selects the horizontal or vertical half of a pass.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// fullSpan reports whether a node with rule r spans the whole remaining
// extent along a. Bands docked across the axis stretch along it; FILL
// stretches on both.
func (a Axis) fullSpan(r Rule) bool {
	switch r {
	case RuleFill:
		return true
	case RuleNorth, RuleSouth:
		return a == AxisX
	case RuleEast, RuleWest:
		return a == AxisY
	}
	return false
}

// leading reports whether r stacks from the leading edge of a.
func (a Axis) leading(r Rule) bool {
	if a == AxisX {
		return r == RuleWest
	}
	return r == RuleNorth
}

// span is a per-axis view of a node's declared inputs and result fields.
type span struct {
	pos         *int
	size        *int
	contentSize *int
	padLead     *int
	padTrail    *int

	minSize   float64
	declLead  float64
	declTrail float64
	canScroll bool
}

func (n *Node) span(a Axis) span {
	if a == AxisY {
		return span{
			pos:         &n.Y,
			size:        &n.H,
			contentSize: &n.ContentSizeY,
			padLead:     &n.ContentPadding.North,
			padTrail:    &n.ContentPadding.South,
			minSize:     n.MinSizeY,
			declLead:    n.Padding.North,
			declTrail:   n.Padding.South,
			canScroll:   n.CanScrollY,
		}
	}
	return span{
		pos:         &n.X,
		size:        &n.W,
		contentSize: &n.ContentSizeX,
		padLead:     &n.ContentPadding.West,
		padTrail:    &n.ContentPadding.East,
		minSize:     n.MinSizeX,
		declLead:    n.Padding.West,
		declTrail:   n.Padding.East,
		canScroll:   n.CanScrollX,
	}
}

// Pixels converts a length in points to whole pixels at dpi, rounding up.
// The product is taken before dividing by 72 so that exact values such as
// 72pt at 96dpi do not pick up a stray pixel from floating point error.
func Pixels(points, dpi float64) int {
	return int(math.Ceil(points * dpi / 72))
}
