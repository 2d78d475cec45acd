package layout

// arrange places n's children along a inside n's content box, then recurses.
// n's own size and content size along a must already be final.
func arrange(n *Node, a Axis) {
	s := n.span(a)
	box0 := *s.padLead
	box1 := *s.contentSize - *s.padTrail

	for _, child := range n.Children {
		if !child.laidOut() {
			continue
		}
		cs := child.span(a)
		switch {
		case a.fullSpan(child.Rule):
			*cs.pos = box0
			*cs.size = box1 - box0
			stretch(cs)
		case a.leading(child.Rule):
			*cs.pos = box0
			box0 += *cs.size
		default:
			box1 -= *cs.size
			*cs.pos = box1
		}

		arrange(child, a)
		if a == AxisY && child.Content != nil {
			child.Content.OnLayoutFinal(child)
		}
	}
}

// stretch folds a size assigned by the parent back into the content size.
func stretch(s span) {
	if !s.canScroll || *s.size > *s.contentSize {
		*s.contentSize = *s.size
	}
}
