package layout

import "log"

// measure computes n's content size and size along a, children first.
func measure(n *Node, a Axis, dpi float64) {
	s := n.span(a)
	declared := Pixels(s.minSize, dpi)
	*s.padLead = Pixels(s.declLead, dpi)
	*s.padTrail = Pixels(s.declTrail, dpi)

	reserve, total := 0, 0
	for _, child := range n.Children {
		if child.disabled || child.Rule == RuleNone {
			continue
		}
		if !child.Rule.Valid() {
			log.Printf("layout: node %q: unsupported rule %d on %s axis, skipped", child.Name, uint8(child.Rule), a)
			continue
		}
		measure(child, a, dpi)
		size := *child.span(a).size
		if a.fullSpan(child.Rule) {
			total = max(total, reserve+size)
		} else {
			reserve += size
			total = max(total, reserve)
		}
	}

	content := max(total, declared) + *s.padLead + *s.padTrail
	if n.Content != nil {
		content = max(content, n.Content.MeasureIntrinsic(n, a, dpi))
	}
	*s.contentSize = content
	if s.canScroll {
		*s.size = declared
	} else {
		*s.size = content
	}
}
