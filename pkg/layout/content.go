package layout

// Content is implemented by whatever a node displays. The engine calls it at
// two points of every pass.
type Content interface {
	// MeasureIntrinsic returns the pixel size the content needs along axis at
	// dpi. It runs after the node's children and ContentPadding for that axis
	// are computed, and must not touch layout state.
	MeasureIntrinsic(n *Node, axis Axis, dpi float64) int

	// OnLayoutFinal runs once per pass after both axes are arranged for n and
	// before window offsets are propagated. It must not change n's rule or size.
	OnLayoutFinal(n *Node)
}

// Container is a Content with no intrinsic size and nothing to do on
// layout. Embed it to implement only one of the hooks.
type Container struct{}

func (Container) MeasureIntrinsic(*Node, Axis, float64) int { return 0 }

func (Container) OnLayoutFinal(*Node) {}
