package layout

import (
	"fmt"
	"reflect"
	"testing"
)

// fixedContent reports a constant intrinsic size.
type fixedContent struct {
	Container
	x, y int
}

func (c fixedContent) MeasureIntrinsic(_ *Node, a Axis, _ float64) int {
	if a == AxisY {
		return c.y
	}
	return c.x
}

// recorder logs every hook call into a shared event list.
type recorder struct {
	events *[]string
	name   string
	sizeAt [2]int // W, H seen at OnLayoutFinal
}

func (r *recorder) MeasureIntrinsic(n *Node, a Axis, dpi float64) int {
	*r.events = append(*r.events, fmt.Sprintf("%s measure %s", r.name, a))
	return 0
}

func (r *recorder) OnLayoutFinal(n *Node) {
	*r.events = append(*r.events, r.name+" final")
	r.sizeAt = [2]int{n.W, n.H}
}

func TestContent_IntrinsicSizeOverridesChildren(t *testing.T) {
	root := NewNode("root", RuleFill)
	leaf := &Node{Name: "leaf", Rule: RuleFill, Content: fixedContent{x: 40, y: 12}}
	leaf.Padding = EdgesAll(2)
	root.AddChild(leaf)
	root.LayoutAsRoot(72)

	if leaf.W != 40 || leaf.H != 12 {
		t.Errorf("leaf = %dx%d, want 40x12", leaf.W, leaf.H)
	}
	if root.W != 40 || root.H != 12 {
		t.Errorf("root = %dx%d, want 40x12", root.W, root.H)
	}
}

func TestContent_SmallIntrinsicSizeDoesNotShrink(t *testing.T) {
	leaf := &Node{Name: "leaf", Rule: RuleFill, MinSizeX: 30, MinSizeY: 30, Content: fixedContent{x: 5, y: 50}}
	leaf.LayoutAsRoot(72)

	if leaf.W != 30 || leaf.H != 50 {
		t.Errorf("leaf = %dx%d, want 30x50", leaf.W, leaf.H)
	}
}

func TestContent_HookOrder(t *testing.T) {
	var events []string
	rootHooks := &recorder{events: &events, name: "root"}
	childHooks := &recorder{events: &events, name: "child"}

	root := &Node{Name: "root", Rule: RuleFill, MinSizeX: 50, MinSizeY: 20, Content: rootHooks}
	child := &Node{Name: "child", Rule: RuleWest, MinSizeX: 10, Content: childHooks}
	root.AddChild(child)
	root.LayoutAsRoot(72)

	want := []string{
		"child measure x",
		"root measure x",
		"child measure y",
		"root measure y",
		"child final",
		"root final",
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %q, want %q", events, want)
	}
	if childHooks.sizeAt != [2]int{10, 20} {
		t.Errorf("child saw %v at OnLayoutFinal, want final 10x20", childHooks.sizeAt)
	}

	events = events[:0]
	root.LayoutAsRoot(72)
	if len(events) != len(want) {
		t.Errorf("second pass fired %d hooks, want %d", len(events), len(want))
	}
}

func TestContent_DisabledNodeHooksNotCalled(t *testing.T) {
	var events []string
	root := NewNode("root", RuleFill)
	child := &Node{Name: "child", Rule: RuleFill, Content: &recorder{events: &events, name: "child"}}
	child.SetEnabled(false)
	root.AddChild(child)
	root.LayoutAsRoot(72)

	if len(events) != 0 {
		t.Errorf("disabled node hooks fired: %q", events)
	}
}

func TestContent_FinalHookSeesStaleWindowOffset(t *testing.T) {
	var seen int
	root := sized("root", RuleFill, 20, 20)
	child := &Node{Name: "child", Rule: RuleFill, Content: finalFunc(func(n *Node) { seen = n.WindowOffsetX })}
	root.AddChild(child)
	root.LayoutAsRoot(72)

	root.X = 9
	root.LayoutAsRoot(72)
	if seen != 0 {
		t.Errorf("OnLayoutFinal saw window x %d, want previous pass value 0", seen)
	}
	if child.WindowOffsetX != 9 {
		t.Errorf("child window x = %d, want 9", child.WindowOffsetX)
	}
}

type finalFunc func(n *Node)

func (f finalFunc) MeasureIntrinsic(*Node, Axis, float64) int { return 0 }

func (f finalFunc) OnLayoutFinal(n *Node) { f(n) }
