package visualtest

import (
	"image"

	"dockbox/pkg/layout"
)

// RegionDiff counts the differing pixels inside one node's box.
type RegionDiff struct {
	Node      *layout.Node
	Depth     int
	Bounds    image.Rectangle
	Different int
	Total     int
}

// DiffByNode compares actual and expected inside the window box of every
// laid-out node of root, in pre-order. A pixel differs when any channel is
// more than tolerance apart. Boxes are clipped to the image.
func DiffByNode(root *layout.Node, actual, expected image.Image, tolerance int) []RegionDiff {
	area := actual.Bounds().Intersect(expected.Bounds())
	var diffs []RegionDiff
	root.Walk(func(n *layout.Node, depth int) bool {
		b := n.Bounds().Intersect(area)
		d := RegionDiff{Node: n, Depth: depth, Bounds: b, Total: b.Dx() * b.Dy()}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if channelDiff(actual.At(x, y), expected.At(x, y)) > tolerance {
					d.Different++
				}
			}
		}
		diffs = append(diffs, d)
		return true
	})
	return diffs
}
