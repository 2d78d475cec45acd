// Package viewer shows laid-out pages in a fyne window.
package viewer

import (
	"fmt"
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"dockbox/pkg/inspect"
	"dockbox/pkg/layout"
	"dockbox/pkg/resource"
	dockwidget "dockbox/pkg/widget"
)

// PageView is a widget that lays a page out to its own pixel size, relaying
// on every resize. Taps report the node under the pointer and scroll events
// move the innermost scroll view.
type PageView struct {
	widget.BaseWidget

	// Scale returns the canvas scale; pages are laid out at 72 * Scale() dpi.
	Scale func() float32
	// OnStatus receives a line of text after loads, taps and errors.
	OnStatus func(string)

	raster   *canvas.Image
	renderer *resource.DockRenderer
	page     *resource.Page
	dpi      float64
	px       image.Point
}

// NewPageView creates an empty view rendering with renderer.
func NewPageView(renderer *resource.DockRenderer) *PageView {
	v := &PageView{
		Scale:    func() float32 { return 1 },
		renderer: renderer,
		raster:   canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	v.raster.FillMode = canvas.ImageFillStretch
	v.raster.ScaleMode = canvas.ImageScalePixels
	v.ExtendBaseWidget(v)
	return v
}

func (v *PageView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// SetRenderer replaces the renderer used by later SetContent calls.
func (v *PageView) SetRenderer(renderer *resource.DockRenderer) {
	v.renderer = renderer
}

// Page returns the current page, or nil before the first successful load.
func (v *PageView) Page() *resource.Page {
	return v.page
}

// SetContent builds content for the view's current size, running its scripts
// once, and paints it. On error the previous page stays.
func (v *PageView) SetContent(content string) error {
	v.measure()
	page, err := v.renderer.Load(content, v.px.X, v.px.Y, v.dpi)
	if err != nil {
		v.status("Error: " + err.Error())
		return err
	}
	v.page = page
	v.paint()
	v.status(fmt.Sprintf("%d nodes at %v dpi", countNodes(page.Root()), v.dpi))
	return nil
}

func (v *PageView) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	v.relayout()
}

// Tapped reports the deepest node under the pointer.
func (v *PageView) Tapped(ev *fyne.PointEvent) {
	n := v.nodeAt(ev.Position)
	if n == nil {
		v.status("nothing here")
		return
	}
	v.status(inspect.Line(n))
}

// Scrolled moves the innermost scroll view under the pointer.
func (v *PageView) Scrolled(ev *fyne.ScrollEvent) {
	for n := v.nodeAt(ev.Position); n != nil; n = n.Parent() {
		sv, ok := n.Content.(*dockwidget.ScrollView)
		if !ok {
			continue
		}
		scale := float64(v.Scale())
		sv.ScrollBy(-int(math.Round(float64(ev.Scrolled.DX)*scale)), -int(math.Round(float64(ev.Scrolled.DY)*scale)))
		v.relayout()
		return
	}
}

func (v *PageView) nodeAt(pos fyne.Position) *layout.Node {
	if v.page == nil {
		return nil
	}
	scale := v.Scale()
	x := int(math.Floor(float64(pos.X * scale)))
	y := int(math.Floor(float64(pos.Y * scale)))
	return v.page.Root().HitTest(x, y)
}

// measure converts the widget size to device pixels and a layout dpi.
func (v *PageView) measure() {
	scale := v.Scale()
	size := v.Size()
	v.px = image.Pt(
		max(1, int(math.Round(float64(size.Width*scale)))),
		max(1, int(math.Round(float64(size.Height*scale)))),
	)
	v.dpi = 72 * float64(scale)
}

func (v *PageView) relayout() {
	if v.page == nil {
		return
	}
	v.measure()
	v.page.Layout(v.px.X, v.px.Y, v.dpi)
	v.paint()
}

func (v *PageView) paint() {
	target := image.NewRGBA(image.Rect(0, 0, v.px.X, v.px.Y))
	v.renderer.Paint(v.page, target, v.dpi)
	v.raster.Image = target
	v.raster.Refresh()
}

func (v *PageView) status(s string) {
	if v.OnStatus != nil {
		v.OnStatus(s)
	}
}

func countNodes(root *layout.Node) int {
	count := 0
	root.Walk(func(*layout.Node, int) bool {
		count++
		return true
	})
	return count
}
