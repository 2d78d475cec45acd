package viewer

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"dockbox/pkg/resource"
)

const bands = `
<panel id="root">
  <panel id="bar" style="dock: north; min-height: 10; background: red"/>
  <panel id="body" style="background: blue"/>
</panel>`

func newView(t *testing.T, w, h float32) (*PageView, *string) {
	t.Helper()
	test.NewTempApp(t)
	v := NewPageView(resource.NewDockRenderer(nil))
	var status string
	v.OnStatus = func(s string) { status = s }
	v.Resize(fyne.NewSize(w, h))
	return v, &status
}

func TestPageView_SetContentPaints(t *testing.T) {
	v, status := newView(t, 40, 30)
	if err := v.SetContent(bands); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	if !strings.Contains(*status, "3 nodes") {
		t.Errorf("status = %q", *status)
	}

	img := v.raster.Image.(*image.RGBA)
	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Fatalf("raster bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bar pixel = %v", got)
	}
	if got := img.RGBAAt(5, 20); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("body pixel = %v", got)
	}
}

func TestPageView_ResizeRelayouts(t *testing.T) {
	v, _ := newView(t, 40, 30)
	if err := v.SetContent(bands); err != nil {
		t.Fatal(err)
	}
	v.Resize(fyne.NewSize(80, 20))

	root := v.Page().Root()
	if root.W != 80 || root.H != 20 {
		t.Errorf("root = %dx%d, want 80x20", root.W, root.H)
	}
	if body := root.Find("body"); body.H != 10 {
		t.Errorf("body height = %d, want 10", body.H)
	}
}

func TestPageView_TapReportsNode(t *testing.T) {
	v, status := newView(t, 40, 30)
	if err := v.SetContent(bands); err != nil {
		t.Fatal(err)
	}

	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(5, 5)})
	if !strings.HasPrefix(*status, "panel bar north 0,0 40x10") {
		t.Errorf("tap on bar: status = %q", *status)
	}
	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(5, 25)})
	if !strings.HasPrefix(*status, "panel body fill") {
		t.Errorf("tap on body: status = %q", *status)
	}
}

func TestPageView_CanvasScale(t *testing.T) {
	test.NewTempApp(t)
	v := NewPageView(resource.NewDockRenderer(nil))
	v.Scale = func() float32 { return 2 }
	var status string
	v.OnStatus = func(s string) { status = s }
	v.Resize(fyne.NewSize(20, 15))

	if err := v.SetContent(bands); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(status, "144 dpi") {
		t.Errorf("status = %q", status)
	}
	if bar := v.Page().Root().Find("bar"); bar.H != 20 || bar.W != 40 {
		t.Errorf("bar = %dx%d, want 40x20", bar.W, bar.H)
	}

	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(5, 9)})
	if !strings.HasPrefix(status, "panel bar") {
		t.Errorf("tap at 5,9 = %q, want bar", status)
	}
}

func TestPageView_ScrollMovesScrollView(t *testing.T) {
	v, _ := newView(t, 40, 30)
	err := v.SetContent(`
<scroll id="body">
  <panel id="r1" style="dock: north; min-height: 20"/>
  <panel id="r2" style="dock: north; min-height: 20"/>
  <panel id="r3" style="dock: north; min-height: 20"/>
</scroll>`)
	if err != nil {
		t.Fatal(err)
	}

	v.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Scrolled:   fyne.Delta{DY: -10},
	})
	root := v.Page().Root()
	if root.ContentOffsetY != -10 {
		t.Errorf("content offset = %d, want -10", root.ContentOffsetY)
	}
	if r2 := root.Find("r2"); r2.WindowOffsetY != 10 {
		t.Errorf("r2 window Y = %d, want 10", r2.WindowOffsetY)
	}

	v.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Scrolled:   fyne.Delta{DY: -100},
	})
	if root.ContentOffsetY != -30 {
		t.Errorf("content offset = %d, want clamped -30", root.ContentOffsetY)
	}
}

func TestPageView_BuildErrorKeepsPage(t *testing.T) {
	v, status := newView(t, 40, 30)
	if err := v.SetContent(bands); err != nil {
		t.Fatal(err)
	}
	page := v.Page()

	if err := v.SetContent("<panel>"); err == nil {
		t.Fatal("expected build error")
	}
	if !strings.HasPrefix(*status, "Error:") {
		t.Errorf("status = %q", *status)
	}
	if v.Page() != page {
		t.Error("failed load replaced the page")
	}
}
