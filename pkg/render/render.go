package render

import (
	"image"
	"image/color"
	"log"

	"github.com/fogleman/gg"

	"dockbox/pkg/layout"
	"dockbox/pkg/text"
	"dockbox/pkg/widget"
)

// ScrollbarWidth is the thickness of scroll indicators, in points.
const ScrollbarWidth = 4.0

var scrollbarColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}

type Renderer struct {
	context *gg.Context
	fonts   *text.Fonts
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height), fonts: text.Default()}
}

// NewRendererForImage draws straight into img.
func NewRendererForImage(img *image.RGBA) *Renderer {
	return &Renderer{context: gg.NewContextForRGBA(img), fonts: text.Default()}
}

// SetFonts sets the faces used for labels that carry no font cache of their own.
func (r *Renderer) SetFonts(fonts *text.Fonts) {
	r.fonts = fonts
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

type scrollbar struct {
	node *layout.Node
	clip image.Rectangle
}

// Render clears the canvas and paints root's laid-out tree in pre-order, each
// node at its window offset. Children of a scrollable node are clipped to its
// box. root must have been laid out at dpi.
func (r *Renderer) Render(root *layout.Node, dpi float64) {
	r.context.ResetClip()
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	if !root.Enabled() {
		return
	}

	canvas := image.Rect(0, 0, r.context.Width(), r.context.Height())
	clips := []image.Rectangle{canvas}
	var bars []scrollbar

	root.Walk(func(n *layout.Node, depth int) bool {
		clips = clips[:depth+1]
		clip := clips[depth]
		if clip.Empty() {
			return false
		}

		r.setClip(clip, canvas)
		r.drawNode(n, dpi)

		if n.CanScrollX || n.CanScrollY {
			clip = clip.Intersect(n.Bounds())
			bars = append(bars, scrollbar{node: n, clip: clip})
		}
		clips = append(clips, clip)
		return true
	})

	for _, bar := range bars {
		r.setClip(bar.clip, canvas)
		r.drawScrollbarIndicators(bar.node, dpi)
	}
	r.context.ResetClip()
}

// setClip restricts drawing to clip. gg keeps the mask across Push/Pop, so
// the mask is reset explicitly every time.
func (r *Renderer) setClip(clip, canvas image.Rectangle) {
	r.context.ResetClip()
	if clip == canvas {
		return
	}
	r.context.DrawRectangle(float64(clip.Min.X), float64(clip.Min.Y), float64(clip.Dx()), float64(clip.Dy()))
	r.context.Clip()
}

func (r *Renderer) drawNode(n *layout.Node, dpi float64) {
	if d, ok := n.Content.(interface{ Decoration() widget.Decor }); ok {
		r.drawDecor(n, d.Decoration())
	}
	switch c := n.Content.(type) {
	case *widget.Label:
		r.drawLabel(n, c, dpi)
	case *widget.Image:
		r.drawImage(n, c)
	}
}

func (r *Renderer) drawDecor(n *layout.Node, d widget.Decor) {
	x, y := float64(n.WindowOffsetX), float64(n.WindowOffsetY)
	w, h := float64(n.W), float64(n.H)
	if w <= 0 || h <= 0 {
		return
	}
	if d.Background != nil {
		r.context.SetColor(d.Background)
		r.context.DrawRectangle(x, y, w, h)
		r.context.Fill()
	}
	if d.Border != nil {
		r.context.SetColor(d.Border)
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
		r.context.Stroke()
	}
}

func (r *Renderer) drawLabel(n *layout.Node, l *widget.Label, dpi float64) {
	if len(l.Visible) == 0 {
		return
	}
	fonts := l.Fonts
	if fonts == nil {
		fonts = r.fonts
	}
	face, err := fonts.Face(l.Style, l.FontSize(), dpi)
	if err != nil {
		log.Printf("render: label %q: %v", n.Name, err)
		return
	}
	r.context.SetFontFace(face)
	if l.Color != nil {
		r.context.SetColor(l.Color)
	} else {
		r.context.SetRGB(0, 0, 0)
	}

	x := float64(n.WindowOffsetX + n.ContentPadding.West)
	y := float64(n.WindowOffsetY) + l.Baseline
	for i, line := range l.Visible {
		r.context.DrawString(line, x, y+float64(i)*l.LineHeight)
	}
}

func (r *Renderer) drawImage(n *layout.Node, im *widget.Image) {
	if im.Image == nil || im.Fit.Empty() {
		return
	}
	dst := im.Fit.Add(image.Pt(n.WindowOffsetX, n.WindowOffsetY))
	bounds := im.Image.Bounds()

	r.context.Push()
	r.context.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	r.context.Scale(float64(dst.Dx())/float64(bounds.Dx()), float64(dst.Dy())/float64(bounds.Dy()))
	r.context.DrawImage(im.Image, -bounds.Min.X, -bounds.Min.Y)
	r.context.Pop()
}

// drawScrollbarIndicators draws a thumb along the east and south edges of a
// scrollable node whose content overflows it.
func (r *Renderer) drawScrollbarIndicators(n *layout.Node, dpi float64) {
	overX, overY := widget.Overflow(n)
	thickness := float64(layout.Pixels(ScrollbarWidth, dpi))
	x, y := float64(n.WindowOffsetX), float64(n.WindowOffsetY)
	w, h := float64(n.W), float64(n.H)

	r.context.SetColor(scrollbarColor)
	if n.CanScrollY && overY > 0 {
		length := h * h / float64(n.ContentSizeY)
		pos := h * float64(-n.ContentOffsetY) / float64(n.ContentSizeY)
		r.context.DrawRectangle(x+w-thickness, y+pos, thickness, length)
		r.context.Fill()
	}
	if n.CanScrollX && overX > 0 {
		length := w * w / float64(n.ContentSizeX)
		pos := w * float64(-n.ContentOffsetX) / float64(n.ContentSizeX)
		r.context.DrawRectangle(x+pos, y+h-thickness, length, thickness)
		r.context.Fill()
	}
}
