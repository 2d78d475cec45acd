package termgrid

import (
	"image"
	"image/color"

	"github.com/mattn/go-runewidth"

	"dockbox/pkg/layout"
	"dockbox/pkg/widget"
)

// Cell is one terminal character. Nil colours mean the terminal default.
// Rune 0 marks the second column of a wide character.
type Cell struct {
	Rune rune
	FG   color.Color
	BG   color.Color
}

// Grid is a rectangle of cells in row-major order.
type Grid struct {
	W, H  int
	Cells []Cell
}

var (
	scrollbarColor = color.Gray{Y: 160}
	imageRune      = '▒'
)

// NewGrid returns a w x h grid of blank cells.
func NewGrid(w, h int) *Grid {
	g := &Grid{W: max(0, w), H: max(0, h)}
	g.Cells = make([]Cell, g.W*g.H)
	for i := range g.Cells {
		g.Cells[i].Rune = ' '
	}
	return g
}

// At returns the cell at (x, y); outside the grid it returns a blank cell.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return Cell{Rune: ' '}
	}
	return g.Cells[y*g.W+x]
}

// Row returns the runes of row y, skipping wide-character continuations.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.H {
		return ""
	}
	runes := make([]rune, 0, g.W)
	for _, c := range g.Cells[y*g.W : (y+1)*g.W] {
		if c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}

func (g *Grid) cell(x, y int, clip image.Rectangle) *Cell {
	if !image.Pt(x, y).In(clip) || x < 0 || y < 0 || x >= g.W || y >= g.H {
		return nil
	}
	return &g.Cells[y*g.W+x]
}

// Paint draws root's laid-out tree, which must have been laid out in cells,
// the same way the raster renderer does: pre-order, children of scrollable
// nodes clipped to their box, scroll thumbs last.
func Paint(root *layout.Node, w, h int) *Grid {
	g := NewGrid(w, h)
	if !root.Enabled() {
		return g
	}

	screen := image.Rect(0, 0, g.W, g.H)
	clips := []image.Rectangle{screen}
	var bars []*layout.Node
	var barClips []image.Rectangle

	root.Walk(func(n *layout.Node, depth int) bool {
		clips = clips[:depth+1]
		clip := clips[depth]
		if clip.Empty() {
			return false
		}
		g.drawNode(n, clip)

		if n.CanScrollX || n.CanScrollY {
			clip = clip.Intersect(n.Bounds())
			bars = append(bars, n)
			barClips = append(barClips, clip)
		}
		clips = append(clips, clip)
		return true
	})

	for i, n := range bars {
		g.drawScrollThumb(n, barClips[i])
	}
	return g
}

func (g *Grid) drawNode(n *layout.Node, clip image.Rectangle) {
	if d, ok := n.Content.(interface{ Decoration() widget.Decor }); ok {
		g.drawDecor(n, d.Decoration(), clip)
	}
	switch c := n.Content.(type) {
	case *widget.Label:
		g.drawLabel(n, c, clip)
	case *widget.Image:
		g.drawImage(n, c, clip)
	}
}

func (g *Grid) drawDecor(n *layout.Node, d widget.Decor, clip image.Rectangle) {
	b := n.Bounds()
	if b.Empty() {
		return
	}
	if d.Background != nil {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if c := g.cell(x, y, clip); c != nil {
					*c = Cell{Rune: ' ', BG: d.Background}
				}
			}
		}
	}
	if d.Border != nil && b.Dx() >= 2 && b.Dy() >= 2 {
		x0, y0, x1, y1 := b.Min.X, b.Min.Y, b.Max.X-1, b.Max.Y-1
		g.put(x0, y0, '┌', d.Border, clip)
		g.put(x1, y0, '┐', d.Border, clip)
		g.put(x0, y1, '└', d.Border, clip)
		g.put(x1, y1, '┘', d.Border, clip)
		for x := x0 + 1; x < x1; x++ {
			g.put(x, y0, '─', d.Border, clip)
			g.put(x, y1, '─', d.Border, clip)
		}
		for y := y0 + 1; y < y1; y++ {
			g.put(x0, y, '│', d.Border, clip)
			g.put(x1, y, '│', d.Border, clip)
		}
	}
}

// put sets a cell's rune and foreground, keeping its background.
func (g *Grid) put(x, y int, r rune, fg color.Color, clip image.Rectangle) {
	if c := g.cell(x, y, clip); c != nil {
		c.Rune, c.FG = r, fg
	}
}

func (g *Grid) drawLabel(n *layout.Node, l *widget.Label, clip image.Rectangle) {
	inner := image.Rect(
		n.WindowOffsetX+n.ContentPadding.West, n.WindowOffsetY+n.ContentPadding.North,
		n.WindowOffsetX+n.W-n.ContentPadding.East, n.WindowOffsetY+n.H-n.ContentPadding.South,
	).Intersect(clip)

	y := n.WindowOffsetY + int(l.Baseline)
	for i, line := range l.Visible {
		row := y + int(float64(i)*l.LineHeight)
		x := n.WindowOffsetX + n.ContentPadding.West
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			g.put(x, row, r, l.Color, inner)
			for k := 1; k < w; k++ {
				g.put(x+k, row, 0, l.Color, inner)
			}
			x += w
		}
	}
}

// drawImage shades the fitted area with the colour at the image's centre.
func (g *Grid) drawImage(n *layout.Node, im *widget.Image, clip image.Rectangle) {
	if im.Image == nil || im.Fit.Empty() {
		return
	}
	b := im.Image.Bounds()
	fg := im.Image.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	dst := im.Fit.Add(image.Pt(n.WindowOffsetX, n.WindowOffsetY))
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			g.put(x, y, imageRune, fg, clip)
		}
	}
}

// drawScrollThumb marks the visible part of overflowing content along the
// east column and south row.
func (g *Grid) drawScrollThumb(n *layout.Node, clip image.Rectangle) {
	overX, overY := widget.Overflow(n)
	x, y := n.WindowOffsetX, n.WindowOffsetY
	if n.CanScrollY && overY > 0 {
		start, length := thumb(n.H, n.ContentSizeY, -n.ContentOffsetY)
		for i := start; i < start+length; i++ {
			g.put(x+n.W-1, y+i, '┃', scrollbarColor, clip)
		}
	}
	if n.CanScrollX && overX > 0 {
		start, length := thumb(n.W, n.ContentSizeX, -n.ContentOffsetX)
		for i := start; i < start+length; i++ {
			g.put(x+i, y+n.H-1, '━', scrollbarColor, clip)
		}
	}
}

// thumb scales a scroll range onto a track of size cells, at least one long.
func thumb(size, content, pos int) (start, length int) {
	length = max(1, size*size/content)
	start = min(size-length, size*pos/content)
	return start, length
}
