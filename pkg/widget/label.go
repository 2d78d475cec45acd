package widget

import (
	"image/color"
	"math"
	"strings"

	"dockbox/pkg/layout"
	"dockbox/pkg/text"
)

// DefaultFontSize is used when a Label has no Size.
const DefaultFontSize = 12.0

// Label displays one or more lines of text. Its intrinsic size is the text
// extent at the layout DPI plus the node's padding.
type Label struct {
	Decor
	Text  string
	Size  float64 // points
	Style text.Style
	Color color.Color
	Fonts *text.Fonts // nil uses text.Default()

	// Measurer overrides Fonts for sizing, e.g. to measure in terminal cells.
	Measurer text.Measurer

	// Visible holds the lines to draw, truncated to the final inner width.
	// LineHeight is the pixel advance between them and Baseline the first
	// line's baseline relative to the node's origin. Set by OnLayoutFinal.
	Visible    []string
	LineHeight float64
	Baseline   float64

	dpi float64
}

func (l *Label) Kind() string { return "label" }

// FontSize returns Size, or DefaultFontSize when unset.
func (l *Label) FontSize() float64 {
	if l.Size > 0 {
		return l.Size
	}
	return DefaultFontSize
}

// DPI returns the DPI of the last measure pass.
func (l *Label) DPI() float64 {
	return l.dpi
}

func (l *Label) fonts() text.Measurer {
	switch {
	case l.Measurer != nil:
		return l.Measurer
	case l.Fonts != nil:
		return l.Fonts
	}
	return text.Default()
}

func (l *Label) MeasureIntrinsic(n *layout.Node, axis layout.Axis, dpi float64) int {
	l.dpi = dpi
	w, h := l.fonts().Measure(l.Text, l.Style, l.FontSize(), dpi)
	pad := n.ContentPadding
	if axis == layout.AxisY {
		return int(math.Ceil(h)) + pad.North + pad.South
	}
	return int(math.Ceil(w)) + pad.West + pad.East
}

func (l *Label) OnLayoutFinal(n *layout.Node) {
	_, _, innerW, _ := innerBox(n)
	lines := strings.Split(l.Text, "\n")
	_, h := l.fonts().Measure(l.Text, l.Style, l.FontSize(), l.dpi)
	l.LineHeight = h / float64(len(lines))
	ascent, _ := l.fonts().Metrics(l.Style, l.FontSize(), l.dpi)
	l.Baseline = float64(n.ContentPadding.North) + ascent

	l.Visible = l.Visible[:0]
	for _, line := range lines {
		l.Visible = append(l.Visible, l.fonts().Truncate(line, l.Style, l.FontSize(), l.dpi, float64(innerW)))
	}
}
