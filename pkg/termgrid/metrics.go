// Package termgrid lays pages out in character cells and paints them into a
// grid a terminal can display.
package termgrid

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"dockbox/pkg/text"
)

// CellMetrics measures text in terminal cells: one row per line and one
// column per cell of display width. Font style, size and DPI are ignored.
type CellMetrics struct{}

var _ text.Measurer = CellMetrics{}

func (CellMetrics) Measure(s string, _ text.Style, _, _ float64) (width, height float64) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, float64(runewidth.StringWidth(line)))
	}
	return width, float64(len(lines))
}

func (CellMetrics) Metrics(text.Style, float64, float64) (ascent, lineHeight float64) {
	return 0, 1
}

func (CellMetrics) Truncate(s string, _ text.Style, _, _, maxWidth float64) string {
	limit := int(maxWidth)
	if runewidth.StringWidth(s) <= limit {
		return s
	}
	if limit < runewidth.StringWidth(text.Ellipsis) {
		return ""
	}
	return runewidth.Truncate(s, limit, text.Ellipsis)
}
