package text

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Ellipsis is appended by Truncate when text is shortened.
const Ellipsis = "…"

// Style selects a font variant.
type Style struct {
	Bold bool
	Mono bool
}

// FontConfig holds paths to TrueType files used for measurement and
// rendering. Empty paths use the embedded Go fonts.
type FontConfig struct {
	Regular  string
	Bold     string
	Mono     string
	MonoBold string
}

// DefaultFontConfig returns a FontConfig that uses only the embedded Go fonts.
func DefaultFontConfig() FontConfig {
	return FontConfig{}
}

// FontPath returns the configured path for style, or "" for the embedded font.
func (fc FontConfig) FontPath(style Style) string {
	switch {
	case style.Mono && style.Bold:
		return fc.MonoBold
	case style.Mono:
		return fc.Mono
	case style.Bold:
		return fc.Bold
	}
	return fc.Regular
}

func embedded(style Style) []byte {
	switch {
	case style.Mono && style.Bold:
		return gomonobold.TTF
	case style.Mono:
		return gomono.TTF
	case style.Bold:
		return gobold.TTF
	}
	return goregular.TTF
}

// Measurer sizes text for layout. Fonts measures in pixels of a real face;
// other implementations may measure in character cells.
type Measurer interface {
	Measure(s string, style Style, size, dpi float64) (width, height float64)
	Metrics(style Style, size, dpi float64) (ascent, lineHeight float64)
	Truncate(s string, style Style, size, dpi, maxWidth float64) string
}

type faceKey struct {
	style Style
	size  float64
	dpi   float64
}

// Fonts loads and caches font faces per style, size and DPI.
type Fonts struct {
	config FontConfig

	mu     sync.Mutex
	parsed map[Style]*truetype.Font
	faces  map[faceKey]font.Face
}

// NewFonts creates a face cache for config.
func NewFonts(config FontConfig) *Fonts {
	return &Fonts{
		config: config,
		parsed: make(map[Style]*truetype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

var defaultFonts = NewFonts(DefaultFontConfig())

// Default returns the shared cache backed by the embedded fonts.
func Default() *Fonts {
	return defaultFonts
}

// Config returns the font paths the cache loads from.
func (f *Fonts) Config() FontConfig {
	return f.config
}

// Face returns a face for style at size points rendered at dpi.
func (f *Fonts) Face(style Style, size, dpi float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{style: style, size: size, dpi: dpi}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	ttf, err := f.load(style)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face, nil
}

func (f *Fonts) load(style Style) (*truetype.Font, error) {
	if ttf, ok := f.parsed[style]; ok {
		return ttf, nil
	}
	data := embedded(style)
	if path := f.config.FontPath(style); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		data = b
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	f.parsed[style] = ttf
	return ttf, nil
}

// Measure returns the pixel extent of s (which may contain newlines) set in
// style at size points on a dpi display.
func (f *Fonts) Measure(s string, style Style, size, dpi float64) (width, height float64) {
	face, err := f.Face(style, size, dpi)
	if err != nil {
		return estimate(s, size, dpi)
	}
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w, _ := dc.MeasureString(line)
		width = max(width, w)
	}
	return width, float64(len(lines)) * dc.FontHeight()
}

// Metrics returns the ascent and line height in pixels for style at size
// points on a dpi display.
func (f *Fonts) Metrics(style Style, size, dpi float64) (ascent, lineHeight float64) {
	face, err := f.Face(style, size, dpi)
	if err != nil {
		px := size * dpi / 72
		return px, px * 1.2
	}
	m := face.Metrics()
	return float64(m.Ascent) / 64, float64(m.Height) / 64
}

// estimate is used when no face can be loaded.
func estimate(s string, size, dpi float64) (width, height float64) {
	px := size * dpi / 72
	lines := strings.Split(s, "\n")
	longest := 0
	for _, line := range lines {
		longest = max(longest, utf8.RuneCountInString(line))
	}
	return float64(longest) * px * 0.6, float64(len(lines)) * px * 1.2
}

// Truncate shortens a single line so that it fits in maxWidth pixels,
// appending Ellipsis when anything was cut. Text that already fits is
// returned unchanged; if not even the ellipsis fits the result is "".
func (f *Fonts) Truncate(s string, style Style, size, dpi, maxWidth float64) string {
	if w, _ := f.Measure(s, style, size, dpi); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	// Binary search for the longest prefix that fits with the ellipsis.
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if w, _ := f.Measure(string(runes[:mid])+Ellipsis, style, size, dpi); w <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		if w, _ := f.Measure(Ellipsis, style, size, dpi); w > maxWidth {
			return ""
		}
	}
	return strings.TrimRight(string(runes[:lo]), " ") + Ellipsis
}

// Measure measures s with the embedded fonts.
func Measure(s string, style Style, size, dpi float64) (width, height float64) {
	return defaultFonts.Measure(s, style, size, dpi)
}

// Truncate truncates s with the embedded fonts.
func Truncate(s string, style Style, size, dpi, maxWidth float64) string {
	return defaultFonts.Truncate(s, style, size, dpi, maxWidth)
}
