package css

import (
	"strconv"
	"strings"
)

// Color is an opaque RGB colour. It implements color.Color.
type Color struct {
	R, G, B uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

var namedColors = map[string]Color{
	"red":       {255, 0, 0},
	"green":     {0, 128, 0},
	"blue":      {0, 0, 255},
	"yellow":    {255, 255, 0},
	"cyan":      {0, 255, 255},
	"magenta":   {255, 0, 255},
	"white":     {255, 255, 255},
	"black":     {0, 0, 0},
	"gray":      {128, 128, 128},
	"grey":      {128, 128, 128},
	"lightgray": {211, 211, 211},
	"darkgray":  {169, 169, 169},
	"orange":    {255, 165, 0},
	"purple":    {128, 0, 128},
	"pink":      {255, 192, 203},
	"brown":     {165, 42, 42},
	"lime":      {0, 255, 0},
	"navy":      {0, 0, 128},
	"teal":      {0, 128, 128},
	"silver":    {192, 192, 192},
	"maroon":    {128, 0, 0},
	"olive":     {128, 128, 0},
}

// ParseColor accepts a named colour, #rgb or #rrggbb.
func ParseColor(colorStr string) (Color, bool) {
	colorStr = strings.ToLower(strings.TrimSpace(colorStr))
	if hex, ok := strings.CutPrefix(colorStr, "#"); ok {
		return parseHex(hex)
	}
	color, ok := namedColors[colorStr]
	return color, ok
}

func parseHex(hex string) (Color, bool) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// GetColor parses property as a colour. ok is false when it is missing;
// valid is false when it is present but unrecognised.
func (s *Style) GetColor(property string) (color Color, ok, valid bool) {
	val, ok := s.Get(property)
	if !ok {
		return Color{}, false, true
	}
	color, valid = ParseColor(val)
	return color, true, valid
}
