package css

import (
	"strconv"
	"strings"
)

// Style holds declarations after shorthand expansion.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

// Merge copies every declaration of other over s.
func (s *Style) Merge(other *Style) {
	for k, v := range other.Properties {
		s.Properties[k] = v
	}
}

// GetLength returns the property as points. ok is false when the property is
// missing; valid is false when it is present but malformed.
func (s *Style) GetLength(property string) (length float64, ok, valid bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false, true
	}
	length, valid = ParseLength(val)
	return length, true, valid
}

// ParseLength parses a length in points. Bare numbers and the "pt" and "px"
// suffixes are accepted; px is treated as a point so that markup written for
// 72 DPI keeps its proportions at every scale. Negative lengths are rejected.
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	val = strings.TrimSuffix(val, "pt")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil || num < 0 {
		return 0, false
	}
	return num, true
}

// BoxEdge holds a value for each side of a box.
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GetPadding returns the padding on all four sides. The first malformed side
// is reported by name.
func (s *Style) GetPadding() (BoxEdge, string) {
	var edge BoxEdge
	sides := []struct {
		property string
		dst      *float64
	}{
		{"padding-top", &edge.Top},
		{"padding-right", &edge.Right},
		{"padding-bottom", &edge.Bottom},
		{"padding-left", &edge.Left},
	}
	for _, side := range sides {
		v, _, valid := s.GetLength(side.property)
		if !valid {
			return BoxEdge{}, side.property
		}
		*side.dst = v
	}
	return edge, ""
}

func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	for property, value := range parseDeclarations(styleAttr) {
		style.Set(property, value)
	}
	return style
}

// parseDeclarations splits "a: b; c: d" into expanded properties.
func parseDeclarations(declStr string) map[string]string {
	declarations := make(map[string]string)
	for _, decl := range strings.Split(declStr, ";") {
		property, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}
		expandShorthand(declarations, property, value)
	}
	return declarations
}

func expandShorthand(decls map[string]string, property, value string) {
	switch property {
	case "padding":
		expandBoxProperty(decls, "padding", value)
	case "border":
		expandBorderProperty(decls, value)
	default:
		decls[property] = value
	}
}

// expandBoxProperty expands padding shorthand
// Supports: "10" (all), "10 20" (vertical horizontal),
//
//	"10 20 30" (top h bottom), "10 20 30 40" (t r b l)
func expandBoxProperty(decls map[string]string, prefix, value string) {
	parts := strings.Fields(value)

	switch len(parts) {
	case 1:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-right"] = parts[0]
		decls[prefix+"-bottom"] = parts[0]
		decls[prefix+"-left"] = parts[0]
	case 2:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-bottom"] = parts[0]
		decls[prefix+"-right"] = parts[1]
		decls[prefix+"-left"] = parts[1]
	case 3:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-right"] = parts[1]
		decls[prefix+"-left"] = parts[1]
		decls[prefix+"-bottom"] = parts[2]
	case 4:
		decls[prefix+"-top"] = parts[0]
		decls[prefix+"-right"] = parts[1]
		decls[prefix+"-bottom"] = parts[2]
		decls[prefix+"-left"] = parts[3]
	default:
		// Keep the raw value so the malformed declaration is reported.
		decls[prefix+"-top"] = value
	}
}

// expandBorderProperty expands border shorthand, e.g. "1px solid black".
// Only the colour is drawn; widths and line styles are accepted and ignored.
func expandBorderProperty(decls map[string]string, value string) {
	for _, part := range strings.Fields(value) {
		if _, ok := ParseLength(part); ok {
			continue
		}
		switch part {
		case "solid", "dotted", "dashed", "double", "none":
			continue
		}
		decls["border-color"] = part
	}
}

// GetFontSize returns font-size in points, or def when unset.
func (s *Style) GetFontSize(def float64) (float64, bool) {
	size, ok, valid := s.GetLength("font-size")
	if !ok {
		return def, true
	}
	return size, valid
}

// IsBold reports whether font-weight selects the bold face.
func (s *Style) IsBold() bool {
	switch weight, _ := s.Get("font-weight"); weight {
	case "bold", "700", "800", "900":
		return true
	}
	return false
}

// IsMono reports whether font-family selects the monospace face.
func (s *Style) IsMono() bool {
	family, _ := s.Get("font-family")
	family = strings.ToLower(family)
	return family == "mono" || family == "monospace"
}

// GetScroll parses the scroll property: none, x, y or both.
func (s *Style) GetScroll() (x, y, ok bool) {
	val, present := s.Get("scroll")
	if !present {
		return false, false, true
	}
	switch strings.ToLower(val) {
	case "none":
		return false, false, true
	case "x":
		return true, false, true
	case "y":
		return false, true, true
	case "both":
		return true, true, true
	}
	return false, false, false
}
