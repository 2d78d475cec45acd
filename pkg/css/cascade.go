package css

import (
	"slices"
	"strings"
)

// Element is what the cascade needs to know about a markup element.
type Element interface {
	Tag() string
	Attr(name string) (string, bool)
}

// Matches reports whether sel selects el.
func (sel Selector) Matches(el Element) bool {
	switch sel.Type {
	case IDSelector:
		id, ok := el.Attr("id")
		return ok && id == sel.Value
	case ClassSelector:
		classes, _ := el.Attr("class")
		return slices.Contains(strings.Fields(classes), sel.Value)
	}
	return sel.Value == "*" || sel.Value == el.Tag()
}

// ComputeStyle applies matching rules in specificity order, later rules
// winning ties, followed by the element's inline style attribute.
func ComputeStyle(el Element, stylesheets []*Stylesheet) *Style {
	var matched []Rule
	for _, sheet := range stylesheets {
		for _, rule := range sheet.Rules {
			if rule.Selector.Matches(el) {
				matched = append(matched, rule)
			}
		}
	}
	slices.SortStableFunc(matched, func(a, b Rule) int {
		return a.Selector.Specificity - b.Selector.Specificity
	})

	style := NewStyle()
	for _, rule := range matched {
		for property, value := range rule.Declarations {
			style.Set(property, value)
		}
	}
	if attr, ok := el.Attr("style"); ok {
		style.Merge(ParseInlineStyle(attr))
	}
	return style
}
