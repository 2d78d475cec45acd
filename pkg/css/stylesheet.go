package css

import (
	"fmt"
	"strings"
)

// Selector is a single simple selector: an element name, .class or #id.
type Selector struct {
	Raw         string
	Type        SelectorType
	Value       string
	Specificity int
}

type SelectorType int

const (
	ElementSelector SelectorType = iota // panel, label
	ClassSelector                       // .classname
	IDSelector                          // #idname
)

// Rule is a selector with its expanded declarations.
type Rule struct {
	Selector     Selector
	Declarations map[string]string
}

// Stylesheet is a parsed <style> block.
type Stylesheet struct {
	Rules []Rule
}

// ParseStylesheet parses rules of the form "selector, selector { decls }".
// Malformed rules are skipped.
func ParseStylesheet(css string) (*Stylesheet, error) {
	stylesheet := &Stylesheet{}

	css = strings.TrimSpace(stripCSSComments(css))
	if css == "" {
		return stylesheet, nil
	}
	if strings.Count(css, "{") != strings.Count(css, "}") {
		return nil, fmt.Errorf("unbalanced braces in stylesheet")
	}

	for _, ruleStr := range splitRules(css) {
		rules, err := parseRule(ruleStr)
		if err != nil {
			continue
		}
		stylesheet.Rules = append(stylesheet.Rules, rules...)
	}
	return stylesheet, nil
}

// stripCSSComments removes /* ... */ comments. An unterminated comment runs
// to the end of the input.
func stripCSSComments(css string) string {
	var b strings.Builder
	for {
		start := strings.Index(css, "/*")
		if start < 0 {
			b.WriteString(css)
			return b.String()
		}
		b.WriteString(css[:start])
		end := strings.Index(css[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		css = css[start+2+end+2:]
	}
}

func splitRules(css string) []string {
	var rules []string
	depth := 0
	start := 0
	for i, ch := range css {
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				if ruleStr := strings.TrimSpace(css[start : i+1]); ruleStr != "" {
					rules = append(rules, ruleStr)
				}
				start = i + 1
			}
		}
	}
	return rules
}

// parseRule parses one rule; a selector list yields one Rule per selector.
func parseRule(ruleStr string) ([]Rule, error) {
	bracePos := strings.Index(ruleStr, "{")
	if bracePos == -1 {
		return nil, fmt.Errorf("no opening brace found")
	}
	declEnd := strings.LastIndex(ruleStr, "}")
	if declEnd < bracePos {
		declEnd = len(ruleStr)
	}
	declarations := parseDeclarations(ruleStr[bracePos+1 : declEnd])

	var rules []Rule
	for _, sel := range strings.Split(ruleStr[:bracePos], ",") {
		selector, ok := parseSelector(sel)
		if !ok {
			return nil, fmt.Errorf("unsupported selector %q", strings.TrimSpace(sel))
		}
		rules = append(rules, Rule{Selector: selector, Declarations: declarations})
	}
	return rules, nil
}

func parseSelector(selectorStr string) (Selector, bool) {
	selectorStr = strings.TrimSpace(selectorStr)
	if selectorStr == "" || strings.ContainsAny(selectorStr, " >+~[:") {
		return Selector{}, false
	}

	if id, ok := strings.CutPrefix(selectorStr, "#"); ok {
		return Selector{Type: IDSelector, Value: id, Raw: selectorStr, Specificity: 100}, true
	}
	if class, ok := strings.CutPrefix(selectorStr, "."); ok {
		return Selector{Type: ClassSelector, Value: class, Raw: selectorStr, Specificity: 10}, true
	}
	if selectorStr == "*" {
		return Selector{Type: ElementSelector, Value: "*", Raw: selectorStr}, true
	}
	return Selector{Type: ElementSelector, Value: strings.ToLower(selectorStr), Raw: selectorStr, Specificity: 1}, true
}
