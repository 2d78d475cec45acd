package layout

import (
	"strconv"
	"strings"
)

// Rule is the edge (or fill) a node is docked to inside its parent's content box.
type Rule uint8

const (
	RuleNone Rule = iota // Excluded from layout
	RuleFill
	RuleNorth
	RuleSouth
	RuleEast
	RuleWest
)

var ruleNames = [...]string{
	RuleNone:  "none",
	RuleFill:  "fill",
	RuleNorth: "north",
	RuleSouth: "south",
	RuleEast:  "east",
	RuleWest:  "west",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "rule(" + strconv.Itoa(int(r)) + ")"
}

// Valid reports whether r is one of the known rules.
func (r Rule) Valid() bool {
	return r <= RuleWest
}

// ParseRule maps a rule name ("west", "FILL", ...) to its Rule.
func ParseRule(s string) (Rule, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range ruleNames {
		if name == s {
			return Rule(i), true
		}
	}
	return RuleNone, false
}
