package css

import (
	"slices"
	"testing"
)

// rulesOf flattens a stylesheet to "selector property=value" entries, one per
// declaration, in rule order.
func rulesOf(s *Stylesheet) []string {
	var out []string
	for _, rule := range s.Rules {
		props := make([]string, 0, len(rule.Declarations))
		for prop := range rule.Declarations {
			props = append(props, prop)
		}
		slices.Sort(props)
		for _, prop := range props {
			out = append(out, rule.Selector.Raw+" "+prop+"="+rule.Declarations[prop])
		}
	}
	return out
}

func TestParseStylesheet_Comments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comment between rules",
			input: "panel { background: red; } /* sidebar */ #side { dock: west; }",
			want:  []string{"panel background=red", "#side dock=west"},
		},
		{
			name:  "comment inside declaration block",
			input: ".band { /* bottom */ dock: south; }",
			want:  []string{".band dock=south"},
		},
		{
			name:  "comment inside a value",
			input: "label { color: /* was blue */ navy; }",
			want:  []string{"label color=navy"},
		},
		{
			name:  "comment inside selector area",
			input: "label /* all of them */ { color: red; }",
			want:  []string{"label color=red"},
		},
		{
			name:  "comment inside selector list",
			input: "#status, /* and */ .footer { dock: south; }",
			want:  []string{"#status dock=south", ".footer dock=south"},
		},
		{
			name:  "unterminated comment drops the rest",
			input: "label { color: red; } /* #side { dock: west; }",
			want:  []string{"label color=red"},
		},
		{
			name:  "nested-looking comment ends at first close",
			input: "/* outer /* inner */ .card { dock: north; } */",
			want:  []string{".card dock=north"},
		},
		{
			name:  "commented-out rule",
			input: "/* panel { dock: east; } */ scroll { padding-left: 4; }",
			want:  []string{"scroll padding-left=4"},
		},
		{
			name:  "empty and starred comments",
			input: "/**/ /*** banner ***/ image { min-width: 16; }",
			want:  []string{"image min-width=16"},
		},
		{
			name:  "only comments",
			input: "/* nothing */ /**/",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stylesheet, err := ParseStylesheet(tt.input)
			if err != nil {
				t.Fatalf("ParseStylesheet(%q): %v", tt.input, err)
			}
			if got := rulesOf(stylesheet); !slices.Equal(got, tt.want) {
				t.Errorf("ParseStylesheet(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStylesheet_BraceInsideComment(t *testing.T) {
	stylesheet, err := ParseStylesheet("/* { */ label { color: red; }")
	if err != nil {
		t.Fatalf("brace inside a comment counted: %v", err)
	}
	if got := rulesOf(stylesheet); !slices.Equal(got, []string{"label color=red"}) {
		t.Errorf("rules = %q", got)
	}
}
