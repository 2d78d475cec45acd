package markup

import "testing"

func TestTokenizer_TagWithAttributes(t *testing.T) {
	tokenizer := NewTokenizer(`<panel style="dock: north" id='main' disabled>`)
	token, err := tokenizer.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Type != TokenStartTag || token.TagName != "panel" {
		t.Fatalf("expected start tag 'panel', got %+v", token)
	}
	if token.Attributes["style"] != "dock: north" {
		t.Errorf("expected style='dock: north', got '%s'", token.Attributes["style"])
	}
	if token.Attributes["id"] != "main" {
		t.Errorf("expected id='main', got '%s'", token.Attributes["id"])
	}
	if v, ok := token.Attributes["disabled"]; !ok || v != "" {
		t.Errorf("expected bare disabled attribute, got %q %v", v, ok)
	}
}

func TestTokenizer_CompleteSequence(t *testing.T) {
	tokenizer := NewTokenizer("<!-- header -->\n<label>\n  Hello   &amp; bye\n</label>")
	want := []struct {
		typ  TokenType
		name string
		text string
		line int
	}{
		{TokenStartTag, "label", "", 2},
		{TokenText, "", "Hello & bye", 2},
		{TokenEndTag, "label", "", 4},
		{TokenEOF, "", "", 4},
	}
	for i, w := range want {
		token, err := tokenizer.NextToken()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if token.Type != w.typ || token.TagName != w.name || token.Text != w.text || token.Line != w.line {
			t.Errorf("token %d = %+v, want %+v", i, token, w)
		}
	}
}

func TestTokenizer_SelfClosing(t *testing.T) {
	token, err := NewTokenizer(`<image src="a.png"/>`).NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if !token.SelfClosing || token.Attributes["src"] != "a.png" {
		t.Errorf("got %+v", token)
	}
}

func TestTokenizer_Errors(t *testing.T) {
	for _, input := range []string{
		"<label",
		`<label text="open>`,
		"<!-- never closed",
		"< label>",
	} {
		tokenizer := NewTokenizer(input)
		if _, err := tokenizer.NextToken(); err == nil {
			t.Errorf("%q: expected error", input)
		}
	}
}

func TestTokenizer_ReadRawUntil(t *testing.T) {
	tokenizer := NewTokenizer(`<script>if (a < b) {}</SCRIPT><panel>`)
	if _, err := tokenizer.NextToken(); err != nil {
		t.Fatal(err)
	}
	raw, ok := tokenizer.ReadRawUntil("script")
	if !ok || raw != "if (a < b) {}" {
		t.Errorf("raw = %q, %v", raw, ok)
	}
	next, _ := tokenizer.NextToken()
	if next.TagName != "panel" {
		t.Errorf("next token = %+v", next)
	}
}
