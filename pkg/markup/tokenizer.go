package markup

import (
	"fmt"
	gohtml "html"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenText
	TokenEOF
)

type Token struct {
	Type        TokenType
	TagName     string
	Attributes  map[string]string
	Text        string
	SelfClosing bool
	Line        int
}

type Tokenizer struct {
	input string
	pos   int

	// line bookkeeping: line is the line number at linePos.
	line    int
	linePos int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input, line: 1}
}

// lineAt returns the 1-based line of pos. Positions must not go backwards.
func (t *Tokenizer) lineAt(pos int) int {
	t.line += strings.Count(t.input[t.linePos:pos], "\n")
	t.linePos = pos
	return t.line
}

func (t *Tokenizer) NextToken() (Token, error) {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF, Line: t.lineAt(t.pos)}, nil
	}
	if t.input[t.pos] == '<' {
		return t.readTag()
	}
	return t.readText()
}

func (t *Tokenizer) readTag() (Token, error) {
	line := t.lineAt(t.pos)
	t.pos++

	// <!-- comments -->
	if strings.HasPrefix(t.input[t.pos:], "!--") {
		end := strings.Index(t.input[t.pos+3:], "-->")
		if end < 0 {
			return Token{}, fmt.Errorf("line %d: unterminated comment", line)
		}
		t.pos += 3 + end + 3
		return t.NextToken()
	}

	// <?xml ...?> and <!DOCTYPE ...>
	if t.pos < len(t.input) && (t.input[t.pos] == '?' || t.input[t.pos] == '!') {
		if err := t.skipTo('>'); err != nil {
			return Token{}, fmt.Errorf("line %d: %w", line, err)
		}
		t.pos++
		return t.NextToken()
	}

	isEndTag := false
	if t.pos < len(t.input) && t.input[t.pos] == '/' {
		isEndTag = true
		t.pos++
	}
	tagName := t.readTagName()
	if tagName == "" {
		return Token{}, fmt.Errorf("line %d: expected tag name", line)
	}
	if isEndTag {
		if err := t.skipTo('>'); err != nil {
			return Token{}, fmt.Errorf("line %d: %w", line, err)
		}
		t.pos++
		return Token{Type: TokenEndTag, TagName: tagName, Line: line}, nil
	}

	attributes := make(map[string]string)
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			return Token{}, fmt.Errorf("line %d: unexpected EOF in <%s>", line, tagName)
		}
		if t.input[t.pos] == '>' {
			t.pos++
			break
		}
		if t.input[t.pos] == '/' {
			t.pos++
			t.skipWhitespace()
			if t.pos < len(t.input) && t.input[t.pos] == '>' {
				t.pos++
				return Token{Type: TokenStartTag, TagName: tagName, Attributes: attributes, SelfClosing: true, Line: line}, nil
			}
		}
		name, value, err := t.readAttribute()
		if err != nil {
			return Token{}, fmt.Errorf("line %d: <%s>: %w", line, tagName, err)
		}
		attributes[name] = value
	}
	return Token{Type: TokenStartTag, TagName: tagName, Attributes: attributes, Line: line}, nil
}

func (t *Tokenizer) readTagName() string {
	start := t.pos
	for t.pos < len(t.input) && isTagNameChar(t.input[t.pos]) {
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

func (t *Tokenizer) readAttribute() (string, string, error) {
	start := t.pos
	for t.pos < len(t.input) && isAttributeNameChar(t.input[t.pos]) {
		t.pos++
	}
	name := strings.ToLower(t.input[start:t.pos])
	if name == "" {
		return "", "", fmt.Errorf("expected attribute name")
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.input[t.pos] != '=' {
		return name, "", nil
	}
	t.pos++
	t.skipWhitespace()
	value, err := t.readAttributeValue()
	if err != nil {
		return "", "", err
	}
	return name, gohtml.UnescapeString(value), nil
}

func (t *Tokenizer) readAttributeValue() (string, error) {
	if t.pos >= len(t.input) {
		return "", fmt.Errorf("expected attribute value")
	}
	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		start := t.pos
		for t.pos < len(t.input) && t.input[t.pos] != quote {
			t.pos++
		}
		if t.pos >= len(t.input) {
			return "", fmt.Errorf("unterminated attribute value")
		}
		value := t.input[start:t.pos]
		t.pos++
		return value, nil
	}
	start := t.pos
	for t.pos < len(t.input) && !unicode.IsSpace(rune(t.input[t.pos])) && t.input[t.pos] != '>' {
		t.pos++
	}
	return t.input[start:t.pos], nil
}

// readText returns the text up to the next tag with whitespace runs
// collapsed. Whitespace-only runs between tags are dropped.
func (t *Tokenizer) readText() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	raw := t.input[start:t.pos]
	if strings.TrimSpace(raw) == "" {
		return t.NextToken()
	}
	text := strings.Join(strings.Fields(raw), " ")
	return Token{Type: TokenText, Text: gohtml.UnescapeString(text), Line: t.lineAt(start)}, nil
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

func (t *Tokenizer) skipTo(target byte) error {
	for t.pos < len(t.input) && t.input[t.pos] != target {
		t.pos++
	}
	if t.pos >= len(t.input) {
		return fmt.Errorf("expected '%c' but reached EOF", target)
	}
	return nil
}

// ReadRawUntil reads raw content until the closing end tag (e.g. </script>),
// where '<' does not start a new tag. ok is false if the end tag is missing.
func (t *Tokenizer) ReadRawUntil(endTag string) (content string, ok bool) {
	needle := "</" + endTag + ">"
	start := t.pos
	for t.pos+len(needle) <= len(t.input) {
		if strings.EqualFold(t.input[t.pos:t.pos+len(needle)], needle) {
			content = t.input[start:t.pos]
			t.pos += len(needle)
			return content, true
		}
		t.pos++
	}
	t.pos = len(t.input)
	return t.input[start:], false
}

func isTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isAttributeNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == ':' || c == '.'
}
