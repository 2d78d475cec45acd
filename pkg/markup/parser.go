package markup

import (
	"fmt"
)

type Parser struct {
	tokenizer *Tokenizer
	doc       *Document
	stack     []*Node
}

func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(input),
		doc:       NewDocument(),
	}
}

// Parse builds the element tree. Unlike HTML, end tags must match the open
// element; the markup is meant to be written by hand and errors are reported
// rather than repaired.
func (p *Parser) Parse() (*Document, error) {
	p.stack = []*Node{p.doc.Root}

	for {
		token, err := p.tokenizer.NextToken()
		if err != nil {
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}
		if token.Type == TokenEOF {
			break
		}

		switch token.Type {
		case TokenStartTag:
			if token.TagName == "script" || token.TagName == "style" {
				if err := p.readRaw(token); err != nil {
					return nil, err
				}
				continue
			}

			node := &Node{
				Type:       ElementNode,
				TagName:    token.TagName,
				Attributes: token.Attributes,
				Line:       token.Line,
			}
			p.currentParent().AddChild(node)
			if !token.SelfClosing && !isVoidElement(token.TagName) {
				p.stack = append(p.stack, node)
			}

		case TokenText:
			p.currentParent().AppendText(token.Text, token.Line)

		case TokenEndTag:
			if isVoidElement(token.TagName) {
				continue
			}
			open := p.currentParent()
			if len(p.stack) == 1 || open.TagName != token.TagName {
				return nil, fmt.Errorf("line %d: unexpected </%s>", token.Line, token.TagName)
			}
			p.stack = p.stack[:len(p.stack)-1]
		}
	}

	if len(p.stack) > 1 {
		open := p.currentParent()
		return nil, fmt.Errorf("line %d: <%s> is never closed", open.Line, open.TagName)
	}
	return p.doc, nil
}

func (p *Parser) readRaw(token Token) error {
	if token.SelfClosing {
		return nil
	}
	content, ok := p.tokenizer.ReadRawUntil(token.TagName)
	if !ok {
		return fmt.Errorf("line %d: <%s> is never closed", token.Line, token.TagName)
	}
	if token.TagName == "script" {
		p.doc.Scripts = append(p.doc.Scripts, content)
	} else {
		p.doc.Stylesheets = append(p.doc.Stylesheets, content)
	}
	return nil
}

func (p *Parser) currentParent() *Node {
	return p.stack[len(p.stack)-1]
}

func isVoidElement(tag string) bool {
	return tag == "br" || tag == "image"
}

// ParseDocument parses markup into a Document.
func ParseDocument(input string) (*Document, error) {
	return NewParser(input).Parse()
}
