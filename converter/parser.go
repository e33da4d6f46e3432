package converter

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag never has children or a closing tag.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// Parse parses an HTML fragment into a list of nodes. Malformed input is
// reported as a *ParseError; nothing is repaired.
func Parse(input string) ([]Node, error) {
	nodes, _, err := parseFragment(input)
	return nodes, err
}

type parser struct {
	src       string
	tokenizer *html.Tokenizer
	lines     *lineIndex
	offset    int
	root      []Node
	// oe is the stack of open elements.
	oe       []*Node
	warnings []Warning
}

func parseFragment(input string) ([]Node, []Warning, error) {
	p := &parser{
		src:       input,
		tokenizer: html.NewTokenizer(strings.NewReader(input)),
		lines:     newLineIndex(input),
	}
	if err := p.parse(); err != nil {
		return nil, nil, err
	}
	return p.root, p.warnings, nil
}

func (p *parser) parse() error {
	for {
		tt := p.tokenizer.Next()
		if tt == html.ErrorToken {
			if err := p.tokenizer.Err(); err != io.EOF {
				return fmt.Errorf("failed to tokenize HTML: %w", err)
			}
			return p.finish()
		}

		raw := string(p.tokenizer.Raw())
		start := p.offset
		p.offset += len(raw)
		tok := p.tokenizer.Token()

		var err error
		switch tt {
		case html.TextToken:
			p.appendChild(Node{Type: TextNode, Text: tok.Data, Pos: p.lines.position(start)})
		case html.StartTagToken:
			err = p.startTag(tok, raw, start, false)
		case html.SelfClosingTagToken:
			err = p.startTag(tok, raw, start, true)
		case html.EndTagToken:
			err = p.endTag(tok, start)
		case html.CommentToken:
			p.warn(WarningDroppedComment, "", start, "HTML comment dropped")
		case html.DoctypeToken:
			p.warn(WarningDroppedDoctype, "", start, fmt.Sprintf("doctype %q dropped", tok.Data))
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) startTag(tok html.Token, raw string, start int, selfClosing bool) error {
	tagPos := p.lines.position(start)

	spans, scanErr := scanAttributes(raw)
	if scanErr != nil {
		return newParseError(ErrMalformedAttribute, tok.Data, p.lines.position(start+scanErr.at),
			"malformed attribute %q in <%s>: %s", scanErr.name, tok.Data, scanErr.message)
	}

	node := &Node{Type: ElementNode, Tag: tok.Data, Pos: tagPos}
	if len(tok.Attr) > 0 {
		node.Attrs = make([]Attribute, 0, len(tok.Attr))
	}
	for i, a := range tok.Attr {
		attrPos := tagPos
		if i < len(spans) {
			attrPos = p.lines.position(start + spans[i].nameStart)
		}
		node.Attrs = append(node.Attrs, Attribute{Key: a.Key, Val: a.Val, Pos: attrPos})
	}

	if selfClosing || voidElements[tok.Data] {
		p.appendChild(*node)
		return nil
	}

	p.oe = append(p.oe, node)
	return nil
}

func (p *parser) endTag(tok html.Token, start int) error {
	pos := p.lines.position(start)
	if voidElements[tok.Data] {
		return newParseError(ErrUnexpectedClosingTag, tok.Data, pos,
			"unexpected closing tag </%s>: <%s> is a void element", tok.Data, tok.Data)
	}

	match := -1
	for i := len(p.oe) - 1; i >= 0; i-- {
		if p.oe[i].Tag == tok.Data {
			match = i
			break
		}
	}
	if match == -1 {
		return newParseError(ErrUnexpectedClosingTag, tok.Data, pos,
			"unexpected closing tag </%s> has no matching opening tag", tok.Data)
	}

	if top := p.oe[len(p.oe)-1]; match != len(p.oe)-1 {
		return newParseError(ErrUnclosedTag, top.Tag, top.Pos,
			"unclosed tag <%s> (found </%s> at line %d, column %d)", top.Tag, tok.Data, pos.Line, pos.Column)
	}

	p.popElement()
	return nil
}

func (p *parser) finish() error {
	if p.offset < len(p.src) {
		return p.unterminated(p.src[p.offset:], p.offset)
	}
	if len(p.oe) > 0 {
		top := p.oe[len(p.oe)-1]
		return newParseError(ErrUnclosedTag, top.Tag, top.Pos, "unclosed tag <%s>", top.Tag)
	}
	return nil
}

// unterminated explains why the tokenizer stopped before the end of input.
// The only way that happens is a tag left open at EOF.
func (p *parser) unterminated(rest string, start int) error {
	tag := rawTagName(rest)
	if !strings.HasPrefix(rest, "</") {
		if _, scanErr := scanAttributes(rest); scanErr != nil {
			return newParseError(ErrMalformedAttribute, tag, p.lines.position(start+scanErr.at),
				"malformed attribute %q in <%s>: %s", scanErr.name, tag, scanErr.message)
		}
	}
	return newParseError(ErrUnterminatedTag, tag, p.lines.position(start),
		"unterminated tag %q: input ends before '>'", strings.TrimSpace(firstLine(rest)))
}

func (p *parser) popElement() {
	n := p.oe[len(p.oe)-1]
	p.oe = p.oe[:len(p.oe)-1]
	p.appendChild(*n)
}

// appendChild adds n to the innermost open element, merging adjacent text.
func (p *parser) appendChild(n Node) {
	siblings := &p.root
	if len(p.oe) > 0 {
		siblings = &p.oe[len(p.oe)-1].Children
	}
	if n.Type == TextNode && len(*siblings) > 0 {
		if last := &(*siblings)[len(*siblings)-1]; last.Type == TextNode {
			last.Text += n.Text
			return
		}
	}
	*siblings = append(*siblings, n)
}

func (p *parser) warn(t WarningType, tag string, offset int, message string) {
	p.warnings = append(p.warnings, Warning{
		Type:    t,
		Tag:     tag,
		Message: message,
		Pos:     p.lines.position(offset),
	})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
