package converter

import "strings"

// WhitespaceMode controls how text whitespace is treated before emitting.
type WhitespaceMode string

const (
	// WhitespaceCollapse collapses runs of whitespace to a single space and
	// drops whitespace-only text that a browser would not render.
	WhitespaceCollapse WhitespaceMode = "collapse"
	// WhitespacePreserve keeps text exactly as written.
	WhitespacePreserve WhitespaceMode = "preserve"
)

// preformatted elements keep their text verbatim even when collapsing.
var preformatted = map[string]bool{
	"pre":      true,
	"textarea": true,
	"script":   true,
	"style":    true,
}

func normalizeWhitespace(nodes []Node, mode WhitespaceMode) []Node {
	if mode == WhitespacePreserve {
		return nodes
	}
	return collapseNodes(nodes)
}

// blockElements lay out on their own line, so whitespace next to them never
// renders.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "body": true,
	"br": true, "caption": true, "col": true, "colgroup": true, "dd": true, "details": true,
	"dialog": true, "div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "head": true, "header": true, "hr": true,
	"html": true, "legend": true, "li": true, "link": true, "main": true, "menu": true,
	"meta": true, "nav": true, "ol": true, "optgroup": true, "option": true, "p": true,
	"pre": true, "script": true, "section": true, "style": true, "summary": true,
	"table": true, "tbody": true, "td": true, "template": true, "tfoot": true, "th": true,
	"thead": true, "title": true, "tr": true, "ul": true,
}

const htmlSpace = " \t\n\r\f"

func collapseNodes(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nodes
	}

	out := make([]Node, 0, len(nodes))
	for i, n := range nodes {
		switch n.Type {
		case TextNode:
			if strings.Trim(n.Text, htmlSpace) == "" {
				// A lone space between inline siblings still separates words.
				if len(out) == 0 || i+1 == len(nodes) || !isInline(out[len(out)-1]) || !isInline(nodes[i+1]) {
					continue
				}
			}
			n.Text = collapseSpaces(n.Text)
		case ElementNode:
			if !preformatted[n.Tag] {
				n.Children = collapseNodes(n.Children)
			}
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isInline(n Node) bool {
	return n.Type == TextNode || !blockElements[n.Tag]
}

func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	inSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inSpace {
				sb.WriteByte(' ')
			}
			inSpace = true
		default:
			sb.WriteRune(r)
			inSpace = false
		}
	}
	return sb.String()
}
