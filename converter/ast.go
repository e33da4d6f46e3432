package converter

// NodeType distinguishes element nodes from text nodes.
type NodeType string

const (
	ElementNode NodeType = "element"
	TextNode    NodeType = "text"
)

// Position locates a token in the input. Offset is a 0-based byte offset,
// Line and Column are 1-based and Column counts runes.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Node is a parsed HTML node, independent of the syntax it is emitted in.
type Node struct {
	Type     NodeType    `json:"type"`
	Tag      string      `json:"tag,omitempty"`
	Attrs    []Attribute `json:"attrs,omitempty"`
	Children []Node      `json:"children,omitempty"`
	Text     string      `json:"text,omitempty"`
	Pos      Position    `json:"pos"`
}

// Attribute is a single name/value pair of an element, in source order.
type Attribute struct {
	Key string   `json:"key"`
	Val string   `json:"val"`
	Pos Position `json:"pos"`
}

// Attr returns the value of the first attribute named key.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Element builds an element node. Used mostly by tests and hooks.
func Element(tag string, attrs []Attribute, children ...Node) Node {
	return Node{Type: ElementNode, Tag: tag, Attrs: attrs, Children: children}
}

// Text builds a text node.
func Text(s string) Node {
	return Node{Type: TextNode, Text: s}
}
