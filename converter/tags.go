package converter

import "strings"

// elementConstructors maps HTML tags to Tea.Html constructors. Names that
// clash with an OCaml keyword or a Stdlib value carry a trailing prime.
var elementConstructors = map[string]string{
	"a": "a", "abbr": "abbr", "address": "address", "area": "area", "article": "article",
	"aside": "aside", "audio": "audio", "b": "b", "bdi": "bdi", "bdo": "bdo",
	"blockquote": "blockquote", "br": "br", "button": "button", "canvas": "canvas",
	"caption": "caption", "cite": "cite", "code": "code", "col": "col", "colgroup": "colgroup",
	"datalist": "datalist", "dd": "dd", "del": "del", "details": "details", "dfn": "dfn",
	"div": "div", "dl": "dl", "dt": "dt", "em": "em", "embed": "embed", "fieldset": "fieldset",
	"figcaption": "figcaption", "figure": "figure", "footer": "footer", "form": "form",
	"h1": "h1", "h2": "h2", "h3": "h3", "h4": "h4", "h5": "h5", "h6": "h6",
	"header": "header", "hr": "hr", "i": "i", "iframe": "iframe", "img": "img",
	"input": "input'", "ins": "ins", "kbd": "kbd", "label": "label", "legend": "legend",
	"li": "li", "main": "main", "mark": "mark", "menu": "menu", "meter": "meter", "nav": "nav",
	"object": "object'", "ol": "ol", "optgroup": "optgroup", "option": "option'", "output": "output'",
	"p": "p", "param": "param", "pre": "pre", "progress": "progress", "q": "q", "rp": "rp",
	"rt": "rt", "ruby": "ruby", "s": "s", "samp": "samp", "section": "section", "select": "select",
	"small": "small", "source": "source", "span": "span", "strong": "strong", "sub": "sub",
	"summary": "summary", "sup": "sup", "table": "table", "tbody": "tbody", "td": "td",
	"textarea": "textarea", "tfoot": "tfoot", "th": "th", "thead": "thead", "time": "time",
	"tr": "tr", "track": "track", "u": "u", "ul": "ul", "var": "var", "video": "video", "wbr": "wbr",
}

type attrKind int

const (
	attrString attrKind = iota
	attrBool
)

type attrConstructor struct {
	name string
	kind attrKind
}

// attributeConstructors maps HTML attributes to Tea.Html properties.
var attributeConstructors = map[string]attrConstructor{
	"id":          {"id", attrString},
	"class":       {"class'", attrString},
	"href":        {"href", attrString},
	"src":         {"src", attrString},
	"alt":         {"alt", attrString},
	"title":       {"title", attrString},
	"name":        {"name", attrString},
	"value":       {"value", attrString},
	"placeholder": {"placeholder", attrString},
	"target":      {"target", attrString},
	"action":      {"action", attrString},
	"type":        {"type'", attrString},
	"for":         {"for'", attrString},
	"method":      {"method'", attrString},
	"checked":     {"checked", attrBool},
	"disabled":    {"disabled", attrBool},
	"hidden":      {"hidden", attrBool},
	"autofocus":   {"autofocus", attrBool},
	"selected":    {"selected", attrBool},
}

const (
	textConstructor      = "text"
	nodeConstructor      = "node"
	styleConstructor     = "style"
	attributeConstructor = "attribute"
)

// lookupElement resolves the constructor for tag, giving overrides priority.
func lookupElement(tag string, overrides map[string]string) (string, bool) {
	if ctor, ok := overrides[tag]; ok {
		return strings.TrimSpace(ctor), true
	}
	ctor, ok := elementConstructors[tag]
	return ctor, ok
}

func lookupAttribute(key string, overrides map[string]string) (attrConstructor, bool) {
	if ctor, ok := overrides[key]; ok {
		kind := attrString
		if known, ok := attributeConstructors[key]; ok {
			kind = known.kind
		}
		return attrConstructor{name: strings.TrimSpace(ctor), kind: kind}, true
	}
	ctor, ok := attributeConstructors[key]
	return ctor, ok
}

func isEventAttribute(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}
