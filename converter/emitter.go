package converter

import (
	"fmt"
	"strings"
)

// Emit renders nodes as view code. It never fails: tags without a known
// constructor are emitted as generic nodes. Zero option values fall back to
// their defaults; invalid values are clamped or replaced with defaults.
func Emit(nodes []Node, opts EmitOptions) string {
	e := newEmitter(Config{EmitOptions: opts})
	return e.emit(nodes)
}

type emitter struct {
	config   Config
	dialect  dialect
	indent   string
	warnings []Warning
}

func newEmitter(cfg Config) *emitter {
	opts := sanitizeEmitOptions(cfg.EmitOptions.applyDefaults())
	cfg.EmitOptions = opts

	indent := strings.Repeat(" ", opts.IndentWidth)
	if opts.UseTabs {
		indent = "\t"
	}

	return &emitter{
		config:  cfg,
		dialect: dialectFor(opts.Syntax),
		indent:  indent,
	}
}

// sanitizeEmitOptions keeps Emit total for options that were never validated.
func sanitizeEmitOptions(o EmitOptions) EmitOptions {
	defaults := EmitOptions{}.applyDefaults()
	if o.IndentWidth < 1 {
		o.IndentWidth = defaults.IndentWidth
	}
	if o.Syntax != SyntaxOCaml && o.Syntax != SyntaxReason {
		o.Syntax = defaults.Syntax
	}
	if o.UnknownAttributes != UnknownGeneric && o.UnknownAttributes != UnknownSkip {
		o.UnknownAttributes = defaults.UnknownAttributes
	}
	if o.StyleMode != StyleSplit && o.StyleMode != StyleRaw {
		o.StyleMode = defaults.StyleMode
	}
	return o
}

func (e *emitter) emit(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, e.node(n, 0))
	}
	return strings.Join(parts, e.dialect.separator()+"\n")
}

// node renders n starting at the indentation of depth, without a trailing newline.
func (e *emitter) node(n Node, depth int) string {
	prefix := strings.Repeat(e.indent, depth)

	if n.Type == TextNode {
		return prefix + e.dialect.call(textConstructor, stringLiteral(n.Text))
	}

	fn, args := e.constructor(n)
	args = append(args, e.dialect.list(e.attributes(n)))

	if len(n.Children) == 0 {
		args = append(args, e.dialect.list(nil))
		return prefix + e.dialect.call(fn, args...)
	}

	children := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, e.node(child, depth+1))
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(e.dialect.open(fn, args...))
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(children, e.dialect.separator()+"\n"))
	sb.WriteByte('\n')
	sb.WriteString(prefix)
	sb.WriteString(e.dialect.close())
	return sb.String()
}

// constructor returns the function and leading arguments for an element.
func (e *emitter) constructor(n Node) (string, []string) {
	ctor, known := lookupElement(n.Tag, e.config.TagMap)

	if e.config.ElementHook != nil {
		out := e.config.ElementHook(ElementRenderInput{
			Tag:         n.Tag,
			Attrs:       n.Attrs,
			Constructor: ctor,
			Pos:         n.Pos,
		})
		if out.Handled {
			if hooked := strings.TrimSpace(out.Constructor); constructorRe.MatchString(hooked) {
				return hooked, nil
			}
			e.addWarning(WarningInvalidHook, n.Tag, n.Pos,
				fmt.Sprintf("element hook returned invalid constructor %q; using built-in rendering", out.Constructor))
		}
	}

	if known {
		return ctor, nil
	}

	e.addWarning(WarningUnknownTag, n.Tag, n.Pos,
		fmt.Sprintf("no constructor for <%s>; emitted as generic node", n.Tag))
	return nodeConstructor, []string{stringLiteral(n.Tag)}
}

func (e *emitter) attributes(n Node) []string {
	var out []string
	for _, a := range n.Attrs {
		if ctor, ok := lookupAttribute(a.Key, e.config.AttributeMap); ok {
			switch ctor.kind {
			case attrBool:
				out = append(out, e.dialect.call(ctor.name, "true"))
			default:
				out = append(out, e.dialect.call(ctor.name, stringLiteral(a.Val)))
			}
			continue
		}

		if a.Key == "style" && e.config.StyleMode == StyleSplit {
			if decls, ok := splitStyle(a.Val); ok {
				for _, d := range decls {
					out = append(out, e.dialect.call(styleConstructor, stringLiteral(d[0]), stringLiteral(d[1])))
				}
				continue
			}
		}

		if e.config.UnknownAttributes == UnknownSkip {
			e.addWarning(WarningDroppedAttribute, n.Tag, a.Pos,
				fmt.Sprintf("attribute %q of <%s> has no constructor; dropped", a.Key, n.Tag))
			continue
		}
		if isEventAttribute(a.Key) {
			e.addWarning(WarningUnknownAttribute, n.Tag, a.Pos,
				fmt.Sprintf("event handler %q of <%s> emitted as a plain attribute", a.Key, n.Tag))
		}
		out = append(out, e.dialect.call(attributeConstructor, stringLiteral(""), stringLiteral(a.Key), stringLiteral(a.Val)))
	}
	return out
}

// splitStyle splits an inline style into name/value declarations. It reports
// false for an empty style, for quoted or escaped text, and for any
// declaration that lacks a name or a value or has unbalanced parentheses.
func splitStyle(style string) ([][2]string, bool) {
	if strings.ContainsAny(style, `"'\`) {
		return nil, false
	}

	var decls [][2]string
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, ":")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" || value == "" || strings.Count(value, "(") != strings.Count(value, ")") {
			return nil, false
		}
		decls = append(decls, [2]string{name, value})
	}
	return decls, len(decls) > 0
}

func (e *emitter) addWarning(warnType WarningType, tag string, pos Position, message string) {
	e.warnings = append(e.warnings, Warning{
		Type:    warnType,
		Tag:     tag,
		Message: message,
		Pos:     pos,
	})
}
