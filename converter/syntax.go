package converter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// dialect renders calls and lists in one surface syntax.
type dialect interface {
	// call renders fn applied to args.
	call(fn string, args ...string) string
	// list renders a one-line list literal.
	list(items []string) string
	// open renders the first line of a call whose last argument is a
	// multi-line list, and close renders its final line.
	open(fn string, args ...string) string
	close() string
	separator() string
}

func dialectFor(s SyntaxStyle) dialect {
	if s == SyntaxReason {
		return reasonDialect{}
	}
	return ocamlDialect{}
}

type ocamlDialect struct{}

func (ocamlDialect) call(fn string, args ...string) string {
	if len(args) == 0 {
		return fn
	}
	return fn + " " + strings.Join(args, " ")
}

func (ocamlDialect) list(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "[ " + strings.Join(items, "; ") + " ]"
}

func (d ocamlDialect) open(fn string, args ...string) string {
	return d.call(fn, withListOpen(args)...)
}

func (ocamlDialect) close() string     { return "]" }
func (ocamlDialect) separator() string { return ";" }

type reasonDialect struct{}

func (reasonDialect) call(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

func (reasonDialect) list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func (reasonDialect) open(fn string, args ...string) string {
	return fn + "(" + strings.Join(withListOpen(args), ", ")
}

func (reasonDialect) close() string     { return "])" }
func (reasonDialect) separator() string { return "," }

func withListOpen(args []string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, args...)
	return append(out, "[")
}

// stringLiteral quotes s for either dialect. ASCII text becomes an ordinary
// string literal. Anything else uses the {js|...|js} form, which BuckleScript
// compiles to a Unicode JS string instead of a byte sequence.
func stringLiteral(s string) string {
	js := !isASCII(s)

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	if js {
		sb.WriteString("{js|")
	} else {
		sb.WriteByte('"')
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && !js:
			sb.WriteString(`\"`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\b':
			sb.WriteString(`\b`)
		case js && c == '|' && strings.HasPrefix(s[i:], "|js}"):
			sb.WriteString(`\u007c`)
		case c < 0x20 || c == 0x7f:
			if js {
				fmt.Fprintf(&sb, `\u%04x`, c)
			} else {
				d := strconv.Itoa(int(c))
				sb.WriteString(`\` + strings.Repeat("0", 3-len(d)) + d)
			}
		default:
			sb.WriteByte(c)
		}
	}
	if js {
		sb.WriteString("|js}")
	} else {
		sb.WriteByte('"')
	}
	return sb.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
