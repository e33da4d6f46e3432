package converter

// attrSpan is the location of one attribute inside a raw start tag.
type attrSpan struct {
	nameStart int // relative to the start of the tag
}

// attrScanError reports malformed attribute syntax found by scanAttributes.
type attrScanError struct {
	at      int // relative to the start of the tag
	name    string
	message string
}

// scanAttributes walks a raw start tag the same way the x/net tokenizer does
// and returns the name position of every attribute it would keep. Syntax the
// tokenizer silently tolerates but HTML authors almost never mean (a stray
// quote or '=' where a name should start, a quote that never closes) is
// reported as an error.
func scanAttributes(raw string) ([]attrSpan, *attrScanError) {
	var spans []attrSpan

	pos := 0
	if pos < len(raw) && raw[pos] == '<' {
		pos++
	}
	for pos < len(raw) && !isAttrSpace(raw[pos]) && raw[pos] != '>' && raw[pos] != '/' {
		pos++
	}

	for pos < len(raw) {
		for pos < len(raw) && isAttrSpace(raw[pos]) {
			pos++
		}
		if pos >= len(raw) || raw[pos] == '>' {
			break
		}

		nameStart := pos
		switch raw[pos] {
		case '"', '\'', '<', '=':
			end := pos + 1
			for end < len(raw) && !isAttrSpace(raw[end]) && raw[end] != '>' {
				end++
			}
			return nil, &attrScanError{
				at:      nameStart,
				name:    raw[nameStart:end],
				message: "attribute name cannot start with " + quoteByte(raw[pos]),
			}
		}
		for pos < len(raw) && !isAttrSpace(raw[pos]) && raw[pos] != '/' && raw[pos] != '>' && raw[pos] != '=' {
			pos++
		}
		nameEnd := pos
		name := raw[nameStart:nameEnd]

		for pos < len(raw) && isAttrSpace(raw[pos]) {
			pos++
		}
		if pos < len(raw) && raw[pos] == '/' {
			pos++
		} else if pos < len(raw) && raw[pos] == '=' {
			pos++
			for pos < len(raw) && isAttrSpace(raw[pos]) {
				pos++
			}
			if pos < len(raw) && (raw[pos] == '"' || raw[pos] == '\'') {
				quote := raw[pos]
				quoteAt := pos
				pos++
				for pos < len(raw) && raw[pos] != quote {
					pos++
				}
				if pos >= len(raw) {
					return nil, &attrScanError{
						at:      quoteAt,
						name:    name,
						message: "unterminated " + quoteByte(quote) + " in value of attribute " + `"` + name + `"`,
					}
				}
				pos++
			} else {
				for pos < len(raw) && !isAttrSpace(raw[pos]) && raw[pos] != '>' {
					pos++
				}
			}
		}

		if nameEnd > nameStart {
			spans = append(spans, attrSpan{nameStart: nameStart})
		}
	}

	return spans, nil
}

// rawTagName extracts the lower-cased tag name from a raw start or end tag.
func rawTagName(raw string) string {
	pos := 0
	if pos < len(raw) && raw[pos] == '<' {
		pos++
	}
	if pos < len(raw) && raw[pos] == '/' {
		pos++
	}
	start := pos
	for pos < len(raw) && !isAttrSpace(raw[pos]) && raw[pos] != '>' && raw[pos] != '/' {
		pos++
	}
	return toLowerASCII(raw[start:pos])
}

func isAttrSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func quoteByte(b byte) string {
	switch b {
	case '"':
		return `'"'`
	default:
		return `"` + string(b) + `"`
	}
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
