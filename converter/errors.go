package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnclosedTag is returned when an opening tag is never closed.
	ErrUnclosedTag = errors.New("unclosed tag")
	// ErrUnexpectedClosingTag is returned for a closing tag with no matching opener.
	ErrUnexpectedClosingTag = errors.New("unexpected closing tag")
	// ErrMalformedAttribute is returned for broken attribute syntax, such as an unterminated quote.
	ErrMalformedAttribute = errors.New("malformed attribute")
	// ErrUnterminatedTag is returned when the input ends inside a tag.
	ErrUnterminatedTag = errors.New("unterminated tag")
)

// ParseError describes why an HTML fragment could not be parsed.
type ParseError struct {
	Kind    error
	Tag     string
	Pos     Position
	Message string
}

func newParseError(kind error, tag string, pos Position, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Tag:     tag,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
