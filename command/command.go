// Package command implements the html-to-view editor command without
// depending on any particular editor. A host passes in the active selection
// and formatting preferences and writes the returned text back over the
// selection, or shows UserMessage(err) when conversion does not proceed.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgonek/html2tea/converter"
)

var (
	// ErrNoEditor means no editor was active when the command ran.
	ErrNoEditor = errors.New("no active editor")
	// ErrEmptySelection means the selection held nothing to convert.
	ErrEmptySelection = errors.New("nothing selected")
)

// Editor is the state of the editor the command runs against.
type Editor struct {
	Selection    string
	TabSize      int
	InsertSpaces bool
}

// Converter converts a selection to view code.
type Converter interface {
	Convert(input string) (converter.Result, error)
}

// ConverterFactory builds a Converter for the editor's indentation settings.
type ConverterFactory func(ed converter.EditorOptions) (Converter, error)

// ConversionError wraps a failure to convert the selection. The selection
// must be left untouched.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return "convert selection: " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// HTMLConverter returns a factory for HTML converters based on cfg.
func HTMLConverter(cfg converter.Config) ConverterFactory {
	return func(ed converter.EditorOptions) (Converter, error) {
		return converter.New(cfg.WithEditorOptions(ed))
	}
}

// HTMLToView converts the editor's selection and returns the replacement
// text with its warnings. An empty selection is rejected before any parsing.
func HTMLToView(ed *Editor, newConverter ConverterFactory) (converter.Result, error) {
	if ed == nil {
		return converter.Result{}, ErrNoEditor
	}
	if strings.TrimSpace(ed.Selection) == "" {
		return converter.Result{}, ErrEmptySelection
	}

	conv, err := newConverter(converter.EditorOptions{TabSize: ed.TabSize, InsertSpaces: ed.InsertSpaces})
	if err != nil {
		return converter.Result{}, fmt.Errorf("failed to configure converter: %w", err)
	}

	result, err := conv.Convert(ed.Selection)
	if err != nil {
		return converter.Result{}, &ConversionError{Err: err}
	}
	return result, nil
}

// UserMessage returns the text a host should show for err.
func UserMessage(err error) string {
	var convErr *ConversionError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoEditor):
		return "Please open/activate at least one tab/window 😁"
	case errors.Is(err, ErrEmptySelection):
		return "Please feed me with some selected HTML 😁"
	case errors.As(err, &convErr):
		return "The selected HTML could not be converted: " + convErr.Err.Error()
	default:
		return "html-to-view failed: " + err.Error()
	}
}
