package mdconverter

import (
	"bytes"
	"fmt"

	"github.com/rgonek/html2tea/converter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter converts GFM markdown selections to Tea.Html view code.
type Converter struct {
	html   *converter.Converter
	parser goldmark.Markdown
}

// New creates a new Markdown Converter with the given config.
func New(config Config) (*Converter, error) {
	conv, err := converter.New(config.Config)
	if err != nil {
		return nil, err
	}

	var rendererOpts []goldmark.Option
	if config.AllowRawHTML {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	return &Converter{
		html: conv,
		parser: goldmark.New(
			append([]goldmark.Option{goldmark.WithExtensions(extension.GFM)}, rendererOpts...)...,
		),
	}, nil
}

// Convert renders markdown to HTML and converts the HTML to view code.
func (c *Converter) Convert(markdown string) (converter.Result, error) {
	var buf bytes.Buffer
	if err := c.parser.Convert([]byte(markdown), &buf); err != nil {
		return converter.Result{}, fmt.Errorf("failed to render markdown: %w", err)
	}

	return c.html.Convert(buf.String())
}
