package mdconverter

import "github.com/rgonek/html2tea/converter"

// Config holds Markdown converter configuration.
type Config struct {
	converter.Config `yaml:",inline"`
	// AllowRawHTML passes HTML embedded in the Markdown through to the view
	// code. When false goldmark replaces it with a comment, which is dropped.
	AllowRawHTML bool `json:"allowRawHTML,omitempty" yaml:"allowRawHTML,omitempty"`
}
