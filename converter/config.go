package converter

import (
	"fmt"
	"regexp"
	"strings"
)

// SyntaxStyle selects the surface syntax of the emitted view code.
type SyntaxStyle string

const (
	SyntaxOCaml  SyntaxStyle = "ocaml"
	SyntaxReason SyntaxStyle = "reason"
)

// UnknownPolicy controls what happens to attributes without a dedicated constructor.
type UnknownPolicy string

const (
	UnknownGeneric UnknownPolicy = "generic"
	UnknownSkip    UnknownPolicy = "skip"
)

// StyleMode controls how the style attribute is emitted.
type StyleMode string

const (
	// StyleSplit emits one style property per CSS declaration.
	StyleSplit StyleMode = "split"
	// StyleRaw keeps the attribute text as a single generic attribute.
	StyleRaw StyleMode = "raw"
)

const defaultIndentWidth = 2

// EmitOptions controls the layout and dialect of emitted code.
type EmitOptions struct {
	IndentWidth       int           `json:"indentWidth,omitempty" yaml:"indentWidth,omitempty"`
	UseTabs           bool          `json:"useTabs,omitempty" yaml:"useTabs,omitempty"`
	Syntax            SyntaxStyle   `json:"syntax,omitempty" yaml:"syntax,omitempty"`
	UnknownAttributes UnknownPolicy `json:"unknownAttributes,omitempty" yaml:"unknownAttributes,omitempty"`
	StyleMode         StyleMode     `json:"styleMode,omitempty" yaml:"styleMode,omitempty"`
}

func (o EmitOptions) applyDefaults() EmitOptions {
	if o.IndentWidth == 0 {
		o.IndentWidth = defaultIndentWidth
	}
	if o.Syntax == "" {
		o.Syntax = SyntaxOCaml
	}
	if o.UnknownAttributes == "" {
		o.UnknownAttributes = UnknownGeneric
	}
	if o.StyleMode == "" {
		o.StyleMode = StyleSplit
	}
	return o
}

// Validate checks that option values are valid.
func (o EmitOptions) Validate() error {
	// The width is unused when indenting with tabs.
	if !o.UseTabs && o.IndentWidth < 1 {
		return fmt.Errorf("indentWidth must be positive, got %d", o.IndentWidth)
	}
	if o.Syntax != SyntaxOCaml && o.Syntax != SyntaxReason {
		return fmt.Errorf("invalid syntax %q", o.Syntax)
	}
	if o.UnknownAttributes != UnknownGeneric && o.UnknownAttributes != UnknownSkip {
		return fmt.Errorf("invalid unknownAttributes policy %q", o.UnknownAttributes)
	}
	if o.StyleMode != StyleSplit && o.StyleMode != StyleRaw {
		return fmt.Errorf("invalid styleMode %q", o.StyleMode)
	}
	return nil
}

// EditorOptions are the formatting preferences of the editor a selection comes from.
type EditorOptions struct {
	TabSize      int
	InsertSpaces bool
}

// Config holds all converter configuration options.
type Config struct {
	EmitOptions  `yaml:",inline"`
	Whitespace   WhitespaceMode    `json:"whitespace,omitempty" yaml:"whitespace,omitempty"`
	TagMap       map[string]string `json:"tagMap,omitempty" yaml:"tagMap,omitempty"`
	AttributeMap map[string]string `json:"attributeMap,omitempty" yaml:"attributeMap,omitempty"`
	ElementHook  ElementRenderHook `json:"-" yaml:"-"`
}

// WithEditorOptions returns a copy of c indented the way the editor indents.
// A non-positive tab size keeps the configured width.
func (c Config) WithEditorOptions(ed EditorOptions) Config {
	c.UseTabs = !ed.InsertSpaces
	if ed.TabSize > 0 {
		c.IndentWidth = ed.TabSize
	}
	return c
}

func (c Config) applyDefaults() Config {
	c.EmitOptions = c.EmitOptions.applyDefaults()
	if c.Whitespace == "" {
		c.Whitespace = WhitespaceCollapse
	}
	return c
}

// clone returns a deep copy of Config for map-backed fields.
func (c Config) clone() Config {
	cloned := c
	cloned.TagMap = cloneStringMap(c.TagMap)
	cloned.AttributeMap = cloneStringMap(c.AttributeMap)
	return cloned
}

var (
	tagNameRe     = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	constructorRe = regexp.MustCompile(`^([A-Z][A-Za-z0-9_']*\.)*[a-z_][A-Za-z0-9_']*$`)
)

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := c.EmitOptions.Validate(); err != nil {
		return err
	}
	if c.Whitespace != WhitespaceCollapse && c.Whitespace != WhitespacePreserve {
		return fmt.Errorf("invalid whitespace mode %q", c.Whitespace)
	}
	if err := validateConstructorMap("tagMap", c.TagMap); err != nil {
		return err
	}
	if err := validateConstructorMap("attributeMap", c.AttributeMap); err != nil {
		return err
	}
	return nil
}

func validateConstructorMap(field string, m map[string]string) error {
	for from, to := range m {
		if !tagNameRe.MatchString(from) {
			return fmt.Errorf("%s key %q must be a lower-case HTML name", field, from)
		}
		if !constructorRe.MatchString(strings.TrimSpace(to)) {
			return fmt.Errorf("%s value %q for %q is not a valid identifier", field, to, from)
		}
	}
	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
