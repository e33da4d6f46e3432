package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := (Config{}).applyDefaults()

	assert.Equal(t, 2, cfg.IndentWidth)
	assert.False(t, cfg.UseTabs)
	assert.Equal(t, SyntaxOCaml, cfg.Syntax)
	assert.Equal(t, UnknownGeneric, cfg.UnknownAttributes)
	assert.Equal(t, StyleSplit, cfg.StyleMode)
	assert.Equal(t, WhitespaceCollapse, cfg.Whitespace)
}

func TestValidateValid(t *testing.T) {
	cfg := Config{
		EmitOptions: EmitOptions{
			IndentWidth:       4,
			UseTabs:           true,
			Syntax:            SyntaxReason,
			UnknownAttributes: UnknownSkip,
			StyleMode:         StyleRaw,
		},
		Whitespace:   WhitespacePreserve,
		TagMap:       map[string]string{"x-card": "Ui.card"},
		AttributeMap: map[string]string{"aria-label": "ariaLabel"},
	}

	require.NoError(t, cfg.Validate())
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"negative indent", func(c *Config) { c.IndentWidth = -1 }, "indentWidth"},
		{"syntax", func(c *Config) { c.Syntax = "elm" }, "invalid syntax"},
		{"unknown attributes", func(c *Config) { c.UnknownAttributes = "error" }, "unknownAttributes"},
		{"style mode", func(c *Config) { c.StyleMode = "inline" }, "styleMode"},
		{"whitespace", func(c *Config) { c.Whitespace = "trim" }, "whitespace"},
		{"tag map key", func(c *Config) { c.TagMap = map[string]string{"Div": "div"} }, "tagMap key"},
		{"tag map value", func(c *Config) { c.TagMap = map[string]string{"div": "Div"} }, "tagMap value"},
		{"attribute map value", func(c *Config) { c.AttributeMap = map[string]string{"id": "a b"} }, "attributeMap value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := (Config{}).applyDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateIndentWidth(t *testing.T) {
	t.Run("any positive width", func(t *testing.T) {
		cfg := (Config{EmitOptions: EmitOptions{IndentWidth: 40}}).applyDefaults()
		require.NoError(t, cfg.Validate())
	})

	t.Run("width ignored with tabs", func(t *testing.T) {
		cfg := (Config{EmitOptions: EmitOptions{IndentWidth: -1, UseTabs: true}}).applyDefaults()
		require.NoError(t, cfg.Validate())
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Whitespace: "trim"})
	require.Error(t, err)
}

func TestWithEditorOptions(t *testing.T) {
	t.Run("spaces", func(t *testing.T) {
		cfg := Config{}.WithEditorOptions(EditorOptions{TabSize: 4, InsertSpaces: true})
		assert.Equal(t, 4, cfg.IndentWidth)
		assert.False(t, cfg.UseTabs)
	})

	t.Run("tabs", func(t *testing.T) {
		cfg := Config{}.WithEditorOptions(EditorOptions{TabSize: 8, InsertSpaces: false})
		assert.True(t, cfg.UseTabs)

		result, err := newTestConverter(t, cfg).Convert("<p>x</p>")
		require.NoError(t, err)
		assert.Equal(t, "p [] [\n\ttext \"x\"\n]", result.Code)
	})

	t.Run("missing tab size keeps configured width", func(t *testing.T) {
		base := Config{EmitOptions: EmitOptions{IndentWidth: 3}}
		cfg := base.WithEditorOptions(EditorOptions{InsertSpaces: true})
		assert.Equal(t, 3, cfg.IndentWidth)
	})
}

func TestConfigJSONUsesFlatKeys(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"indentWidth":4,"syntax":"reason","whitespace":"preserve"}`), &cfg))

	assert.Equal(t, 4, cfg.IndentWidth)
	assert.Equal(t, SyntaxReason, cfg.Syntax)
	assert.Equal(t, WhitespacePreserve, cfg.Whitespace)
}
