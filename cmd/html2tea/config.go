package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgonek/html2tea/converter"
	"github.com/rgonek/html2tea/mdconverter"
	"gopkg.in/yaml.v3"
)

const (
	presetOCaml    = "ocaml"
	presetReason   = "reason"
	presetVerbatim = "verbatim"
)

func presetConfig(preset string) (mdconverter.Config, error) {
	var cfg mdconverter.Config
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetOCaml:
	case presetReason:
		cfg.Syntax = converter.SyntaxReason
	case presetVerbatim:
		cfg.Whitespace = converter.WhitespacePreserve
		cfg.StyleMode = converter.StyleRaw
		cfg.UnknownAttributes = converter.UnknownGeneric
	default:
		return mdconverter.Config{}, fmt.Errorf("unknown preset %q (allowed: ocaml, reason, verbatim)", preset)
	}
	return cfg, nil
}

// loadConfigFile overlays the YAML file at path onto cfg. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func loadConfigFile(path string, cfg mdconverter.Config) (mdconverter.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mdconverter.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return mdconverter.Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

type options struct {
	preset       string
	configPath   string
	indent       int
	tabs         bool
	syntax       string
	whitespace   string
	unknownAttrs string
	style        string
	markdown     bool
	allowRawHTML bool
	ast          bool
	verbose      bool
}

// resolveConfig layers the preset, the config file and explicitly set flags,
// in that order.
func resolveConfig(opts options, changed func(name string) bool) (mdconverter.Config, error) {
	cfg, err := presetConfig(opts.preset)
	if err != nil {
		return mdconverter.Config{}, err
	}

	if opts.configPath != "" {
		if cfg, err = loadConfigFile(opts.configPath, cfg); err != nil {
			return mdconverter.Config{}, err
		}
	}

	if changed("indent") {
		cfg.IndentWidth = opts.indent
	}
	if changed("tabs") {
		cfg.UseTabs = opts.tabs
	}
	if changed("syntax") {
		cfg.Syntax = converter.SyntaxStyle(opts.syntax)
	}
	if changed("whitespace") {
		cfg.Whitespace = converter.WhitespaceMode(opts.whitespace)
	}
	if changed("unknown-attrs") {
		cfg.UnknownAttributes = converter.UnknownPolicy(opts.unknownAttrs)
	}
	if changed("style") {
		cfg.StyleMode = converter.StyleMode(opts.style)
	}
	if changed("allow-raw-html") {
		cfg.AllowRawHTML = opts.allowRawHTML
	}

	return cfg, nil
}
