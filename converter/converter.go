package converter

// Converter converts HTML fragments to Tea.Html view code.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	config Config
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
	}, nil
}

// Config returns a copy of the converter's effective configuration.
func (c *Converter) Config() Config {
	return c.config.clone()
}

// Convert parses input and emits view code for it. A malformed fragment is
// reported as a *ParseError and no code is produced.
func (c *Converter) Convert(input string) (Result, error) {
	nodes, warnings, err := parseFragment(input)
	if err != nil {
		return Result{}, err
	}

	nodes = normalizeWhitespace(nodes, c.config.Whitespace)

	e := newEmitter(c.config)
	code := e.emit(nodes)

	return Result{
		Code:     code,
		Warnings: append(warnings, e.warnings...),
	}, nil
}

// Convert is a shortcut that converts input with default settings and the
// given emit options, discarding warnings.
func Convert(input string, opts EmitOptions) (string, error) {
	conv, err := New(Config{EmitOptions: opts})
	if err != nil {
		return "", err
	}

	result, err := conv.Convert(input)
	if err != nil {
		return "", err
	}
	return result.Code, nil
}
