package converter

// ElementRenderHook can replace the constructor emitted for an element, for
// example to route custom elements to a project's own view helpers.
type ElementRenderHook func(in ElementRenderInput) ElementRenderOutput

// ElementRenderInput describes an element about to be emitted.
type ElementRenderInput struct {
	Tag   string
	Attrs []Attribute
	// Constructor is the built-in constructor, empty for unknown tags.
	Constructor string
	Pos         Position
}

// ElementRenderOutput contains the hook-provided constructor.
type ElementRenderOutput struct {
	Constructor string
	Handled     bool
}
