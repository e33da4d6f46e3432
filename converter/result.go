package converter

// Result holds the output of a conversion.
type Result struct {
	Code     string    `json:"code"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownTag       WarningType = "unknown_tag"
	WarningUnknownAttribute WarningType = "unknown_attribute"
	WarningDroppedAttribute WarningType = "dropped_attribute"
	WarningDroppedComment   WarningType = "dropped_comment"
	WarningDroppedDoctype   WarningType = "dropped_doctype"
	WarningInvalidHook      WarningType = "invalid_hook_output"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type    WarningType `json:"type"`
	Tag     string      `json:"tag,omitempty"`
	Message string      `json:"message"`
	Pos     Position    `json:"pos"`
}
