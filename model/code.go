package model

// CodeModel identifies a code-focused generative model served through
// Vertex AI. The identifiers overlap with the text family; the distinct
// type keeps code requests routed through the code backend.
type CodeModel string

const (
	// Gemini 2.5 Pro is the recommended model for code understanding.
	CodeGemini25Pro   CodeModel = "gemini-2.5-pro"
	CodeGemini25Flash CodeModel = "gemini-2.5-flash"

	// DefaultCode is the recommended default code model.
	DefaultCode CodeModel = CodeGemini25Pro
)

// String returns the model identifier string.
func (m CodeModel) String() string { return string(m) }
