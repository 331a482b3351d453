package model

// TextModel identifies a text generation model served through Vertex AI.
type TextModel string

const (
	// Gemini 3.0 (Latest - November 2025)
	TextGemini3Pro TextModel = "gemini-3.0-pro"

	// Gemini 2.5 Series
	TextGemini25Pro   TextModel = "gemini-2.5-pro"
	TextGemini25Flash TextModel = "gemini-2.5-flash"

	// DefaultText is the recommended default text model.
	DefaultText TextModel = TextGemini25Flash
)

// String returns the model identifier string.
func (m TextModel) String() string { return string(m) }
