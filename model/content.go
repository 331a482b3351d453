package model

// ContentModel identifies a generative content model served through the
// Gemini API.
type ContentModel string

const (
	// Gemini 2.5 Series
	ContentGemini25Pro       ContentModel = "gemini-2.5-pro"
	ContentGemini25Flash     ContentModel = "gemini-2.5-flash"
	ContentGemini25FlashLite ContentModel = "gemini-2.5-flash-lite"

	// DefaultContent is the recommended default content model.
	DefaultContent ContentModel = ContentGemini25Flash
)

// String returns the model identifier string.
func (m ContentModel) String() string { return string(m) }
