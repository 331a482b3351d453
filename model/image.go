package model

// ImageModel identifies an Imagen image generation model.
type ImageModel string

const (
	// Imagen 4 Series
	Imagen4      ImageModel = "imagen-4.0-generate-001"
	Imagen4Fast  ImageModel = "imagen-4.0-fast-generate-001"
	Imagen4Ultra ImageModel = "imagen-4.0-ultra-generate-001"

	// DefaultImage is the recommended default image model.
	DefaultImage ImageModel = Imagen4
)

// String returns the model identifier string.
func (m ImageModel) String() string { return string(m) }
