package aisprint

import (
	"context"

	"github.com/google/uuid"
)

// BackendKind identifies a backend variant. The set is closed: one kind per
// model family plus the Drive lister.
type BackendKind string

// String returns the backend identifier.
func (k BackendKind) String() string { return string(k) }

// Supported backends.
const (
	BackendText    BackendKind = "text"    // Vertex AI text generation
	BackendContent BackendKind = "content" // Gemini API generative content
	BackendImage   BackendKind = "image"   // Imagen image generation
	BackendCode    BackendKind = "code"    // code-focused models on Vertex AI
	BackendDrive   BackendKind = "drive"   // Google Drive file listing
)

// GenerationRequest is the uniform request passed to a generative backend.
type GenerationRequest struct {
	// Prompt is the full text sent to the model. Instruction templates are
	// applied before the request reaches a backend.
	Prompt string
	// Options carries the caller-tunable generation parameters. They are
	// forwarded verbatim; validation happens before dispatch.
	Options Options
}

// GenerationResponse is the uniform response returned by a generative
// backend. Text backends populate Text; the image backend populates
// ImageData and ImageMIMEType.
type GenerationResponse struct {
	Text          string
	ImageData     []byte
	ImageMIMEType string
	Model         string
	Usage         Usage
}

// Usage contains token usage information for a request. Image generation
// does not report token counts.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// Generator is the capability interface implemented by every generative
// backend variant. Each call is a single stateless exchange.
type Generator interface {
	Invoke(ctx context.Context, req GenerationRequest) (*GenerationResponse, error)
}

// FileLister lists files from the storage backend. Implemented by the
// Drive variant; one page per call, no continuation tokens.
type FileLister interface {
	List(ctx context.Context, query string, pageSize int) ([]FileRecord, error)
}

// GenerateRequestID creates a unique request identifier.
func GenerateRequestID() string {
	return "req-" + uuid.New().String()
}
