// Package imagen implements the image generation backend on Vertex AI.
package imagen

import (
	"context"

	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/gemini"
	"github.com/Victorasuquo/vertex-aI-sprint/model"
)

// DefaultOutputMIMEType is the image encoding requested when the caller
// does not choose one.
const DefaultOutputMIMEType = "image/png"

// Config holds the settings for the Imagen backend.
type Config struct {
	// Project is the Google Cloud project identifier.
	Project string

	// Location is the Vertex AI region (e.g. "us-central1").
	Location string

	// Model is the default image model. model.DefaultImage when empty.
	Model model.ImageModel
}

// Client wraps the GenAI SDK configured for Imagen on Vertex AI.
// Authentication uses Application Default Credentials.
type Client struct {
	client   *genai.Client
	project  string
	location string
	model    model.ImageModel
}

// New creates an Imagen client with the given configuration.
func New(ctx context.Context, cfg Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.Project,
		Location: cfg.Location,
	})
	if err != nil {
		return nil, err
	}
	m := cfg.Model
	if m == "" {
		m = model.DefaultImage
	}
	return &Client{
		client:   client,
		project:  cfg.Project,
		location: cfg.Location,
		model:    m,
	}, nil
}

// Invoke sends the prompt to the image model and returns the encoded
// image bytes of a single generated image. The bytes are returned as-is;
// no dimension or format checks happen locally.
func (c *Client) Invoke(ctx context.Context, req ai.GenerationRequest) (*ai.GenerationResponse, error) {
	m := c.model.String()
	if req.Options.Model != "" {
		m = req.Options.Model
	}
	mimeType := req.Options.ResponseMIMEType
	if mimeType == "" {
		mimeType = DefaultOutputMIMEType
	}

	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: mimeType,
	}
	resp, err := c.client.Models.GenerateImages(ctx, m, req.Prompt, config)
	if err != nil {
		return nil, gemini.WrapError(ai.BackendImage, "generate_image", err)
	}

	data, respMIME, err := DecodeImage(resp)
	if err != nil {
		return nil, err
	}
	if respMIME != "" {
		mimeType = respMIME
	}
	return &ai.GenerationResponse{
		ImageData:     data,
		ImageMIMEType: mimeType,
		Model:         m,
	}, nil
}

var _ ai.Generator = (*Client)(nil)
