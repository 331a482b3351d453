// Package gemini implements the content-family backend on the Gemini API.
// It also holds the response decoding and error mapping shared by the
// other GenAI-backed variants.
package gemini

import (
	"context"

	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
	"github.com/Victorasuquo/vertex-aI-sprint/model"
)

// Config holds the settings for the Gemini API backend.
type Config struct {
	// APIKey authenticates against the Gemini API.
	APIKey string

	// Model is the default content model. model.DefaultContent when empty.
	Model model.ContentModel
}

// Client wraps the GenAI SDK configured for the Gemini API backend.
type Client struct {
	client *genai.Client
	model  model.ContentModel
}

// New creates a Gemini API client with the given configuration.
func New(ctx context.Context, cfg Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	m := cfg.Model
	if m == "" {
		m = model.DefaultContent
	}
	return &Client{client: client, model: m}, nil
}

// Invoke sends the prompt to the content model and returns the generated
// text.
func (c *Client) Invoke(ctx context.Context, req ai.GenerationRequest) (*ai.GenerationResponse, error) {
	m := c.model.String()
	if req.Options.Model != "" {
		m = req.Options.Model
	}

	config := BuildConfig(&req.Options)
	resp, err := c.client.Models.GenerateContent(ctx, m, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, WrapError(ai.BackendContent, "generate", err)
	}

	text, usage, err := DecodeText(ai.BackendContent, "generate", resp)
	if err != nil {
		return nil, err
	}
	return &ai.GenerationResponse{Text: text, Model: m, Usage: usage}, nil
}

var _ ai.Generator = (*Client)(nil)
