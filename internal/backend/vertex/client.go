// Package vertex implements the text-family backend on Vertex AI.
package vertex

import (
	"context"

	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/gemini"
	"github.com/Victorasuquo/vertex-aI-sprint/model"
)

// Config holds the settings for the Vertex AI text backend.
type Config struct {
	// Project is the Google Cloud project identifier.
	Project string

	// Location is the Vertex AI region (e.g. "us-central1").
	Location string

	// Model is the default text model. model.DefaultText when empty.
	Model model.TextModel
}

// Client wraps the GenAI SDK configured for the Vertex AI backend.
// Authentication uses Application Default Credentials.
type Client struct {
	client   *genai.Client
	project  string
	location string
	model    model.TextModel
}

// New creates a Vertex AI client with the given configuration.
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
		m = model.DefaultText
	}
	return &Client{
		client:   client,
		project:  cfg.Project,
		location: cfg.Location,
		model:    m,
	}, nil
}

// Invoke sends the prompt to the text model and returns the generated
// text.
func (c *Client) Invoke(ctx context.Context, req ai.GenerationRequest) (*ai.GenerationResponse, error) {
	m := c.model.String()
	if req.Options.Model != "" {
		m = req.Options.Model
	}

	config := gemini.BuildConfig(&req.Options)
	resp, err := c.client.Models.GenerateContent(ctx, m, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, gemini.WrapError(ai.BackendText, "generate", err)
	}

	text, usage, err := gemini.DecodeText(ai.BackendText, "generate", resp)
	if err != nil {
		return nil, err
	}
	return &ai.GenerationResponse{Text: text, Model: m, Usage: usage}, nil
}

var _ ai.Generator = (*Client)(nil)
