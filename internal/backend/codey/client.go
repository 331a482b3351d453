// Package codey implements the code-family backend on Vertex AI.
package codey

import (
	"context"

	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/gemini"
	"github.com/Victorasuquo/vertex-aI-sprint/model"
)

// Config holds the settings for the code backend.
type Config struct {
	// Project is the Google Cloud project identifier.
	Project string

	// Location is the Vertex AI region (e.g. "us-central1").
	Location string

	// Model is the default code model. model.DefaultCode when empty.
	Model model.CodeModel
}

// Client wraps the GenAI SDK configured for code question answering on
// Vertex AI. Authentication uses Application Default Credentials.
type Client struct {
	client   *genai.Client
	project  string
	location string
	model    model.CodeModel
}

// New creates a code backend client with the given configuration.
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
		m = model.DefaultCode
	}
	return &Client{
		client:   client,
		project:  cfg.Project,
		location: cfg.Location,
		model:    m,
	}, nil
}

// Invoke sends the assembled code question to the model and returns the
// answer text. The prompt arrives fully templated; this variant adds no
// code analysis of its own.
func (c *Client) Invoke(ctx context.Context, req ai.GenerationRequest) (*ai.GenerationResponse, error) {
	m := c.model.String()
	if req.Options.Model != "" {
		m = req.Options.Model
	}

	config := gemini.BuildConfig(&req.Options)
	resp, err := c.client.Models.GenerateContent(ctx, m, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, gemini.WrapError(ai.BackendCode, "generate", err)
	}

	text, usage, err := gemini.DecodeText(ai.BackendCode, "generate", resp)
	if err != nil {
		return nil, err
	}
	return &ai.GenerationResponse{Text: text, Model: m, Usage: usage}, nil
}

var _ ai.Generator = (*Client)(nil)
