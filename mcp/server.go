package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server exposing the agent's five tasks as tools.
//
// Example:
//
//	a, err := agent.New(agent.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mcpServer := mcp.NewServer(a,
//	    mcp.WithName("ai-sprint"),
//	    mcp.WithVersion("1.0.0"),
//	)
//
//	server.ServeStdio(mcpServer)
func NewServer(runner TaskRunner, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "ai-sprint-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	draftTool := mcp.NewTool("draft_text",
		mcp.WithDescription("Draft text from a prompt, such as an email or a paragraph, using a Vertex AI text model"),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("What to write")),
		mcp.WithString("model",
			mcp.Description("Override the default text model")),
		mcp.WithNumber("temperature",
			mcp.Description("Sampling temperature between 0.0 and 1.0")),
		mcp.WithNumber("max_output_tokens",
			mcp.Description("Cap on generated tokens, must be positive")),
	)
	s.AddTool(draftTool, draftHandler(runner))

	summarizeTool := mcp.NewTool("summarize_document",
		mcp.WithDescription("Summarize a document, such as a research paper, using a Gemini content model"),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("Full text of the document to summarize")),
		mcp.WithString("model",
			mcp.Description("Override the default content model")),
		mcp.WithNumber("temperature",
			mcp.Description("Sampling temperature between 0.0 and 1.0")),
		mcp.WithNumber("max_output_tokens",
			mcp.Description("Cap on generated tokens, must be positive")),
	)
	s.AddTool(summarizeTool, summarizeHandler(runner))

	imageTool := mcp.NewTool("generate_image",
		mcp.WithDescription("Generate a single image from a text prompt using Imagen. Returns JSON with base64-encoded bytes and the MIME type."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("Description of the image to generate")),
		mcp.WithString("model",
			mcp.Description("Override the default image model")),
	)
	s.AddTool(imageTool, generateImageHandler(runner))

	queryCodeTool := mcp.NewTool("query_code",
		mcp.WithDescription("Answer a natural-language question about a code snippet"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The code snippet to analyze")),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("The question to answer about the code")),
		mcp.WithString("model",
			mcp.Description("Override the default code model")),
		mcp.WithNumber("temperature",
			mcp.Description("Sampling temperature between 0.0 and 1.0")),
		mcp.WithNumber("max_output_tokens",
			mcp.Description("Cap on generated tokens, must be positive")),
	)
	s.AddTool(queryCodeTool, queryCodeHandler(runner))

	listFilesTool := mcp.NewTool("list_drive_files",
		mcp.WithDescription("List Google Drive files matching an optional query. Returns JSON with file IDs and names."),
		mcp.WithString("query",
			mcp.Description("Drive search query, e.g. mimeType='application/pdf'. Empty lists all files.")),
		mcp.WithNumber("page_size",
			mcp.Description("Max files to return (default: 10)")),
	)
	s.AddTool(listFilesTool, listFilesHandler(runner))

	return s
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
//
// Example:
//
//	a, err := agent.New(agent.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := mcp.ServeStdio(a); err != nil {
//	    log.Fatal(err)
//	}
func ServeStdio(runner TaskRunner, opts ...ServerOption) error {
	s := NewServer(runner, opts...)
	return server.ServeStdio(s)
}
