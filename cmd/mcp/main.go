// Command mcp serves the agent's tasks as MCP tools over stdio.
//
// MCP clients (like Claude Desktop or other AI assistants) discover five
// tools: draft_text, summarize_document, generate_image, query_code, and
// list_drive_files.
//
// Usage:
//
//	go run ./cmd/mcp
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "ai-sprint": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/vertex-aI-sprint"
//	        }
//	    }
//	}
//
// Credentials come from the environment, optionally via a .env file:
// VERTEX_PROJECT and VERTEX_LOCATION for the Vertex AI backends,
// GOOGLE_API_KEY for the Gemini API backend, and
// GOOGLE_APPLICATION_CREDENTIALS for Drive. Tasks whose variables are
// missing report an error when called; the rest keep working.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Victorasuquo/vertex-aI-sprint/agent"
	"github.com/Victorasuquo/vertex-aI-sprint/mcp"
)

func main() {
	godotenv.Load()

	cfg := agent.DefaultConfig()
	cfg.Project = os.Getenv("VERTEX_PROJECT")
	cfg.Location = os.Getenv("VERTEX_LOCATION")
	cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.CredentialFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

	a, err := agent.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := mcp.ServeStdio(a,
		mcp.WithName("ai-sprint"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}
