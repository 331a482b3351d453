// Package mcp exposes the agent's tasks as Model Context Protocol tools.
//
// MCP is a protocol that enables AI assistants to access external tools and
// data. This package wraps an [agent.Agent] in an MCP server so that MCP
// clients like Claude Desktop can draft text, summarize documents, generate
// images, answer questions about code, and list Drive files.
//
// # Serving over stdio
//
//	a, err := agent.New(agent.Config{
//	    Project:        os.Getenv("VERTEX_PROJECT"),
//	    Location:       os.Getenv("VERTEX_LOCATION"),
//	    APIKey:         os.Getenv("GOOGLE_API_KEY"),
//	    CredentialFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := mcp.ServeStdio(a); err != nil {
//	    log.Fatal(err)
//	}
//
// Text tasks return plain text content. generate_image returns a JSON
// payload carrying the base64-encoded bytes and the MIME type, and
// list_drive_files returns a JSON payload of file records. Validation and
// backend failures are reported as tool errors, never as protocol errors.
package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
	"github.com/Victorasuquo/vertex-aI-sprint/agent"
)

// TaskRunner executes tasks. *agent.Agent satisfies it.
type TaskRunner interface {
	Do(ctx context.Context, req agent.Request) (*agent.Result, error)
}

// DraftArgs are the arguments of the draft_text tool.
type DraftArgs struct {
	Prompt          string   `json:"prompt"`
	Model           string   `json:"model,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty"`
}

// SummarizeArgs are the arguments of the summarize_document tool.
type SummarizeArgs struct {
	Document        string   `json:"document"`
	Model           string   `json:"model,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty"`
}

// GenerateImageArgs are the arguments of the generate_image tool.
type GenerateImageArgs struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// QueryCodeArgs are the arguments of the query_code tool.
type QueryCodeArgs struct {
	Code            string   `json:"code"`
	Question        string   `json:"question"`
	Model           string   `json:"model,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty"`
}

// ListFilesArgs are the arguments of the list_drive_files tool.
type ListFilesArgs struct {
	Query    string `json:"query,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

// ImagePayload is the JSON content returned by the generate_image tool.
type ImagePayload struct {
	ImageBase64 string `json:"image_base64"`
	MIMEType    string `json:"mime_type"`
	Model       string `json:"model"`
}

// FileListPayload is the JSON content returned by the list_drive_files tool.
type FileListPayload struct {
	Files []ai.FileRecord `json:"files"`
	Count int             `json:"count"`
}

// generationOptions converts the optional tuning arguments shared by the
// generative tools into functional options.
func generationOptions(model string, temperature *float64, maxTokens *int) []ai.Option {
	var opts []ai.Option
	if model != "" {
		opts = append(opts, ai.WithModel(model))
	}
	if temperature != nil {
		opts = append(opts, ai.WithTemperature(*temperature))
	}
	if maxTokens != nil {
		opts = append(opts, ai.WithMaxTokens(*maxTokens))
	}
	return opts
}

// decodeArgs unmarshals an MCP request's arguments into a typed Args struct.
func decodeArgs(request mcp.CallToolRequest, v any) error {
	if request.Params.Arguments == nil {
		return nil
	}
	data, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

type toolHandler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

func draftHandler(r TaskRunner) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args DraftArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := r.Do(ctx, agent.Request{
			Task:    agent.TaskDraft,
			Prompt:  args.Prompt,
			Options: generationOptions(args.Model, args.Temperature, args.MaxOutputTokens),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(res.Text), nil
	}
}

func summarizeHandler(r TaskRunner) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SummarizeArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := r.Do(ctx, agent.Request{
			Task:     agent.TaskSummarize,
			Document: args.Document,
			Options:  generationOptions(args.Model, args.Temperature, args.MaxOutputTokens),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(res.Text), nil
	}
}

func generateImageHandler(r TaskRunner) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args GenerateImageArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := r.Do(ctx, agent.Request{
			Task:    agent.TaskGenerateImage,
			Prompt:  args.Prompt,
			Options: generationOptions(args.Model, nil, nil),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := json.Marshal(ImagePayload{
			ImageBase64: base64.StdEncoding.EncodeToString(res.ImageData),
			MIMEType:    res.ImageMIMEType,
			Model:       res.Model,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}

func queryCodeHandler(r TaskRunner) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args QueryCodeArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := r.Do(ctx, agent.Request{
			Task:     agent.TaskQueryCode,
			Code:     args.Code,
			Question: args.Question,
			Options:  generationOptions(args.Model, args.Temperature, args.MaxOutputTokens),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(res.Text), nil
	}
}

func listFilesHandler(r TaskRunner) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListFilesArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := r.Do(ctx, agent.Request{
			Task:     agent.TaskListFiles,
			Query:    args.Query,
			PageSize: args.PageSize,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		files := res.Files
		if files == nil {
			files = []ai.FileRecord{}
		}
		payload, err := json.Marshal(FileListPayload{
			Files: files,
			Count: len(files),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}
