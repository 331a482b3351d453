// Command sprint runs one agent task from the command line.
//
// Usage:
//
//	sprint -task draft -prompt "Write a 2-sentence thank-you email"
//	sprint -task summarize -doc paper.txt
//	sprint -task generate_image -prompt "a red bicycle" -out bike.png
//	sprint -task query_code -code main.go -question "What does this do?"
//	sprint -task list_files -query "mimeType='application/pdf'"
//
// Credentials come from the environment, optionally via a .env file:
// VERTEX_PROJECT and VERTEX_LOCATION for the Vertex AI backends,
// GOOGLE_API_KEY for the Gemini API backend, and
// GOOGLE_APPLICATION_CREDENTIALS for Drive.
//
// Text results are printed to stdout. Images are written to the -out file.
// Request lifecycle events are logged to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Victorasuquo/vertex-aI-sprint/agent"
)

func main() {
	godotenv.Load()

	task := flag.String("task", "", "task to run: draft, summarize, generate_image, query_code, list_files")
	prompt := flag.String("prompt", "", "prompt for draft and generate_image")
	doc := flag.String("doc", "", "path to the document to summarize")
	code := flag.String("code", "", "path to the code file for query_code")
	question := flag.String("question", "", "question about the code")
	query := flag.String("query", "", "Drive search query for list_files, empty lists all files")
	pageSize := flag.Int("page-size", 0, "max Drive files to return")
	out := flag.String("out", "image.png", "output file for generate_image")
	flag.Parse()

	if *task == "" {
		flag.Usage()
		os.Exit(2)
	}

	req, err := buildRequest(agent.Task(*task), *prompt, *doc, *code, *question, *query, *pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	events := make(chan agent.Event, 16)
	cfg := agent.DefaultConfig()
	cfg.Project = os.Getenv("VERTEX_PROJECT")
	cfg.Location = os.Getenv("VERTEX_LOCATION")
	cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.CredentialFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	cfg.Events = events

	a, err := agent.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	done := make(chan struct{})
	go logEvents(events, done)

	res, err := a.Do(context.Background(), req)

	// The task has returned; no further events will be emitted.
	close(events)
	<-done

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := render(res, req.Task, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildRequest assembles the task request from the flag values, reading
// document and code inputs from their files.
func buildRequest(task agent.Task, prompt, doc, code, question, query string, pageSize int) (agent.Request, error) {
	req := agent.Request{Task: task}

	switch task {
	case agent.TaskDraft, agent.TaskGenerateImage:
		req.Prompt = prompt
	case agent.TaskSummarize:
		if doc != "" {
			data, err := os.ReadFile(doc)
			if err != nil {
				return agent.Request{}, fmt.Errorf("reading document: %w", err)
			}
			req.Document = string(data)
		}
	case agent.TaskQueryCode:
		if code != "" {
			data, err := os.ReadFile(code)
			if err != nil {
				return agent.Request{}, fmt.Errorf("reading code: %w", err)
			}
			req.Code = string(data)
		}
		req.Question = question
	case agent.TaskListFiles:
		req.Query = query
		req.PageSize = pageSize
	}

	// Unknown tasks pass through; the agent rejects them.
	return req, nil
}

func logEvents(events <-chan agent.Event, done chan<- struct{}) {
	defer close(done)
	for ev := range events {
		switch ev.Type {
		case agent.EventRequestStart:
			fmt.Fprintf(os.Stderr, "%s %s started on %s backend\n", ev.RequestID, ev.Task, ev.Backend)
		case agent.EventRequestComplete:
			if ev.Usage != nil {
				fmt.Fprintf(os.Stderr, "%s %s completed in %s (model %s, %d tokens in, %d out)\n",
					ev.RequestID, ev.Task, ev.Duration.Round(time.Millisecond), ev.Model,
					ev.Usage.InputTokens, ev.Usage.OutputTokens)
			} else {
				fmt.Fprintf(os.Stderr, "%s %s completed in %s\n",
					ev.RequestID, ev.Task, ev.Duration.Round(time.Millisecond))
			}
		case agent.EventRequestError:
			fmt.Fprintf(os.Stderr, "%s %s failed after %s: %v\n",
				ev.RequestID, ev.Task, ev.Duration.Round(time.Millisecond), ev.Err)
		}
	}
}

func render(res *agent.Result, task agent.Task, out string) error {
	switch task {
	case agent.TaskGenerateImage:
		if err := os.WriteFile(out, res.ImageData, 0o644); err != nil {
			return fmt.Errorf("writing image: %w", err)
		}
		fmt.Printf("wrote %s (%d bytes, %s)\n", out, len(res.ImageData), res.ImageMIMEType)
	case agent.TaskListFiles:
		if len(res.Files) == 0 {
			fmt.Println("no files found")
			return nil
		}
		for _, f := range res.Files {
			fmt.Printf("%s\t%s\n", f.ID, f.Name)
		}
	default:
		fmt.Println(res.Text)
	}
	return nil
}
