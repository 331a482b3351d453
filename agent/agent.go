package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
	"github.com/Victorasuquo/vertex-aI-sprint/credential"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/codey"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/drive"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/gemini"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/imagen"
	"github.com/Victorasuquo/vertex-aI-sprint/internal/backend/vertex"
)

// summarizeInstruction is the fixed template prepended to summarize
// documents. There is no chunking; oversized documents are rejected
// before the exchange.
const summarizeInstruction = "Summarize this research paper: "

// codeQueryTemplate interleaves the code excerpt with the question. The
// whole operation is a single prompt pass-through; no parsing or
// indexing happens locally.
const codeQueryTemplate = "Here is some code:\n\n%s\n\nAnswer this question about the code: %s"

// Agent is the task-dispatch façade over the backend variants. Backend
// clients are lazily constructed on first use and reused; concurrent
// invocations are safe. The agent holds no other state between calls.
type Agent struct {
	cfg      Config
	defaults Defaults
	events   chan<- Event

	mu         sync.RWMutex
	generators map[ai.BackendKind]ai.Generator
	lister     ai.FileLister
}

// New creates an agent with the given configuration. Backend reachability
// is not checked here; a task whose backend cannot be built fails when
// invoked.
func New(cfg Config) (*Agent, error) {
	if cfg.Defaults.PageSize < 0 {
		return nil, ai.NewValidationError("page_size", "must not be negative")
	}
	if cfg.Defaults.MaxDocumentBytes < 0 {
		return nil, ai.NewValidationError("max_document_bytes", "must not be negative")
	}
	return &Agent{
		cfg:        cfg,
		defaults:   cfg.Defaults.normalized(),
		events:     cfg.Events,
		generators: make(map[ai.BackendKind]ai.Generator),
	}, nil
}

// Do executes one task invocation. It validates the request, routes it to
// the backend serving the task, and returns the result of the single
// exchange. Failures surface unchanged; the agent never retries.
func (a *Agent) Do(ctx context.Context, req Request) (*Result, error) {
	backend, ok := RouteOf(req.Task)
	if !ok {
		return nil, &ErrUnknownTask{Task: req.Task}
	}

	opts := ai.ApplyOptions(req.Options...)
	if err := a.check(req, opts); err != nil {
		return nil, err
	}

	requestID := ai.GenerateRequestID()
	start := time.Now()
	emit(a.events, Event{
		Type:      EventRequestStart,
		Task:      req.Task,
		Backend:   backend,
		RequestID: requestID,
	})

	res, err := a.dispatch(ctx, backend, req, opts)
	if err != nil {
		emit(a.events, Event{
			Type:      EventRequestError,
			Task:      req.Task,
			Backend:   backend,
			RequestID: requestID,
			Duration:  time.Since(start),
			Err:       err,
		})
		return nil, err
	}

	emit(a.events, Event{
		Type:      EventRequestComplete,
		Task:      req.Task,
		Backend:   backend,
		Model:     res.Model,
		RequestID: requestID,
		Duration:  time.Since(start),
		Usage:     &res.Usage,
	})
	return res, nil
}

// Draft sends the prompt to the text backend and returns the generated
// text.
func (a *Agent) Draft(ctx context.Context, prompt string, opts ...ai.Option) (string, error) {
	res, err := a.Do(ctx, Request{Task: TaskDraft, Prompt: prompt, Options: opts})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Summarize wraps the document in the fixed summarization instruction and
// sends it to the content backend. Empty documents are rejected locally;
// documents over the configured byte ceiling fail with ContextTooLarge
// before any network call.
func (a *Agent) Summarize(ctx context.Context, document string, opts ...ai.Option) (string, error) {
	res, err := a.Do(ctx, Request{Task: TaskSummarize, Document: document, Options: opts})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// GenerateImage sends the prompt to the image backend and returns the
// encoded image bytes. The encoding defaults to PNG; override it with
// WithResponseMIMEType. Successful calls always return non-empty bytes.
func (a *Agent) GenerateImage(ctx context.Context, prompt string, opts ...ai.Option) ([]byte, error) {
	res, err := a.Do(ctx, Request{Task: TaskGenerateImage, Prompt: prompt, Options: opts})
	if err != nil {
		return nil, err
	}
	return res.ImageData, nil
}

// QueryCode interleaves the code excerpt and the question into a fixed
// template and sends it to the code backend.
func (a *Agent) QueryCode(ctx context.Context, code, question string, opts ...ai.Option) (string, error) {
	res, err := a.Do(ctx, Request{Task: TaskQueryCode, Code: code, Question: question, Options: opts})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// ListFiles returns one page of Drive files matching the query, in the
// order the service returned them. An empty query lists all files up to
// pageSize; zero pageSize applies the configured default.
func (a *Agent) ListFiles(ctx context.Context, query string, pageSize int) ([]ai.FileRecord, error) {
	res, err := a.Do(ctx, Request{Task: TaskListFiles, Query: query, PageSize: pageSize})
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}

// check validates the request locally. Nothing here touches the network.
func (a *Agent) check(req Request, opts *ai.Options) error {
	switch req.Task {
	case TaskDraft, TaskGenerateImage:
		if req.Prompt == "" {
			return ai.NewValidationError("prompt", "must not be empty")
		}
	case TaskSummarize:
		if req.Document == "" {
			return ai.NewValidationError("document", "must not be empty")
		}
		if len(req.Document) > a.defaults.MaxDocumentBytes {
			return ai.NewBackendError(ai.BackendContent, "generate", ai.CauseContextTooLarge, 0,
				fmt.Errorf("document is %d bytes, ceiling is %d", len(req.Document), a.defaults.MaxDocumentBytes))
		}
	case TaskQueryCode:
		if req.Code == "" {
			return ai.NewValidationError("code", "must not be empty")
		}
		if req.Question == "" {
			return ai.NewValidationError("question", "must not be empty")
		}
	case TaskListFiles:
		if req.PageSize < 0 {
			return ai.NewValidationError("page_size", "must not be negative")
		}
		return nil
	}
	return opts.Validate()
}

// dispatch routes the validated request to the backend serving it.
func (a *Agent) dispatch(ctx context.Context, backend ai.BackendKind, req Request, opts *ai.Options) (*Result, error) {
	if backend == ai.BackendDrive {
		lister, err := a.fileLister(ctx)
		if err != nil {
			return nil, err
		}
		files, err := lister.List(ctx, req.Query, req.PageSize)
		if err != nil {
			return nil, err
		}
		return &Result{Files: files}, nil
	}

	gen, err := a.generator(ctx, backend)
	if err != nil {
		return nil, err
	}
	resp, err := gen.Invoke(ctx, ai.GenerationRequest{
		Prompt:  taskPrompt(req),
		Options: *opts,
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Text:          resp.Text,
		ImageData:     resp.ImageData,
		ImageMIMEType: resp.ImageMIMEType,
		Model:         resp.Model,
		Usage:         resp.Usage,
	}, nil
}

// taskPrompt assembles the full prompt sent to a generative backend,
// applying the task's instruction template where one exists.
func taskPrompt(req Request) string {
	switch req.Task {
	case TaskSummarize:
		return summarizeInstruction + req.Document
	case TaskQueryCode:
		return fmt.Sprintf(codeQueryTemplate, req.Code, req.Question)
	default:
		return req.Prompt
	}
}

// generator returns the generative backend for the given kind,
// constructing it on first use.
func (a *Agent) generator(ctx context.Context, kind ai.BackendKind) (ai.Generator, error) {
	a.mu.RLock()
	g, ok := a.generators[kind]
	a.mu.RUnlock()
	if ok {
		return g, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if g, ok := a.generators[kind]; ok {
		return g, nil
	}

	g, err := a.buildGenerator(ctx, kind)
	if err != nil {
		return nil, err
	}
	a.generators[kind] = g
	return g, nil
}

// buildGenerator constructs the backend variant for a kind. Construction
// failures are not cached: the Drive credential contract is "fix the
// configuration and re-invoke", and the generative variants follow the
// same rule.
func (a *Agent) buildGenerator(ctx context.Context, kind ai.BackendKind) (ai.Generator, error) {
	switch kind {
	case ai.BackendText:
		if a.cfg.Project == "" || a.cfg.Location == "" {
			return nil, &ErrBackendUnavailable{Backend: kind, Reason: "project and location are not configured"}
		}
		return vertex.New(ctx, vertex.Config{
			Project:  a.cfg.Project,
			Location: a.cfg.Location,
			Model:    a.defaults.Text,
		})
	case ai.BackendContent:
		if a.cfg.APIKey == "" {
			return nil, &ErrBackendUnavailable{Backend: kind, Reason: "API key is not configured"}
		}
		return gemini.New(ctx, gemini.Config{
			APIKey: a.cfg.APIKey,
			Model:  a.defaults.Content,
		})
	case ai.BackendImage:
		if a.cfg.Project == "" || a.cfg.Location == "" {
			return nil, &ErrBackendUnavailable{Backend: kind, Reason: "project and location are not configured"}
		}
		return imagen.New(ctx, imagen.Config{
			Project:  a.cfg.Project,
			Location: a.cfg.Location,
			Model:    a.defaults.Image,
		})
	case ai.BackendCode:
		if a.cfg.Project == "" || a.cfg.Location == "" {
			return nil, &ErrBackendUnavailable{Backend: kind, Reason: "project and location are not configured"}
		}
		return codey.New(ctx, codey.Config{
			Project:  a.cfg.Project,
			Location: a.cfg.Location,
			Model:    a.defaults.Code,
		})
	default:
		return nil, &ErrBackendUnavailable{Backend: kind, Reason: "no generative variant serves this backend"}
	}
}

// fileLister returns the Drive backend, constructing it on first use.
// The credential is loaded here, making the Drive backend the only
// consumer of the credential provider.
func (a *Agent) fileLister(ctx context.Context) (ai.FileLister, error) {
	a.mu.RLock()
	l := a.lister
	a.mu.RUnlock()
	if l != nil {
		return l, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.lister != nil {
		return a.lister, nil
	}

	if a.cfg.CredentialFile == "" {
		return nil, &ErrBackendUnavailable{Backend: ai.BackendDrive, Reason: "credential file is not configured"}
	}

	provider, err := credential.New(credential.Config{
		File:   a.cfg.CredentialFile,
		Scopes: a.cfg.Scopes,
	})
	if err != nil {
		return nil, err
	}
	cred, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	lister, err := drive.New(ctx, drive.Config{
		Credential: cred,
		PageSize:   a.defaults.PageSize,
	})
	if err != nil {
		return nil, err
	}
	a.lister = lister
	return lister, nil
}
