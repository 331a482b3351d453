package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// fakeGenerator implements ai.Generator and records what it was asked.
type fakeGenerator struct {
	calls   int
	lastReq ai.GenerationRequest
	resp    *ai.GenerationResponse
	err     error
}

func (f *fakeGenerator) Invoke(ctx context.Context, req ai.GenerationRequest) (*ai.GenerationResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

// fakeLister implements ai.FileLister and records what it was asked.
type fakeLister struct {
	calls        int
	lastQuery    string
	lastPageSize int
	files        []ai.FileRecord
	err          error
}

func (f *fakeLister) List(ctx context.Context, query string, pageSize int) ([]ai.FileRecord, error) {
	f.calls++
	f.lastQuery = query
	f.lastPageSize = pageSize
	if f.err != nil {
		return nil, f.err
	}
	return f.files, nil
}

func newTestAgent(t *testing.T, cfg Config) *Agent {
	t.Helper()
	a, err := New(cfg)
	require.NoError(t, err)
	return a
}

// seed installs a fake backend so no real client is ever constructed.
func seed(a *Agent, kind ai.BackendKind, g ai.Generator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generators[kind] = g
}

func seedLister(a *Agent, l ai.FileLister) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lister = l
}

func textFake(text string) *fakeGenerator {
	return &fakeGenerator{resp: &ai.GenerationResponse{Text: text, Model: "fake-model"}}
}

func TestNew(t *testing.T) {
	t.Run("creates an agent from an empty config", func(t *testing.T) {
		a, err := New(Config{})

		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("fills default models and limits", func(t *testing.T) {
		a := newTestAgent(t, Config{})

		assert.NotEmpty(t, a.defaults.Text)
		assert.NotEmpty(t, a.defaults.Content)
		assert.NotEmpty(t, a.defaults.Image)
		assert.NotEmpty(t, a.defaults.Code)
		assert.Equal(t, DefaultPageSize, a.defaults.PageSize)
		assert.Equal(t, DefaultMaxDocumentBytes, a.defaults.MaxDocumentBytes)
	})

	t.Run("rejects negative defaults", func(t *testing.T) {
		_, err := New(Config{Defaults: Defaults{PageSize: -1}})
		assert.True(t, ai.IsValidation(err))

		_, err = New(Config{Defaults: Defaults{MaxDocumentBytes: -1}})
		assert.True(t, ai.IsValidation(err))
	})
}

func TestDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the generated text", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("Thank you for the opportunity. I look forward to hearing from you.")
		seed(a, ai.BackendText, fake)

		text, err := a.Draft(ctx, "Write a 2-sentence thank-you email",
			ai.WithTemperature(0.7),
			ai.WithMaxTokens(500),
		)

		require.NoError(t, err)
		assert.NotEmpty(t, text)
		assert.Equal(t, 1, fake.calls)
		assert.Equal(t, "Write a 2-sentence thank-you email", fake.lastReq.Prompt)
	})

	t.Run("forwards generation options verbatim", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("ok")
		seed(a, ai.BackendText, fake)

		_, err := a.Draft(ctx, "prompt",
			ai.WithTemperature(0.3),
			ai.WithMaxTokens(128),
			ai.WithModel("gemini-2.5-pro"),
		)

		require.NoError(t, err)
		opts := fake.lastReq.Options
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.3, *opts.Temperature)
		require.NotNil(t, opts.MaxTokens)
		assert.Equal(t, 128, *opts.MaxTokens)
		assert.Equal(t, "gemini-2.5-pro", opts.Model)
	})

	t.Run("rejects an empty prompt without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("never")
		seed(a, ai.BackendText, fake)

		_, err := a.Draft(ctx, "")

		assert.True(t, ai.IsValidation(err))
		assert.Zero(t, fake.calls)
	})

	t.Run("rejects temperature out of range without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("never")
		seed(a, ai.BackendText, fake)

		for _, temp := range []float64{-0.1, 1.5} {
			_, err := a.Draft(ctx, "prompt", ai.WithTemperature(temp))

			assert.True(t, ai.IsValidation(err), "temperature %v", temp)
		}
		assert.Zero(t, fake.calls)
	})

	t.Run("rejects non-positive max tokens without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("never")
		seed(a, ai.BackendText, fake)

		for _, n := range []int{0, -10} {
			_, err := a.Draft(ctx, "prompt", ai.WithMaxTokens(n))

			assert.True(t, ai.IsValidation(err), "max tokens %d", n)
		}
		assert.Zero(t, fake.calls)
	})

	t.Run("surfaces backend failures after exactly one attempt", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeGenerator{err: ai.NewBackendError(ai.BackendText, "generate", ai.CauseQuotaExceeded, 429, nil)}
		seed(a, ai.BackendText, fake)

		_, err := a.Draft(ctx, "prompt")

		assert.True(t, ai.IsCause(err, ai.CauseQuotaExceeded))
		assert.Equal(t, 1, fake.calls)
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps the document in the instruction template", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("A paper about transformers.")
		seed(a, ai.BackendContent, fake)

		summary, err := a.Summarize(ctx, "Attention is all you need...")

		require.NoError(t, err)
		assert.NotEmpty(t, summary)
		assert.Equal(t, "Summarize this research paper: Attention is all you need...", fake.lastReq.Prompt)
	})

	t.Run("rejects an empty document without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("never")
		seed(a, ai.BackendContent, fake)

		_, err := a.Summarize(ctx, "")

		assert.True(t, ai.IsValidation(err))
		assert.Zero(t, fake.calls)
	})

	t.Run("rejects an oversized document locally with ContextTooLarge", func(t *testing.T) {
		a := newTestAgent(t, Config{Defaults: Defaults{MaxDocumentBytes: 64}})
		fake := textFake("never")
		seed(a, ai.BackendContent, fake)

		_, err := a.Summarize(ctx, strings.Repeat("x", 65))

		assert.True(t, ai.IsCause(err, ai.CauseContextTooLarge))
		assert.Zero(t, fake.calls)
	})

	t.Run("accepts a document exactly at the ceiling", func(t *testing.T) {
		a := newTestAgent(t, Config{Defaults: Defaults{MaxDocumentBytes: 64}})
		fake := textFake("short")
		seed(a, ai.BackendContent, fake)

		_, err := a.Summarize(ctx, strings.Repeat("x", 64))

		require.NoError(t, err)
		assert.Equal(t, 1, fake.calls)
	})

	t.Run("treats output as opaque non-empty text", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		seed(a, ai.BackendContent, textFake("summary one"))

		first, err := a.Summarize(ctx, "the same document")
		require.NoError(t, err)

		second, err := a.Summarize(ctx, "the same document")
		require.NoError(t, err)

		// The remote model is non-deterministic; equality is not part of
		// the contract.
		assert.NotEmpty(t, first)
		assert.NotEmpty(t, second)
	})
}

func TestGenerateImage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns non-empty image bytes", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeGenerator{resp: &ai.GenerationResponse{
			ImageData:     []byte{0x89, 0x50, 0x4e, 0x47},
			ImageMIMEType: "image/png",
			Model:         "imagen-4.0-generate-001",
		}}
		seed(a, ai.BackendImage, fake)

		data, err := a.GenerateImage(ctx, "a red bicycle on a white background")

		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, "a red bicycle on a white background", fake.lastReq.Prompt)
	})

	t.Run("rejects an empty prompt without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeGenerator{resp: &ai.GenerationResponse{ImageData: []byte{1}}}
		seed(a, ai.BackendImage, fake)

		_, err := a.GenerateImage(ctx, "")

		assert.True(t, ai.IsValidation(err))
		assert.Zero(t, fake.calls)
	})

	t.Run("surfaces an empty response as EmptyResponse", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeGenerator{err: ai.NewBackendError(ai.BackendImage, "generate_image", ai.CauseEmptyResponse, 0, nil)}
		seed(a, ai.BackendImage, fake)

		_, err := a.GenerateImage(ctx, "a red bicycle on a white background")

		assert.True(t, ai.IsCause(err, ai.CauseEmptyResponse))
	})
}

func TestQueryCode(t *testing.T) {
	ctx := context.Background()

	t.Run("interleaves code and question in the template", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("It sorts the slice in place.")
		seed(a, ai.BackendCode, fake)

		answer, err := a.QueryCode(ctx, "func sort(s []int) { ... }", "What does this function do?")

		require.NoError(t, err)
		assert.NotEmpty(t, answer)
		assert.Contains(t, fake.lastReq.Prompt, "func sort(s []int) { ... }")
		assert.Contains(t, fake.lastReq.Prompt, "What does this function do?")
	})

	t.Run("rejects empty code without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("never")
		seed(a, ai.BackendCode, fake)

		_, err := a.QueryCode(ctx, "", "What does it do?")

		assert.True(t, ai.IsValidation(err))
		assert.Zero(t, fake.calls)
	})

	t.Run("rejects an empty question without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := textFake("never")
		seed(a, ai.BackendCode, fake)

		_, err := a.QueryCode(ctx, "package main", "")

		assert.True(t, ai.IsValidation(err))
		assert.Zero(t, fake.calls)
	})
}

func TestListFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("returns records in backend order", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeLister{files: []ai.FileRecord{
			{ID: "f3", Name: "report.pdf"},
			{ID: "f1", Name: "notes.pdf"},
			{ID: "f2", Name: "draft.pdf"},
		}}
		seedLister(a, fake)

		records, err := a.ListFiles(ctx, "mimeType='application/pdf'", 10)

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "f3", records[0].ID)
		assert.Equal(t, "f1", records[1].ID)
		assert.Equal(t, "f2", records[2].ID)
		assert.Equal(t, "mimeType='application/pdf'", fake.lastQuery)
		assert.Equal(t, 10, fake.lastPageSize)
	})

	t.Run("allows an empty query", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeLister{files: []ai.FileRecord{{ID: "f1", Name: "anything"}}}
		seedLister(a, fake)

		records, err := a.ListFiles(ctx, "", 5)

		require.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Empty(t, fake.lastQuery)
	})

	t.Run("rejects a negative page size without a backend call", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeLister{}
		seedLister(a, fake)

		_, err := a.ListFiles(ctx, "", -1)

		assert.True(t, ai.IsValidation(err))
		assert.Zero(t, fake.calls)
	})

	t.Run("surfaces lister failures", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fake := &fakeLister{err: ai.NewBackendError(ai.BackendDrive, "list", ai.CauseInvalidQuery, 400, errors.New("bad q"))}
		seedLister(a, fake)

		_, err := a.ListFiles(ctx, "mimeType=", 10)

		assert.True(t, ai.IsCause(err, ai.CauseInvalidQuery))
	})
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("fails on an unknown task", func(t *testing.T) {
		a := newTestAgent(t, Config{})

		_, err := a.Do(ctx, Request{Task: Task("transcribe")})

		var unknownErr *ErrUnknownTask
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, Task("transcribe"), unknownErr.Task)
	})

	t.Run("routes each generative task to its backend kind", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		fakes := map[ai.BackendKind]*fakeGenerator{
			ai.BackendText:    textFake("t"),
			ai.BackendContent: textFake("c"),
			ai.BackendImage:   {resp: &ai.GenerationResponse{ImageData: []byte{1}}},
			ai.BackendCode:    textFake("q"),
		}
		for kind, fake := range fakes {
			seed(a, kind, fake)
		}

		_, err := a.Do(ctx, Request{Task: TaskDraft, Prompt: "p"})
		require.NoError(t, err)
		_, err = a.Do(ctx, Request{Task: TaskSummarize, Document: "d"})
		require.NoError(t, err)
		_, err = a.Do(ctx, Request{Task: TaskGenerateImage, Prompt: "p"})
		require.NoError(t, err)
		_, err = a.Do(ctx, Request{Task: TaskQueryCode, Code: "c", Question: "q"})
		require.NoError(t, err)

		for kind, fake := range fakes {
			assert.Equal(t, 1, fake.calls, "backend %s", kind)
		}
	})

	t.Run("returns the model and usage from the backend", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		seed(a, ai.BackendText, &fakeGenerator{resp: &ai.GenerationResponse{
			Text:  "ok",
			Model: "gemini-2.5-flash",
			Usage: ai.Usage{InputTokens: 7, OutputTokens: 21},
		}})

		res, err := a.Do(ctx, Request{Task: TaskDraft, Prompt: "p"})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", res.Model)
		assert.Equal(t, 7, res.Usage.InputTokens)
		assert.Equal(t, 21, res.Usage.OutputTokens)
	})
}

func TestBackendUnavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("draft without project and location names the missing fields", func(t *testing.T) {
		a := newTestAgent(t, Config{APIKey: "key"})

		_, err := a.Draft(ctx, "prompt")

		var unavailable *ErrBackendUnavailable
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, ai.BackendText, unavailable.Backend)
		assert.Contains(t, err.Error(), "Config.Project")
	})

	t.Run("summarize without an API key names the missing field", func(t *testing.T) {
		a := newTestAgent(t, Config{Project: "p", Location: "us-central1"})

		_, err := a.Summarize(ctx, "document")

		var unavailable *ErrBackendUnavailable
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, ai.BackendContent, unavailable.Backend)
		assert.Contains(t, err.Error(), "Config.APIKey")
	})

	t.Run("list_files without a credential file names the missing field", func(t *testing.T) {
		a := newTestAgent(t, Config{})

		_, err := a.ListFiles(ctx, "", 10)

		var unavailable *ErrBackendUnavailable
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, ai.BackendDrive, unavailable.Backend)
		assert.Contains(t, err.Error(), "Config.CredentialFile")
	})

	t.Run("availability is re-evaluated on every call", func(t *testing.T) {
		a := newTestAgent(t, Config{})

		_, err := a.Draft(ctx, "prompt")
		require.Error(t, err)

		// A seeded backend must be picked up by the next call: failures
		// are not cached.
		seed(a, ai.BackendText, textFake("ok"))
		text, err := a.Draft(ctx, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "ok", text)
	})
}

func TestEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("emits start and complete for a successful task", func(t *testing.T) {
		events := make(chan Event, 10)
		a := newTestAgent(t, Config{Events: events})
		seed(a, ai.BackendText, &fakeGenerator{resp: &ai.GenerationResponse{
			Text:  "ok",
			Model: "gemini-2.5-flash",
			Usage: ai.Usage{InputTokens: 3, OutputTokens: 9},
		}})

		_, err := a.Draft(ctx, "prompt")
		require.NoError(t, err)

		start := <-events
		assert.Equal(t, EventRequestStart, start.Type)
		assert.Equal(t, TaskDraft, start.Task)
		assert.Equal(t, ai.BackendText, start.Backend)
		assert.True(t, strings.HasPrefix(start.RequestID, "req-"))
		assert.False(t, start.Timestamp.IsZero())

		complete := <-events
		assert.Equal(t, EventRequestComplete, complete.Type)
		assert.Equal(t, start.RequestID, complete.RequestID)
		assert.Equal(t, "gemini-2.5-flash", complete.Model)
		require.NotNil(t, complete.Usage)
		assert.Equal(t, 9, complete.Usage.OutputTokens)
	})

	t.Run("emits start and error for a failed task", func(t *testing.T) {
		events := make(chan Event, 10)
		a := newTestAgent(t, Config{Events: events})
		backendErr := ai.NewBackendError(ai.BackendText, "generate", ai.CauseNetworkFailure, 0, errors.New("conn reset"))
		seed(a, ai.BackendText, &fakeGenerator{err: backendErr})

		_, err := a.Draft(ctx, "prompt")
		require.Error(t, err)

		start := <-events
		assert.Equal(t, EventRequestStart, start.Type)

		failure := <-events
		assert.Equal(t, EventRequestError, failure.Type)
		assert.Equal(t, start.RequestID, failure.RequestID)
		assert.True(t, ai.IsCause(failure.Err, ai.CauseNetworkFailure))
	})

	t.Run("emits nothing for locally rejected requests", func(t *testing.T) {
		events := make(chan Event, 10)
		a := newTestAgent(t, Config{Events: events})
		seed(a, ai.BackendText, textFake("never"))

		_, err := a.Draft(ctx, "")
		require.Error(t, err)

		assert.Empty(t, events)
	})

	t.Run("never blocks when the channel is full", func(t *testing.T) {
		events := make(chan Event, 1)
		a := newTestAgent(t, Config{Events: events})
		seed(a, ai.BackendText, textFake("ok"))

		// Two events per call; capacity one. The call must still finish.
		_, err := a.Draft(ctx, "prompt")
		require.NoError(t, err)

		_, err = a.Draft(ctx, "prompt")
		require.NoError(t, err)
	})

	t.Run("works without an event channel", func(t *testing.T) {
		a := newTestAgent(t, Config{})
		seed(a, ai.BackendText, textFake("ok"))

		_, err := a.Draft(ctx, "prompt")

		require.NoError(t, err)
	})
}
