// Package drive implements the file listing backend on Google Drive.
package drive

import (
	"context"
	"errors"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
	"github.com/Victorasuquo/vertex-aI-sprint/credential"
)

// DefaultPageSize is the page size used when the caller passes zero.
const DefaultPageSize = 10

// listFields limits the response to the projection FileRecord carries.
const listFields = "files(id, name)"

// Config holds the settings for the Drive backend.
type Config struct {
	// Credential authenticates Drive calls. This backend is the only
	// consumer of the credential package; it is required unless extra
	// client options supply their own transport.
	Credential *credential.Credential

	// PageSize is the page size used when a caller passes zero.
	// DefaultPageSize when unset.
	PageSize int
}

// Client lists files through the Drive v3 API. One page per call; callers
// needing more manage continuation themselves.
type Client struct {
	service  *drive.Service
	pageSize int
}

// New creates a Drive client with the given configuration. Extra client
// options are appended after the credential, so they can redirect the
// endpoint or replace the transport.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Client, error) {
	if cfg.Credential == nil && len(opts) == 0 {
		return nil, ai.NewCredentialError("", errors.New("drive credential is required"))
	}

	var clientOpts []option.ClientOption
	if cfg.Credential != nil {
		clientOpts = append(clientOpts, option.WithTokenSource(cfg.Credential.TokenSource()))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, ai.NewCredentialError("", err)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{service: service, pageSize: pageSize}, nil
}

// List returns one page of files matching the query, in the order the
// service returned them. An empty query means "all files, up to pageSize".
// Zero pageSize applies the configured default.
func (c *Client) List(ctx context.Context, query string, pageSize int) ([]ai.FileRecord, error) {
	if pageSize < 0 {
		return nil, ai.NewValidationError("page_size", "must not be negative")
	}
	if pageSize == 0 {
		pageSize = c.pageSize
	}

	call := c.service.Files.List().
		Context(ctx).
		PageSize(int64(pageSize)).
		Fields(googleapi.Field(listFields))
	if query != "" {
		call = call.Q(query)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, wrapError(err)
	}

	records := make([]ai.FileRecord, 0, len(resp.Files))
	for _, f := range resp.Files {
		records = append(records, ai.FileRecord{ID: f.Id, Name: f.Name})
	}
	return records, nil
}

var _ ai.FileLister = (*Client)(nil)
