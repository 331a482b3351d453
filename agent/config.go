package agent

import (
	"github.com/Victorasuquo/vertex-aI-sprint/model"
)

// Operation defaults applied when the corresponding Defaults field is zero.
const (
	// DefaultPageSize is the list_files page size.
	DefaultPageSize = 10

	// DefaultMaxDocumentBytes caps summarize input before any network
	// call. Documents over the ceiling fail with ContextTooLarge; there
	// is no chunking.
	DefaultMaxDocumentBytes = 800 * 1024
)

// Defaults holds the default model per backend family plus the operation
// limits. Zero values fall back to the package defaults.
type Defaults struct {
	Text    model.TextModel
	Content model.ContentModel
	Image   model.ImageModel
	Code    model.CodeModel

	// PageSize is used by list_files when the caller passes zero.
	PageSize int

	// MaxDocumentBytes is the summarize input ceiling.
	MaxDocumentBytes int
}

// normalized fills zero fields with the package defaults.
func (d Defaults) normalized() Defaults {
	if d.Text == "" {
		d.Text = model.DefaultText
	}
	if d.Content == "" {
		d.Content = model.DefaultContent
	}
	if d.Image == "" {
		d.Image = model.DefaultImage
	}
	if d.Code == "" {
		d.Code = model.DefaultCode
	}
	if d.PageSize == 0 {
		d.PageSize = DefaultPageSize
	}
	if d.MaxDocumentBytes == 0 {
		d.MaxDocumentBytes = DefaultMaxDocumentBytes
	}
	return d
}

// Config holds everything the agent needs to reach its backends. All
// values are explicit; the library never reads the process environment.
// Only configure the fields for the tasks you intend to invoke; a task
// whose backend configuration is missing fails with ErrBackendUnavailable
// when invoked, not at construction.
type Config struct {
	// Project and Location select the Vertex AI deployment used by the
	// text, code, and image backends. Those backends authenticate with
	// Application Default Credentials.
	Project  string
	Location string

	// APIKey authenticates the Gemini API content backend.
	APIKey string

	// CredentialFile is the path to the service-account key file for the
	// Drive backend; Scopes is its OAuth scope set (the credential
	// package default when empty). The conventional source for the path
	// is the GOOGLE_APPLICATION_CREDENTIALS variable, read by the caller.
	CredentialFile string
	Scopes         []string

	// Defaults selects the default model per family and the operation
	// limits.
	Defaults Defaults

	// Events is an optional channel for observing task execution.
	// Events are sent non-blocking; when the channel is full they are
	// dropped.
	Events chan<- Event
}

// DefaultConfig returns a Config with the default model catalog and
// operation limits filled in. Project, key, and credential fields stay
// empty; set them for the backends you use.
func DefaultConfig() Config {
	return Config{
		Defaults: Defaults{
			Text:             model.DefaultText,
			Content:          model.DefaultContent,
			Image:            model.DefaultImage,
			Code:             model.DefaultCode,
			PageSize:         DefaultPageSize,
			MaxDocumentBytes: DefaultMaxDocumentBytes,
		},
	}
}
