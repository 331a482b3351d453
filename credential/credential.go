// Package credential loads service-account credentials for the Drive
// backend. Generative backends authenticate through the GenAI SDK and do
// not use this package.
package credential

import (
	"context"
	"errors"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// ScopeDriveMetadataReadonly grants read-only access to Drive file metadata.
const ScopeDriveMetadataReadonly = "https://www.googleapis.com/auth/drive.metadata.readonly"

// DefaultScopes is the scope set requested when Config.Scopes is empty.
var DefaultScopes = []string{ScopeDriveMetadataReadonly}

// Config holds the credential source. The file path is explicit; callers
// that want the conventional GOOGLE_APPLICATION_CREDENTIALS behavior read
// the variable themselves and pass the value in.
type Config struct {
	// File is the path to a service-account key file (JSON).
	File string

	// Scopes is the OAuth scope set requested for issued tokens.
	// DefaultScopes is used when empty.
	Scopes []string
}

// Provider loads credentials from a service-account key file.
type Provider struct {
	file   string
	scopes []string
}

// New creates a credential provider for the given configuration.
// The file is not read until Load is called.
func New(cfg Config) (*Provider, error) {
	if cfg.File == "" {
		return nil, ai.NewCredentialError("", errors.New("credential file path is required"))
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	return &Provider{file: cfg.File, scopes: scopes}, nil
}

// Load reads and parses the key file and returns a live credential.
// It fails with a CredentialError if the file is missing or malformed;
// scope rejection surfaces later, when the issuer refuses a token.
func (p *Provider) Load(ctx context.Context) (*Credential, error) {
	data, err := os.ReadFile(p.file)
	if err != nil {
		return nil, ai.NewCredentialError(p.file, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, p.scopes...)
	if err != nil {
		return nil, ai.NewCredentialError(p.file, err)
	}

	return &Credential{
		source: p.file,
		scopes: append([]string(nil), p.scopes...),
		creds:  creds,
	}, nil
}

// Credential is a live, scoped credential. Tokens are minted on demand by
// the underlying source and carry their own expiry; nothing is persisted.
type Credential struct {
	source string
	scopes []string
	creds  *google.Credentials
}

// TokenSource returns the token source backing this credential.
func (c *Credential) TokenSource() oauth2.TokenSource {
	return c.creds.TokenSource
}

// Scopes returns the scope set the credential was issued for.
func (c *Credential) Scopes() []string {
	return append([]string(nil), c.scopes...)
}

// ProjectID returns the project the key file belongs to, if present.
func (c *Credential) ProjectID() string {
	return c.creds.ProjectID
}

// Source returns the key file path the credential was loaded from.
func (c *Credential) Source() string {
	return c.source
}
