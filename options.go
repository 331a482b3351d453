package aisprint

// Options contains configuration for a generation request.
type Options struct {
	Model            string
	MaxTokens        *int
	Temperature      *float64
	ResponseMIMEType string
}

// Option is a functional option for configuring generation requests.
type Option func(*Options)

// WithModel overrides the backend's default model for the request. The
// model must belong to the backend's family.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = &n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 1.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithResponseMIMEType sets the MIME type requested for the response
// payload (e.g. "text/plain", "application/json", "image/png").
func WithResponseMIMEType(mimeType string) Option {
	return func(o *Options) {
		o.ResponseMIMEType = mimeType
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks the options against their documented constraints.
// A zero value means the parameter is unset and the backend default applies.
func (o *Options) Validate() error {
	if o.Temperature != nil && (*o.Temperature < 0 || *o.Temperature > 1) {
		return NewValidationError("temperature", "must be between 0 and 1")
	}
	if o.MaxTokens != nil && *o.MaxTokens <= 0 {
		return NewValidationError("max_tokens", "must be positive")
	}
	return nil
}
