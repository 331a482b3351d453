package aisprint

import (
	"errors"
	"fmt"
)

// Cause classifies a backend failure by what went wrong on the wire or in
// the response payload.
type Cause string

const (
	// CauseNetworkFailure indicates the request never completed: transport
	// errors, timeouts, or a 5xx from the service.
	CauseNetworkFailure Cause = "network_failure"

	// CauseQuotaExceeded indicates the service refused the request due to
	// rate or quota limits.
	CauseQuotaExceeded Cause = "quota_exceeded"

	// CauseMalformedResponse indicates the response arrived but did not
	// contain the expected field (e.g. no text in any content part).
	CauseMalformedResponse Cause = "malformed_response"

	// CauseContextTooLarge indicates the input exceeded the model's
	// context window.
	CauseContextTooLarge Cause = "context_too_large"

	// CauseEmptyResponse indicates the response contained no candidates
	// or generated images at all.
	CauseEmptyResponse Cause = "empty_response"

	// CauseMissingContentPart indicates a candidate arrived without any
	// content parts.
	CauseMissingContentPart Cause = "missing_content_part"

	// CauseMissingImageData indicates an image entry arrived without
	// binary data.
	CauseMissingImageData Cause = "missing_image_data"

	// CauseInvalidQuery indicates the provider rejected the request as
	// invalid: malformed Drive query syntax, an unknown model, or request
	// arguments outside the service's own constraints.
	CauseInvalidQuery Cause = "invalid_query"
)

// BackendError reports a failed exchange with a remote backend.
type BackendError struct {
	Backend BackendKind
	Op      string // "generate", "generate_image", "list"
	Cause   Cause
	Code    int   // HTTP status code, 0 if not applicable
	Err     error // underlying error, nil for locally detected conditions
}

// Error returns the error message.
func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Backend, e.Op, e.Cause, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Backend, e.Op, e.Cause)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// Retryable reports whether retrying the same call might succeed.
// This package never retries; callers decide.
func (e *BackendError) Retryable() bool {
	return e.Cause == CauseNetworkFailure || e.Cause == CauseQuotaExceeded
}

// NewBackendError creates a BackendError for the given backend and operation.
func NewBackendError(backend BackendKind, op string, cause Cause, code int, err error) *BackendError {
	return &BackendError{
		Backend: backend,
		Op:      op,
		Cause:   cause,
		Code:    code,
		Err:     err,
	}
}

// CredentialError reports a credential that could not be loaded or was
// rejected by the issuer.
type CredentialError struct {
	Path string // credential file path, "" if not file-related
	Err  error
}

// Error returns the error message.
func (e *CredentialError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("credential %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("credential: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CredentialError) Unwrap() error {
	return e.Err
}

// NewCredentialError creates a CredentialError for the given file path.
func NewCredentialError(path string, err error) *CredentialError {
	return &CredentialError{Path: path, Err: err}
}

// ValidationError reports a caller-supplied parameter outside its
// documented constraints. It is produced before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation returns true if the error or any wrapped error is a
// ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsCredential returns true if the error or any wrapped error is a
// CredentialError.
func IsCredential(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}

// IsBackend returns true if the error or any wrapped error is a
// BackendError.
func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// IsCause returns true if the error is a BackendError with the given cause.
func IsCause(err error, cause Cause) bool {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Cause == cause
	}
	return false
}

// CauseOf returns the cause from a BackendError, or "" if the error is not
// a BackendError.
func CauseOf(err error) Cause {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Cause
	}
	return ""
}

// StatusCodeOf returns the HTTP status code from a BackendError, or 0.
func StatusCodeOf(err error) int {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Code
	}
	return 0
}
