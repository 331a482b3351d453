package aisprint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendError(t *testing.T) {
	t.Run("formats message with underlying error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewBackendError(BackendText, "generate", CauseNetworkFailure, 0, cause)

		assert.Contains(t, err.Error(), "text generate")
		assert.Contains(t, err.Error(), "network_failure")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("formats message for locally detected conditions", func(t *testing.T) {
		err := NewBackendError(BackendImage, "generate_image", CauseEmptyResponse, 0, nil)

		assert.Equal(t, "image generate_image: empty_response", err.Error())
	})

	t.Run("unwraps to the underlying error", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewBackendError(BackendContent, "generate", CauseQuotaExceeded, 429, cause)

		assert.True(t, errors.Is(err, cause))
	})

	t.Run("marks network and quota failures retryable", func(t *testing.T) {
		assert.True(t, NewBackendError(BackendText, "generate", CauseNetworkFailure, 503, nil).Retryable())
		assert.True(t, NewBackendError(BackendText, "generate", CauseQuotaExceeded, 429, nil).Retryable())
		assert.False(t, NewBackendError(BackendText, "generate", CauseMalformedResponse, 0, nil).Retryable())
		assert.False(t, NewBackendError(BackendText, "generate", CauseContextTooLarge, 400, nil).Retryable())
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Run("IsBackend sees through wrapping", func(t *testing.T) {
		err := fmt.Errorf("draft: %w", NewBackendError(BackendText, "generate", CauseNetworkFailure, 0, nil))

		assert.True(t, IsBackend(err))
		assert.False(t, IsValidation(err))
		assert.False(t, IsCredential(err))
	})

	t.Run("IsCause matches only the recorded cause", func(t *testing.T) {
		err := NewBackendError(BackendImage, "generate_image", CauseMissingImageData, 0, nil)

		assert.True(t, IsCause(err, CauseMissingImageData))
		assert.False(t, IsCause(err, CauseEmptyResponse))
		assert.False(t, IsCause(errors.New("plain"), CauseEmptyResponse))
	})

	t.Run("IsValidation matches wrapped validation errors", func(t *testing.T) {
		err := fmt.Errorf("summarize: %w", NewValidationError("document", "must not be empty"))

		assert.True(t, IsValidation(err))
		assert.False(t, IsBackend(err))
	})

	t.Run("IsCredential matches credential errors", func(t *testing.T) {
		err := NewCredentialError("/tmp/key.json", errors.New("no such file"))

		assert.True(t, IsCredential(err))
		assert.Contains(t, err.Error(), "/tmp/key.json")
	})

	t.Run("CauseOf and StatusCodeOf extract backend metadata", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", NewBackendError(BackendDrive, "list", CauseInvalidQuery, 400, errors.New("bad q")))

		assert.Equal(t, CauseInvalidQuery, CauseOf(err))
		assert.Equal(t, 400, StatusCodeOf(err))
		assert.Equal(t, Cause(""), CauseOf(errors.New("plain")))
		assert.Equal(t, 0, StatusCodeOf(errors.New("plain")))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("names the offending field", func(t *testing.T) {
		err := NewValidationError("temperature", "must be between 0 and 1")

		assert.Equal(t, "invalid temperature: must be between 0 and 1", err.Error())
	})
}

func TestCredentialError(t *testing.T) {
	t.Run("unwraps to the underlying error", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := NewCredentialError("key.json", cause)

		assert.True(t, errors.Is(err, cause))
	})

	t.Run("omits path when not file-related", func(t *testing.T) {
		err := NewCredentialError("", errors.New("scopes rejected"))

		assert.Equal(t, "credential: scopes rejected", err.Error())
	})
}
