package gemini

import (
	"errors"
	"strings"

	"google.golang.org/genai"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// WrapError maps a GenAI SDK error onto the backend error taxonomy.
// Authentication rejections become CredentialErrors; everything that
// never produced a decodable response becomes a BackendError with the
// cause derived from the status code and message.
func WrapError(backend ai.BackendKind, op string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		// Not an API error: the request never completed (DNS, timeout,
		// canceled context, connection reset).
		return ai.NewBackendError(backend, op, ai.CauseNetworkFailure, 0, err)
	}

	code := apiErr.Code
	if code == 401 || code == 403 {
		return ai.NewCredentialError("", err)
	}
	return ai.NewBackendError(backend, op, classifyStatus(code, apiErr.Message), code, err)
}

// classifyStatus determines the failure cause from an HTTP status code,
// falling back to message sniffing for the 400 family where the service
// reports both oversized inputs and per-key quota as INVALID_ARGUMENT.
func classifyStatus(code int, message string) ai.Cause {
	switch {
	case code == 429:
		return ai.CauseQuotaExceeded
	case code >= 500 && code < 600:
		return ai.CauseNetworkFailure
	case code == 400 && mentionsContextSize(message):
		return ai.CauseContextTooLarge
	case code == 400 && mentionsQuota(message):
		return ai.CauseQuotaExceeded
	case code == 400 || code == 404 || code == 422:
		return ai.CauseInvalidQuery
	default:
		return ai.CauseMalformedResponse
	}
}

func mentionsContextSize(message string) bool {
	m := strings.ToLower(message)
	if strings.Contains(m, "context length") || strings.Contains(m, "too large") {
		return true
	}
	return strings.Contains(m, "token") && strings.Contains(m, "exceed")
}

func mentionsQuota(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "quota") || strings.Contains(m, "rate limit")
}
