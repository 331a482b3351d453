package drive

import (
	"errors"

	"google.golang.org/api/googleapi"

	ai "github.com/Victorasuquo/vertex-aI-sprint"
)

// wrapError maps a Drive API error onto the backend error taxonomy. The
// storage service rejecting the presented credential is a CredentialError;
// a rejected query is its own cause so callers can tell bad syntax apart
// from service trouble.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return ai.NewBackendError(ai.BackendDrive, "list", ai.CauseNetworkFailure, 0, err)
	}

	code := apiErr.Code
	switch {
	case code == 401 || code == 403:
		return ai.NewCredentialError("", err)
	case code == 429:
		return ai.NewBackendError(ai.BackendDrive, "list", ai.CauseQuotaExceeded, code, err)
	case code >= 500 && code < 600:
		return ai.NewBackendError(ai.BackendDrive, "list", ai.CauseNetworkFailure, code, err)
	case code == 400 || code == 404:
		return ai.NewBackendError(ai.BackendDrive, "list", ai.CauseInvalidQuery, code, err)
	default:
		return ai.NewBackendError(ai.BackendDrive, "list", ai.CauseMalformedResponse, code, err)
	}
}
