package oauth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrMissingAuthURL is returned when the authorization endpoint is not provided.
	ErrMissingAuthURL = errors.New("oauth: missing authorization URL")

	// ErrMissingTokenURL is returned when the token endpoint is not provided.
	ErrMissingTokenURL = errors.New("oauth: missing token URL")

	// ErrFetchFailed is returned when a request to the OAuth provider could not complete.
	ErrFetchFailed = errors.New("oauth: failed to fetch from provider")

	// ErrRequestFailed is returned when the OAuth provider returns a non-2xx status.
	ErrRequestFailed = errors.New("oauth: request returned non-OK status")
)

// InternalError wraps a failure of the OAuth2 delegate while talking to the provider.
// It unwraps to both its kind (ErrFetchFailed or ErrRequestFailed) and the cause,
// so callers can use errors.Is on either and errors.As to inspect the response.
type InternalError struct {
	Err        error
	kind       error
	Message    string
	Body       []byte
	StatusCode int
}

func (e *InternalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status=%d body=%s", e.Message, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the error kind and the underlying cause.
func (e *InternalError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func fetchError(msg string, err error) *InternalError {
	return &InternalError{Message: msg, Err: err, kind: ErrFetchFailed}
}

func statusError(msg string, status int, body []byte) *InternalError {
	return &InternalError{Message: msg, StatusCode: status, Body: body, kind: ErrRequestFailed}
}
