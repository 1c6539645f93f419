package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingCredential is wrapped by the AuthError returned when no key is held.
var ErrMissingCredential = errors.New("missing API credential")

// AuthError reports a missing credential or one rejected by the upstream service.
type AuthError struct {
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Status == 0 {
		if e.Message != "" {
			return "authentication failed: " + e.Message
		}
		return "authentication failed: " + errorText(e.Err)
	}
	return fmt.Sprintf("authentication failed (%d %s): %s", e.Status, http.StatusText(e.Status), e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NetworkError reports that the upstream endpoint could not be reached.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %s", e.Endpoint, errorText(e.Err))
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UpstreamError carries the status and message of any other non-success response.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("upstream error (%d %s): %s", e.Status, http.StatusText(e.Status), e.Message)
}

// ErrorKind names the taxonomy bucket of err for logging and display.
func ErrorKind(err error) string {
	var (
		authErr     *AuthError
		networkErr  *NetworkError
		upstreamErr *UpstreamError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &authErr):
		return "auth"
	case errors.As(err, &networkErr):
		return "network"
	case errors.As(err, &upstreamErr):
		return "upstream"
	default:
		return "internal"
	}
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
