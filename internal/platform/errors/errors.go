package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks local validation failures; they never reach the network.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotAuthenticated means there is no usable session (missing or expired token).
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrOnboardingRequired means the user is logged in but has not finished onboarding.
	ErrOnboardingRequired = errors.New("onboarding required")
	ErrNotFound           = errors.New("not found")
	ErrNoLearningPaths    = errors.New("no learning paths")
	ErrNoOpenProject      = errors.New("no open project")
	ErrRunnerTimeout      = errors.New("runner timeout")
)

// APIError carries the server's detail message for a non-2xx response.
// Detail is surfaced to the user verbatim when present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unauthorized reports whether err is an API rejection of the bearer token.
func Unauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 401
	}
	return false
}
