package smarttub

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the SmartTub client.
// All errors are defined here for easy discovery and consistent organization.
var (
	// Session errors
	ErrNotLoggedIn = errors.New("smarttub: not logged in (call Login first)")

	// ErrInvalidArgument is the base error for client-side validation
	// failures. Every specific validation error below wraps it, so
	// errors.Is(err, ErrInvalidArgument) matches any of them. Validation
	// runs before the request is built; no HTTP call is made.
	ErrInvalidArgument = errors.New("smarttub: invalid argument")

	// Credential validation errors
	ErrEmptyCredentials = fmt.Errorf("%w: username and password cannot be empty", ErrInvalidArgument)

	// Spa validation errors
	ErrEmptySpaID               = fmt.Errorf("%w: spa ID cannot be empty", ErrInvalidArgument)
	ErrInvalidHeatMode          = fmt.Errorf("%w: invalid heat mode", ErrInvalidArgument)
	ErrInvalidFiltrationMode    = fmt.Errorf("%w: invalid secondary filtration mode", ErrInvalidArgument)
	ErrInvalidTemperatureFormat = fmt.Errorf("%w: invalid temperature format", ErrInvalidArgument)
	ErrInvalidEnergyInterval    = fmt.Errorf("%w: energy interval must be DAY or MONTH", ErrInvalidArgument)
	ErrDateTimeRequired         = fmt.Errorf("%w: at least one of date or time is required", ErrInvalidArgument)

	// Light validation errors
	ErrInvalidLightMode = fmt.Errorf("%w: invalid light mode", ErrInvalidArgument)
	ErrLightIntensity   = fmt.Errorf("%w: intensity must be zero exactly when mode is OFF", ErrInvalidArgument)
)

// APIError represents a non-2xx response from the SmartTub API on an
// authenticated call.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("smarttub: API error %d: %s", e.StatusCode, e.Body)
}

// AuthenticationError represents a rejected login attempt.
type AuthenticationError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("smarttub: login failed (%d): %s", e.StatusCode, e.Body)
}

// IsNotLoggedIn returns true if the error indicates an operation was
// attempted before a successful Login.
func IsNotLoggedIn(err error) bool {
	return errors.Is(err, ErrNotLoggedIn)
}

// IsInvalidArgument returns true if the error is a client-side validation
// failure (no request was sent).
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsAuthenticationError returns true if the error indicates a rejected login.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsUnauthorized returns true if the error indicates the API rejected the
// bearer token (expired or revoked); re-login is required.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// IsNotFound returns true if the error indicates the resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsTimeout returns true if the error indicates a timeout.
func IsTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
