// Package apperrors defines the error kinds the service layer returns and
// the HTTP layer maps to status codes. Services wrap these with context via
// fmt.Errorf and %w; handlers match with errors.Is.
package apperrors

import "errors"

var (
	// ErrInvalidArgument marks input that failed validation or parsing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthenticated marks missing or bad credentials.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden marks an authenticated caller acting on a resource
	// they do not own.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateReview marks a second review by the same user for the
	// same movie.
	ErrDuplicateReview = errors.New("user has already reviewed this movie")

	// ErrDuplicateUser marks a registration with an email or username
	// that is already taken.
	ErrDuplicateUser = errors.New("already registered")

	// ErrUpstreamUnavailable marks a metadata provider outage, timeout or
	// open circuit breaker.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
