package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// requested without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// parsed as "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the token part of the header is an
	// empty string.
	ErrEmptyToken = errors.New("empty token")

	// ErrNoOwnerInContext is returned when a handler runs without the
	// auth middleware having stored an owner ID, which indicates a
	// routing mistake rather than a client error.
	ErrNoOwnerInContext = errors.New("no owner id in request context")
)
