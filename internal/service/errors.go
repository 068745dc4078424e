package service

import "errors"

var (
	// ErrInvalidIdentifier is returned when a note or owner identifier is
	// not syntactically well-formed. Checked before any store round trip,
	// so malformed input produces a cheap, uniform error instead of a
	// store-specific one.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrTitleTooLong is returned when a title exceeds
	// [models.MaxTitleLength] characters.
	ErrTitleTooLong = errors.New("title is too long")

	// ErrEmptyUpdate is returned when an update request carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")

	// ErrTokenIsExpired is returned when a bearer token's expiration claim
	// lies in the past.
	ErrTokenIsExpired = errors.New("token is expired")
)
