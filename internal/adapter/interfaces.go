// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

// Package adapter provides transport-layer abstractions for communicating
// with the sketchkeep server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// cache and autosave machinery from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ndenisov/sketchkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sketchkeep
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// CreateNote creates a note on the server and returns the stored record
	// with server-assigned identifier and timestamps.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// GetNote fetches a single note by its identifier. Returns a wrapped
	// [ErrNotFound] if the server has no such note.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// ListNotes fetches every note of the authenticated owner, most recently
	// updated first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// UpdateNote pushes a partial update and returns the note as stored after
	// the update, including the bumped UpdatedAt. Returns a wrapped
	// [ErrValidation] if the server rejects the update payload.
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote permanently removes a note. Returns a wrapped [ErrNotFound]
	// if the note was already deleted.
	DeleteNote(ctx context.Context, noteID string) error
}
