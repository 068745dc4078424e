package service

import (
	"context"

	"github.com/ndenisov/sketchkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService owns the note CRUD contract consumed by the transport layer:
// identifier validation ahead of any store access, field constraints, and
// create defaults.
type NoteService interface {
	// CreateNote persists a new note for the owner. An empty title
	// becomes [models.DefaultTitle]; an empty document becomes
	// [models.DefaultCanvasDocument]. Returns the fully materialized note.
	CreateNote(ctx context.Context, title string, data models.CanvasDocument, ownerID string) (models.Note, error)

	// GetNote returns a single note by ID.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// GetOwnerNotes returns every note of the owner, most recently
	// updated first.
	GetOwnerNotes(ctx context.Context, ownerID string) ([]models.Note, error)

	// UpdateNote applies a partial update. Title length is re-validated
	// when present.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote permanently removes a note.
	DeleteNote(ctx context.Context, id string) error
}

// AuthService verifies bearer tokens issued by the external identity
// provider. Issuing tokens is not this application's business.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
