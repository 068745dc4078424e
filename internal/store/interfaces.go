package store

import (
	"context"

	"github.com/ndenisov/sketchkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the persistence surface for notes. Identifier syntax is
// validated a layer above; implementations may assume well-formed IDs and
// concern themselves only with the store round trip.
type NoteRepository interface {
	// SaveNote inserts a new note and returns it fully materialized with
	// the store-assigned ID and timestamps.
	SaveNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNoteByID returns the note with the given ID, or
	// [ErrNoteNotFound].
	GetNoteByID(ctx context.Context, id string) (models.Note, error)

	// GetNotesByOwner returns every note of the owner, most recently
	// updated first. An owner with no notes yields an empty slice.
	GetNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error)

	// UpdateNote applies the non-nil fields of update to the note and
	// returns the updated row. updated_at is refreshed as a side effect
	// even when no other field changes.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote permanently removes the note. A second delete of the
	// same ID returns [ErrNoteNotFound].
	DeleteNote(ctx context.Context, id string) error
}
