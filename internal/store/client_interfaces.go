package store

import (
	"context"

	"github.com/ndenisov/sketchkeep/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotRepository is the client-side offline copy of the owner's notes.
// It is a cache seed, not a second source of truth: the whole snapshot is
// replaced after every successful list refresh, and read back only when
// the server cannot be reached at startup.
type SnapshotRepository interface {
	// ReplaceNotes atomically replaces the snapshot of the given owner
	// with the provided set.
	ReplaceNotes(ctx context.Context, ownerID string, notes []models.Note) error

	// GetNotes returns the snapshot of the given owner, most recently
	// updated first. An empty snapshot yields an empty slice.
	GetNotes(ctx context.Context, ownerID string) ([]models.Note, error)
}
