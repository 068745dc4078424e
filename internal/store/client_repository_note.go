package store

import (
	"context"
	"fmt"

	"github.com/ndenisov/sketchkeep/internal/config"
	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// NewClientStorages opens the client-side SQLite snapshot database and
// wires the snapshot repository. Returns (nil, nil) when no snapshot path
// is configured: the offline snapshot is an optional feature.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (SnapshotRepository, error) {
	if cfg.SnapshotPath == "" {
		log.Info().Msg("no snapshot path configured, offline snapshot disabled")
		return nil, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return NewSnapshotRepository(db, log), nil
}

// ReplaceNotes rewrites the owner's snapshot inside a single transaction:
// the previous rows are dropped and the fresh set inserted. A failed
// replace leaves the old snapshot intact.
func (s *snapshotRepository) ReplaceNotes(ctx context.Context, ownerID string, notes []models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ReplaceNotes").
			Str("owner_id", ownerID).
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteOwnerSnapshot, ownerID); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ReplaceNotes").
			Str("owner_id", ownerID).
			Msg("failed to clear previous snapshot")
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSnapshotNote)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ReplaceNotes").
			Str("owner_id", ownerID).
			Msg("failed to prepare statement")
		return fmt.Errorf("failed to prepare snapshot statement: %w", err)
	}
	defer stmt.Close()

	for _, note := range notes {
		_, execErr := stmt.ExecContext(ctx,
			note.ID,
			note.OwnerID,
			note.Title,
			[]byte(note.Data),
			note.Starred,
			note.Archived,
			note.CreatedAt,
			note.UpdatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "snapshotRepository.ReplaceNotes").
				Str("note_id", note.ID).
				Msg("failed to insert snapshot note")
			return fmt.Errorf("failed to insert snapshot note %s: %w", note.ID, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "snapshotRepository.ReplaceNotes").
			Str("owner_id", ownerID).
			Msg("failed to commit snapshot transaction")
		return fmt.Errorf("failed to commit snapshot transaction: %w", commitErr)
	}

	log.Debug().
		Str("func", "snapshotRepository.ReplaceNotes").
		Str("owner_id", ownerID).
		Int("notes_count", len(notes)).
		Msg("snapshot replaced")

	return nil
}

// GetNotes reads the owner's snapshot back, most recently updated first.
func (s *snapshotRepository) GetNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getSnapshotNotes, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetNotes").
			Str("owner_id", ownerID).
			Msg("failed to query snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 20)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "snapshotRepository.GetNotes").
				Str("owner_id", ownerID).
				Msg("failed to scan snapshot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "snapshotRepository.GetNotes").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}
