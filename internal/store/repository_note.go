package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/utils"
	"github.com/ndenisov/sketchkeep/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. It executes all note CRUD operations directly against
// the "notes" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (note_id, owner_id).
type noteRepository struct {
	*DB
	uuidGen *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:      db,
		uuidGen: utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	var data []byte

	err := row.Scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&data,
		&note.Starred,
		&note.Archived,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.Data = models.CanvasDocument(data)
	return note, nil
}

// SaveNote inserts a new note. The record identifier is assigned here
// (UUIDv7) and the timestamps by the database; the fully materialized row
// is read back via INSERT ... RETURNING.
func (r *noteRepository) SaveNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.ID = r.uuidGen.Generate()

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNote").
			Str("owner_id", note.OwnerID).
			Msg("failed to build insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, scanErr := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "noteRepository.SaveNote").
			Str("owner_id", note.OwnerID).
			Msg("failed to insert note")
		return models.Note{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr))
	}

	log.Info().
		Str("func", "noteRepository.SaveNote").
		Str("note_id", saved.ID).
		Str("owner_id", saved.OwnerID).
		Msg("successfully saved note")

	return saved, nil
}

// GetNoteByID retrieves a single note. Returns [ErrNoteNotFound] when no
// record matches.
func (r *noteRepository) GetNoteByID(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteByIDQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNoteByID").
			Str("note_id", id).
			Msg("failed to build select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, scanErr := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "noteRepository.GetNoteByID").
				Str("note_id", id).
				Msg("note not found")
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(scanErr).
			Str("func", "noteRepository.GetNoteByID").
			Str("note_id", id).
			Msg("failed to query note")
		return models.Note{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr))
	}

	return note, nil
}

// GetNotesByOwner retrieves every note owned by the given user, ordered by
// updated_at descending.
//
// Returns an empty slice when no records are found.
func (r *noteRepository) GetNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNotesByOwner").
			Str("owner_id", ownerID).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.GetNotesByOwner").
			Str("owner_id", ownerID).
			Msg("failed to execute query for getting owner notes")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr))
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 20)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.GetNotesByOwner").
				Str("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.GetNotesByOwner").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// UpdateNote applies the non-nil fields of update to a single note and
// reads the refreshed row back via UPDATE ... RETURNING. Returns
// [ErrNoteNotFound] when the target does not exist.
func (r *noteRepository) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(id, update)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", id).
			Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, scanErr := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "noteRepository.UpdateNote").
				Str("note_id", id).
				Msg("note not found")
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(scanErr).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", id).
			Msg("failed to execute update query")
		return models.Note{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr))
	}

	log.Info().
		Str("func", "noteRepository.UpdateNote").
		Str("note_id", id).
		Msg("successfully updated note")

	return note, nil
}

// DeleteNote permanently removes a note. The delete is a hard delete; no
// tombstone remains, so a repeated delete reports [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to execute delete query")
		return r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, execErr))
	}

	affected, raErr := result.RowsAffected()
	if raErr != nil {
		log.Err(raErr).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, raErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Msg("note not found")
		return ErrNoteNotFound
	}

	log.Info().
		Str("func", "noteRepository.DeleteNote").
		Str("note_id", id).
		Msg("successfully deleted note")

	return nil
}
