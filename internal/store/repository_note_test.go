package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/models"
)

const selectNotesSQL = `SELECT id, owner_id, title, data, starred, archived, created_at, updated_at FROM notes`

var noteTestColumns = []string{
	"id", "owner_id", "title", "data", "starred", "archived", "created_at", "updated_at",
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) NoteRepository {
	t.Helper()
	return NewNoteRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func noteRowArgs(note models.Note) []driver.Value {
	return []driver.Value{
		note.ID, note.OwnerID, note.Title, []byte(note.Data),
		note.Starred, note.Archived, note.CreatedAt, note.UpdatedAt,
	}
}

func TestSaveNote(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	insertSQL := regexp.QuoteMeta(
		"INSERT INTO notes (id,owner_id,title,data,starred,archived) VALUES ($1,$2,$3,$4,$5,$6)" + returningClause,
	)

	t.Run("success: id assigned and row read back", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		input := models.Note{
			OwnerID: "owner-1",
			Title:   "Untitled",
			Data:    models.DefaultCanvasDocument(),
		}

		stored := input
		stored.ID = "ignored-by-mock"
		stored.CreatedAt = now
		stored.UpdatedAt = now

		mock.ExpectQuery(insertSQL).
			WithArgs(sqlmock.AnyArg(), input.OwnerID, input.Title, []byte(input.Data), false, false).
			WillReturnRows(sqlmock.NewRows(noteTestColumns).AddRow(noteRowArgs(stored)...))

		got, err := repo.SaveNote(testContext(), input)
		require.NoError(t, err)

		assert.Equal(t, stored.Title, got.Title)
		assert.Equal(t, stored.OwnerID, got.OwnerID)
		assert.Equal(t, now, got.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: insert fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(insertSQL).
			WillReturnError(errors.New("duplicate key"))

		_, err := repo.SaveNote(testContext(), models.Note{OwnerID: "owner-1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestGetNoteByID(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	selectSQL := regexp.QuoteMeta(selectNotesSQL + ` WHERE id = $1`)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		want := models.Note{
			ID:        "note-1",
			OwnerID:   "owner-1",
			Title:     "roadmap",
			Data:      models.CanvasDocument(`{"elements":[]}`),
			Starred:   true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		mock.ExpectQuery(selectSQL).
			WithArgs("note-1").
			WillReturnRows(sqlmock.NewRows(noteTestColumns).AddRow(noteRowArgs(want)...))

		got, err := repo.GetNoteByID(testContext(), "note-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(selectSQL).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetNoteByID(testContext(), "missing")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestGetNotesByOwner(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	selectSQL := regexp.QuoteMeta(selectNotesSQL + ` WHERE owner_id = $1 ORDER BY updated_at DESC`)

	t.Run("success: multiple rows in recency order", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		newer := models.Note{
			ID: "note-2", OwnerID: "owner-1", Title: "newer",
			Data: models.CanvasDocument(`{}`), CreatedAt: now, UpdatedAt: now,
		}
		older := models.Note{
			ID: "note-1", OwnerID: "owner-1", Title: "older",
			Data: models.CanvasDocument(`{}`), CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
		}

		mock.ExpectQuery(selectSQL).
			WithArgs("owner-1").
			WillReturnRows(sqlmock.NewRows(noteTestColumns).
				AddRow(noteRowArgs(newer)...).
				AddRow(noteRowArgs(older)...))

		got, err := repo.GetNotesByOwner(testContext(), "owner-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "note-2", got[0].ID)
		assert.Equal(t, "note-1", got[1].ID)
	})

	t.Run("success: owner with no notes yields empty slice", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(selectSQL).
			WithArgs("owner-2").
			WillReturnRows(sqlmock.NewRows(noteTestColumns))

		got, err := repo.GetNotesByOwner(testContext(), "owner-2")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: query fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(selectSQL).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetNotesByOwner(testContext(), "owner-1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestUpdateNote(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("success: partial update returns refreshed row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		title := "renamed"
		updateSQL := regexp.QuoteMeta(
			"UPDATE notes SET updated_at = now(), title = $1 WHERE id = $2" + returningClause,
		)

		want := models.Note{
			ID: "note-1", OwnerID: "owner-1", Title: title,
			Data: models.CanvasDocument(`{}`), CreatedAt: now.Add(-time.Hour), UpdatedAt: now,
		}

		mock.ExpectQuery(updateSQL).
			WithArgs(title, "note-1").
			WillReturnRows(sqlmock.NewRows(noteTestColumns).AddRow(noteRowArgs(want)...))

		got, err := repo.UpdateNote(testContext(), "note-1", models.NoteUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		starred := true
		updateSQL := regexp.QuoteMeta(
			"UPDATE notes SET updated_at = now(), starred = $1 WHERE id = $2" + returningClause,
		)

		mock.ExpectQuery(updateSQL).
			WithArgs(true, "missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateNote(testContext(), "missing", models.NoteUpdate{Starred: &starred})
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestDeleteNote(t *testing.T) {
	deleteSQL := regexp.QuoteMeta(`DELETE FROM notes WHERE id = $1`)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(deleteSQL).
			WithArgs("note-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteNote(testContext(), "note-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second delete of same id reports not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(deleteSQL).
			WithArgs("note-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteNote(testContext(), "note-1")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})

	t.Run("error: exec fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(deleteSQL).
			WillReturnError(errors.New("connection refused"))

		err := repo.DeleteNote(testContext(), "note-1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
