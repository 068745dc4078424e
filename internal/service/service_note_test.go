package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/mock"
	"github.com/ndenisov/sketchkeep/internal/store"
	"github.com/ndenisov/sketchkeep/models"
)

const (
	testOwnerID = "0191b3a9-1111-7000-8000-00000000000f"
	testNoteID  = "0191b3a9-2222-7000-8000-000000000001"
)

func newNoteServiceForTest(t *testing.T) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(repo, logger.Nop()), repo
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("empty title becomes default, empty data becomes default document", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)

		repo.EXPECT().
			SaveNote(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, note models.Note) (models.Note, error) {
				assert.Equal(t, models.DefaultTitle, note.Title)
				assert.JSONEq(t, string(models.DefaultCanvasDocument()), string(note.Data))
				assert.Equal(t, testOwnerID, note.OwnerID)
				assert.False(t, note.Starred)
				assert.False(t, note.Archived)
				note.ID = testNoteID
				return note, nil
			})

		got, err := svc.CreateNote(ctx, "   ", nil, testOwnerID)
		require.NoError(t, err)
		assert.Equal(t, testNoteID, got.ID)
	})

	t.Run("explicit title and data pass through trimmed", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)
		doc := models.CanvasDocument(`{"elements":[{"type":"arrow"}]}`)

		repo.EXPECT().
			SaveNote(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, note models.Note) (models.Note, error) {
				assert.Equal(t, "wiring sketch", note.Title)
				assert.Equal(t, doc, note.Data)
				return note, nil
			})

		_, err := svc.CreateNote(ctx, "  wiring sketch  ", doc, testOwnerID)
		require.NoError(t, err)
	})

	t.Run("title at the bound is accepted", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)
		title := strings.Repeat("x", models.MaxTitleLength)

		repo.EXPECT().
			SaveNote(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, note models.Note) (models.Note, error) {
				return note, nil
			})

		_, err := svc.CreateNote(ctx, title, nil, testOwnerID)
		require.NoError(t, err)
	})

	t.Run("title over the bound is rejected before the store", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)

		_, err := svc.CreateNote(ctx, strings.Repeat("x", models.MaxTitleLength+1), nil, testOwnerID)
		assert.ErrorIs(t, err, ErrTitleTooLong)
	})

	t.Run("length bound counts characters, not bytes", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)

		// 100 two-byte characters is within the bound
		repo.EXPECT().
			SaveNote(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, note models.Note) (models.Note, error) {
				return note, nil
			})

		_, err := svc.CreateNote(ctx, strings.Repeat("я", models.MaxTitleLength), nil, testOwnerID)
		require.NoError(t, err)
	})

	t.Run("malformed owner id is rejected before the store", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)

		_, err := svc.CreateNote(ctx, "title", nil, "not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}

func TestGetNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)
		want := models.Note{ID: testNoteID, Title: "roadmap"}

		repo.EXPECT().GetNoteByID(ctx, testNoteID).Return(want, nil)

		got, err := svc.GetNote(ctx, testNoteID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)

		_, err := svc.GetNote(ctx, "42")
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})

	t.Run("store not found passes through", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)

		repo.EXPECT().GetNoteByID(ctx, testNoteID).Return(models.Note{}, store.ErrNoteNotFound)

		_, err := svc.GetNote(ctx, testNoteID)
		assert.ErrorIs(t, err, store.ErrNoteNotFound)
	})
}

func TestGetOwnerNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)
		want := []models.Note{{ID: testNoteID}}

		repo.EXPECT().GetNotesByOwner(ctx, testOwnerID).Return(want, nil)

		got, err := svc.GetOwnerNotes(ctx, testOwnerID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("malformed owner id", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)

		_, err := svc.GetOwnerNotes(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("empty update is rejected before the store", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)

		_, err := svc.UpdateNote(ctx, testNoteID, models.NoteUpdate{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("blank title update falls back to default", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)
		blank := "   "

		repo.EXPECT().
			UpdateNote(ctx, testNoteID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, update models.NoteUpdate) (models.Note, error) {
				require.NotNil(t, update.Title)
				assert.Equal(t, models.DefaultTitle, *update.Title)
				return models.Note{ID: testNoteID, Title: *update.Title}, nil
			})

		got, err := svc.UpdateNote(ctx, testNoteID, models.NoteUpdate{Title: &blank})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultTitle, got.Title)
	})

	t.Run("title length re-validated on update", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)
		long := strings.Repeat("x", models.MaxTitleLength+1)

		_, err := svc.UpdateNote(ctx, testNoteID, models.NoteUpdate{Title: &long})
		assert.ErrorIs(t, err, ErrTitleTooLong)
	})

	t.Run("flag-only update passes through", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)
		archived := true

		repo.EXPECT().
			UpdateNote(ctx, testNoteID, models.NoteUpdate{Archived: &archived}).
			Return(models.Note{ID: testNoteID, Archived: true}, nil)

		got, err := svc.UpdateNote(ctx, testNoteID, models.NoteUpdate{Archived: &archived})
		require.NoError(t, err)
		assert.True(t, got.Archived)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)
		starred := true

		_, err := svc.UpdateNote(ctx, "bogus", models.NoteUpdate{Starred: &starred})
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)

		repo.EXPECT().DeleteNote(ctx, testNoteID).Return(nil)

		require.NoError(t, svc.DeleteNote(ctx, testNoteID))
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newNoteServiceForTest(t)

		err := svc.DeleteNote(ctx, "../etc/passwd")
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		svc, repo := newNoteServiceForTest(t)

		repo.EXPECT().DeleteNote(ctx, testNoteID).Return(store.ErrNoteNotFound)

		err := svc.DeleteNote(ctx, testNoteID)
		assert.ErrorIs(t, err, store.ErrNoteNotFound)
	})
}
