package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ndenisov/sketchkeep/internal/adapter"
	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/mock"
	"github.com/ndenisov/sketchkeep/internal/store"
	"github.com/ndenisov/sketchkeep/models"
)

const testOwnerID = "0191b3a9-1111-7000-8000-00000000000f"

type cacheMocks struct {
	adapter  *mock.MockServerAdapter
	snapshot *mock.MockSnapshotRepository
}

func newCacheForTest(t *testing.T) (*NoteCache, cacheMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := cacheMocks{
		adapter:  mock.NewMockServerAdapter(ctrl),
		snapshot: mock.NewMockSnapshotRepository(ctrl),
	}
	cache := NewNoteCache(mocks.adapter, mocks.snapshot, testOwnerID, logger.Nop())
	return cache, mocks
}

func testNotes() []models.Note {
	now := time.Now()
	return []models.Note{
		{ID: "n1", Title: "Meeting Notes", UpdatedAt: now},
		{ID: "n2", Title: "Wiring sketch", Starred: true, UpdatedAt: now.Add(-time.Minute)},
		{ID: "n3", Title: "Old meeting", Archived: true, UpdatedAt: now.Add(-time.Hour)},
		{ID: "n4", Title: "Starred but archived", Starred: true, Archived: true, UpdatedAt: now.Add(-2 * time.Hour)},
	}
}

func seedCache(t *testing.T, cache *NoteCache, mocks cacheMocks, notes []models.Note) {
	t.Helper()
	ctx := context.Background()
	mocks.adapter.EXPECT().ListNotes(ctx).Return(notes, nil)
	mocks.snapshot.EXPECT().ReplaceNotes(ctx, testOwnerID, notes).Return(nil)
	require.NoError(t, cache.Refresh(ctx))
}

func TestNoteCacheRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces contents and rewrites the snapshot", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		notes := testNotes()

		seedCache(t, cache, mocks, notes)

		assert.Len(t, cache.Notes(), len(notes))
	})

	t.Run("adapter failure leaves the cache unchanged", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		mocks.adapter.EXPECT().ListNotes(ctx).Return(nil, adapter.ErrServerUnavailable)

		err := cache.Refresh(ctx)
		assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
		assert.Len(t, cache.Notes(), 4)
	})

	t.Run("snapshot write failure is swallowed", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		notes := testNotes()

		mocks.adapter.EXPECT().ListNotes(ctx).Return(notes, nil)
		mocks.snapshot.EXPECT().ReplaceNotes(ctx, testOwnerID, notes).Return(errors.New("disk full"))

		assert.NoError(t, cache.Refresh(ctx))
		assert.Len(t, cache.Notes(), 4)
	})
}

func TestNoteCacheSeedFromSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the stored snapshot", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)

		mocks.snapshot.EXPECT().GetNotes(ctx, testOwnerID).Return(testNotes(), nil)

		require.NoError(t, cache.SeedFromSnapshot(ctx))
		assert.Len(t, cache.Notes(), 4)
	})

	t.Run("disabled snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := NewNoteCache(mock.NewMockServerAdapter(ctrl), nil, testOwnerID, logger.Nop())

		err := cache.SeedFromSnapshot(ctx)
		assert.ErrorIs(t, err, store.ErrSnapshotDisabled)
	})
}

func TestNoteCacheFilter(t *testing.T) {
	cache, mocks := newCacheForTest(t)
	seedCache(t, cache, mocks, testNotes())

	tests := []struct {
		name    string
		tab     Tab
		search  string
		wantIDs []string
	}{
		{name: "all excludes archived", tab: TabAll, wantIDs: []string{"n1", "n2"}},
		{name: "starred excludes archived starred", tab: TabStarred, wantIDs: []string{"n2"}},
		{name: "archived shows archived regardless of star", tab: TabArchived, wantIDs: []string{"n3", "n4"}},
		{name: "search is case-insensitive substring", tab: TabAll, search: "MEETING", wantIDs: []string{"n1"}},
		{name: "search applies within the archived tab", tab: TabArchived, search: "meeting", wantIDs: []string{"n3"}},
		{name: "no match", tab: TabAll, search: "zzz", wantIDs: []string{}},
		{name: "blank search is a no-op", tab: TabAll, search: "   ", wantIDs: []string{"n1", "n2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cache.Filter(tt.tab, tt.search)
			ids := make([]string, 0, len(got))
			for _, note := range got {
				ids = append(ids, note.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestNoteCacheCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed create lands at the front", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		created := models.Note{ID: "n5", Title: "fresh", UpdatedAt: time.Now().Add(time.Minute)}
		mocks.adapter.EXPECT().
			CreateNote(ctx, models.CreateNoteRequest{Title: "fresh"}).
			Return(created, nil)

		got, err := cache.Create(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, created, got)

		notes := cache.Notes()
		require.Len(t, notes, 5)
		assert.Equal(t, "n5", notes[0].ID)
	})

	t.Run("rejected create leaves the cache unchanged", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		mocks.adapter.EXPECT().
			CreateNote(ctx, gomock.Any()).
			Return(models.Note{}, adapter.ErrValidation)

		_, err := cache.Create(ctx, "way too long")
		assert.ErrorIs(t, err, adapter.ErrValidation)
		assert.Len(t, cache.Notes(), 4)
	})
}

func TestNoteCacheMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed star is reflected and reordered by recency", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		starred := true
		updated := models.Note{ID: "n2", Title: "Wiring sketch", Starred: true, UpdatedAt: time.Now().Add(time.Minute)}

		mocks.adapter.EXPECT().
			UpdateNote(ctx, "n2", models.NoteUpdate{Starred: &starred}).
			Return(updated, nil)

		got, err := cache.SetStarred(ctx, "n2", true)
		require.NoError(t, err)
		assert.True(t, got.Starred)

		// freshest update comes first
		notes := cache.Notes()
		assert.Equal(t, "n2", notes[0].ID)
	})

	t.Run("failed mutation leaves the cached copy untouched", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		mocks.adapter.EXPECT().
			UpdateNote(ctx, "n1", gomock.Any()).
			Return(models.Note{}, adapter.ErrServerUnavailable)

		_, err := cache.Rename(ctx, "n1", "new title")
		assert.ErrorIs(t, err, adapter.ErrServerUnavailable)

		note, ok := cache.Get("n1")
		require.True(t, ok)
		assert.Equal(t, "Meeting Notes", note.Title)
	})

	t.Run("save data overwrites the cached document", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		doc := models.CanvasDocument(`{"elements":[{"type":"ellipse"}]}`)
		updated := models.Note{ID: "n1", Title: "Meeting Notes", Data: doc, UpdatedAt: time.Now().Add(time.Minute)}

		mocks.adapter.EXPECT().
			UpdateNote(ctx, "n1", models.NoteUpdate{Data: &doc}).
			Return(updated, nil)

		_, err := cache.SaveData(ctx, "n1", doc)
		require.NoError(t, err)

		note, ok := cache.Get("n1")
		require.True(t, ok)
		assert.Equal(t, doc, note.Data)
	})
}

func TestNoteCacheDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed delete drops the note", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		mocks.adapter.EXPECT().DeleteNote(ctx, "n1").Return(nil)

		require.NoError(t, cache.Delete(ctx, "n1"))

		_, ok := cache.Get("n1")
		assert.False(t, ok)
		assert.Len(t, cache.Notes(), 3)
	})

	t.Run("failed delete keeps the note", func(t *testing.T) {
		cache, mocks := newCacheForTest(t)
		seedCache(t, cache, mocks, testNotes())

		mocks.adapter.EXPECT().DeleteNote(ctx, "n1").Return(adapter.ErrNotFound)

		err := cache.Delete(ctx, "n1")
		assert.ErrorIs(t, err, adapter.ErrNotFound)
		assert.Len(t, cache.Notes(), 4)
	})
}
