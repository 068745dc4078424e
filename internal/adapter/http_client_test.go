package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndenisov/sketchkeep/internal/config"
	"github.com/ndenisov/sketchkeep/models"
)

func newAdapterForTest(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	})
	a.SetToken("test-token")
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestHTTPAdapterCreateNote(t *testing.T) {
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes/", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req models.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "roadmap", req.Title)

		writeJSON(t, w, http.StatusCreated, models.Note{ID: "n1", Title: req.Title})
	})

	a := newAdapterForTest(t, handler)

	note, err := a.CreateNote(ctx, models.CreateNoteRequest{Title: "roadmap"})
	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
}

func TestHTTPAdapterListNotes(t *testing.T) {
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.NotesResponse{
			Notes:  []models.Note{{ID: "n2"}, {ID: "n1"}},
			Length: 2,
		})
	})

	a := newAdapterForTest(t, handler)

	notes, err := a.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].ID)
}

func TestHTTPAdapterUpdateNote(t *testing.T) {
	ctx := context.Background()
	title := "renamed"

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/notes/n1", r.URL.Path)

		var update models.NoteUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.Title)
		assert.Equal(t, title, *update.Title)

		writeJSON(t, w, http.StatusOK, models.Note{ID: "n1", Title: *update.Title})
	})

	a := newAdapterForTest(t, handler)

	note, err := a.UpdateNote(ctx, "n1", models.NoteUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, note.Title)
}

func TestHTTPAdapterErrorMapping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "400", status: http.StatusBadRequest, body: `{"error":"malformed identifier"}`, wantErr: ErrBadRequest},
		{name: "401", status: http.StatusUnauthorized, body: `{"error":"token expired"}`, wantErr: ErrUnauthorized},
		{name: "404", status: http.StatusNotFound, body: `{"error":"note was not found"}`, wantErr: ErrNotFound},
		{name: "422", status: http.StatusUnprocessableEntity, body: `{"error":"title is too long"}`, wantErr: ErrValidation},
		{name: "503", status: http.StatusServiceUnavailable, body: `{"error":"store is unavailable"}`, wantErr: ErrServerUnavailable},
		{name: "500", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			a := newAdapterForTest(t, handler)

			_, err := a.GetNote(ctx, "n1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("non-JSON error body still maps", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "plain text failure", http.StatusNotFound)
		})

		a := newAdapterForTest(t, handler)

		err := a.DeleteNote(ctx, "n1")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "plain text failure")
	})
}

func TestHTTPAdapterDeleteNote(t *testing.T) {
	ctx := context.Background()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/n1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	a := newAdapterForTest(t, handler)

	require.NoError(t, a.DeleteNote(ctx, "n1"))
}

func TestHTTPAdapterTokenHandling(t *testing.T) {
	a := NewHTTPServerAdapter(config.ClientAdapter{})

	assert.Empty(t, a.Token())

	a.SetToken("  spaced-token  ")
	assert.Equal(t, "spaced-token", a.Token())
}
