// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ndenisov/sketchkeep/internal/adapter"
	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/store"
	"github.com/ndenisov/sketchkeep/models"
)

// Tab selects which slice of the cached notes the dashboard shows.
type Tab int

const (
	TabAll Tab = iota
	TabStarred
	TabArchived
)

// NoteCache is the client's in-memory copy of the owner's notes. It is
// populated by a single list call and then filtered locally; every mutation
// goes to the server first and is reflected in the cache only after the
// server confirms it.
type NoteCache struct {
	adapter  adapter.ServerAdapter
	snapshot store.SnapshotRepository
	ownerID  string
	logger   *logger.Logger

	mu    sync.RWMutex
	notes []models.Note
}

// NewNoteCache creates an empty cache. snapshot may be nil when the offline
// snapshot is disabled.
func NewNoteCache(serverAdapter adapter.ServerAdapter, snapshot store.SnapshotRepository, ownerID string, logger *logger.Logger) *NoteCache {
	return &NoteCache{
		adapter:  serverAdapter,
		snapshot: snapshot,
		ownerID:  ownerID,
		logger:   logger,
	}
}

// Refresh replaces the cache contents with the server's current note list
// and overwrites the offline snapshot. On error the cache is left unchanged.
func (c *NoteCache) Refresh(ctx context.Context) error {
	notes, err := c.adapter.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("refresh note cache: %w", err)
	}

	c.mu.Lock()
	c.notes = notes
	c.mu.Unlock()

	if c.snapshot != nil {
		if err = c.snapshot.ReplaceNotes(ctx, c.ownerID, notes); err != nil {
			c.logger.Err(err).Str("func", "*NoteCache.Refresh").Msg("error writing offline snapshot")
		}
	}

	return nil
}

// SeedFromSnapshot loads the last stored offline snapshot into the cache.
// Used when the server is unreachable at startup.
func (c *NoteCache) SeedFromSnapshot(ctx context.Context) error {
	if c.snapshot == nil {
		return store.ErrSnapshotDisabled
	}

	notes, err := c.snapshot.GetNotes(ctx, c.ownerID)
	if err != nil {
		return fmt.Errorf("seed note cache from snapshot: %w", err)
	}

	c.mu.Lock()
	c.notes = notes
	c.mu.Unlock()

	return nil
}

// Notes returns a copy of all cached notes, most recently updated first.
func (c *NoteCache) Notes() []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Get returns the cached note with the given ID.
func (c *NoteCache) Get(noteID string) (models.Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, note := range c.notes {
		if note.ID == noteID {
			return note, true
		}
	}
	return models.Note{}, false
}

// Filter returns the cached notes visible on the given tab, narrowed by a
// case-insensitive title substring search. An empty search matches
// everything.
func (c *NoteCache) Filter(tab Tab, search string) []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(search))

	var out []models.Note
	for _, note := range c.notes {
		if !tabMatches(tab, note) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(note.Title), needle) {
			continue
		}
		out = append(out, note)
	}
	return out
}

func tabMatches(tab Tab, note models.Note) bool {
	switch tab {
	case TabStarred:
		return note.Starred && !note.Archived
	case TabArchived:
		return note.Archived
	default:
		return !note.Archived
	}
}

// Create creates a note on the server and, once confirmed, adds the stored
// record to the front of the cache.
func (c *NoteCache) Create(ctx context.Context, title string) (models.Note, error) {
	note, err := c.adapter.CreateNote(ctx, models.CreateNoteRequest{Title: title})
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	c.mu.Lock()
	c.notes = append([]models.Note{note}, c.notes...)
	c.mu.Unlock()

	return note, nil
}

// Rename changes a note's title.
func (c *NoteCache) Rename(ctx context.Context, noteID string, title string) (models.Note, error) {
	return c.update(ctx, noteID, models.NoteUpdate{Title: &title})
}

// SetStarred toggles the starred flag.
func (c *NoteCache) SetStarred(ctx context.Context, noteID string, starred bool) (models.Note, error) {
	return c.update(ctx, noteID, models.NoteUpdate{Starred: &starred})
}

// SetArchived toggles the archived flag.
func (c *NoteCache) SetArchived(ctx context.Context, noteID string, archived bool) (models.Note, error) {
	return c.update(ctx, noteID, models.NoteUpdate{Archived: &archived})
}

// SaveData overwrites a note's canvas document.
func (c *NoteCache) SaveData(ctx context.Context, noteID string, data models.CanvasDocument) (models.Note, error) {
	return c.update(ctx, noteID, models.NoteUpdate{Data: &data})
}

func (c *NoteCache) update(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	note, err := c.adapter.UpdateNote(ctx, noteID, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}

	c.mu.Lock()
	for i := range c.notes {
		if c.notes[i].ID == note.ID {
			c.notes[i] = note
			break
		}
	}
	sort.SliceStable(c.notes, func(i, j int) bool {
		return c.notes[i].UpdatedAt.After(c.notes[j].UpdatedAt)
	})
	c.mu.Unlock()

	return note, nil
}

// Delete permanently removes a note on the server and, once confirmed, drops
// it from the cache.
func (c *NoteCache) Delete(ctx context.Context, noteID string) error {
	if err := c.adapter.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	c.mu.Lock()
	for i := range c.notes {
		if c.notes[i].ID == noteID {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	return nil
}
