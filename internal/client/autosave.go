// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ndenisov/sketchkeep/internal/logger"
)

// DefaultAutosaveInterval is used when the configured interval is zero or
// negative.
const DefaultAutosaveInterval = 30 * time.Second

const finalSaveTimeout = 5 * time.Second

// Autosave periodically pushes the open note's full canvas document to the
// server. One Autosave serves one open note at a time: Start for a new note
// stops the previous job first.
//
// A single in-flight save is allowed. A ticker trigger that fires while a
// save is still running is skipped, never queued, so slow saves cannot pile
// up behind each other.
type Autosave struct {
	cache  *NoteCache
	logger *logger.Logger

	mu     sync.Mutex
	noteID string
	source CanvasSource
	cancel context.CancelFunc
	wg     sync.WaitGroup

	inFlight atomic.Bool
}

// NewAutosave creates an idle autosave job bound to the cache. The job does
// nothing until Start is called.
func NewAutosave(cache *NoteCache, logger *logger.Logger) *Autosave {
	return &Autosave{cache: cache, logger: logger}
}

// Start begins autosaving the given note from source every interval. Any
// previously running job is stopped (with its final save) first. The
// background goroutine exits when ctx is cancelled or Stop is called.
func (a *Autosave) Start(ctx context.Context, noteID string, source CanvasSource, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}

	a.Stop()

	a.mu.Lock()
	a.noteID = noteID
	a.source = source
	jobCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := a.save(jobCtx); err != nil {
					a.logger.Err(err).Str("func", "*Autosave.Start").Str("note_id", noteID).Msg("autosave failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine, waits for it to exit, then performs
// one final best-effort save so the last edits are not lost when the note is
// closed. Safe to call when the job is not running.
func (a *Autosave) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	a.wg.Wait()

	ctx, ctxCancel := context.WithTimeout(context.Background(), finalSaveTimeout)
	defer ctxCancel()
	if err := a.save(ctx); err != nil {
		a.logger.Err(err).Str("func", "*Autosave.Stop").Msg("final save failed")
	}

	a.mu.Lock()
	a.noteID = ""
	a.source = nil
	a.mu.Unlock()
}

// SaveNow performs the same full-document save synchronously, for the manual
// save action. Returns nil without saving if a save is already in flight.
func (a *Autosave) SaveNow(ctx context.Context) error {
	return a.save(ctx)
}

func (a *Autosave) save(ctx context.Context) error {
	if !a.inFlight.CompareAndSwap(false, true) {
		// a save is still running, skip this trigger
		return nil
	}
	defer a.inFlight.Store(false)

	a.mu.Lock()
	noteID, source := a.noteID, a.source
	a.mu.Unlock()

	if noteID == "" || source == nil {
		return nil
	}

	doc, err := ComposeDocument(source)
	if err != nil {
		return fmt.Errorf("compose canvas document: %w", err)
	}

	if _, err = a.cache.SaveData(ctx, noteID, doc); err != nil {
		return fmt.Errorf("save canvas document: %w", err)
	}

	return nil
}
