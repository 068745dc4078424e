package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ndenisov/sketchkeep/internal/adapter"
	"github.com/ndenisov/sketchkeep/internal/config"
	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/store"
	"github.com/ndenisov/sketchkeep/internal/utils"
)

// App owns the client-side object graph: server adapter, offline snapshot,
// note cache, and the autosave job. The terminal UI is wired on top of it by
// the caller.
type App struct {
	ownerID  string
	interval time.Duration

	adapter  adapter.ServerAdapter
	cache    *NoteCache
	autosave *Autosave
	offline  bool

	logger *logger.Logger
}

// NewApp assembles the client from its configuration. The bearer token must
// be present: the owner ID is read from its subject claim without contacting
// the server.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ownerID, err := utils.ParseOwnerIDFromJWT(cfg.App.Token)
	if err != nil {
		return nil, fmt.Errorf("parse owner id from token: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter)
	serverAdapter.SetToken(cfg.App.Token)

	snapshot, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open offline snapshot: %w", err)
	}

	cache := NewNoteCache(serverAdapter, snapshot, ownerID, log)

	return &App{
		ownerID:  ownerID,
		interval: cfg.Workers.AutosaveInterval,
		adapter:  serverAdapter,
		cache:    cache,
		autosave: NewAutosave(cache, log),
		logger:   log,
	}, nil
}

// Bootstrap fills the cache from the server, falling back to the offline
// snapshot when the server cannot be reached. In the fallback case the app
// is marked offline and mutations will keep failing until the next
// successful Refresh.
func (a *App) Bootstrap(ctx context.Context) error {
	err := a.cache.Refresh(ctx)
	if err == nil {
		return nil
	}

	a.logger.Err(err).Str("func", "*App.Bootstrap").Msg("server unreachable, trying offline snapshot")

	if seedErr := a.cache.SeedFromSnapshot(ctx); seedErr != nil {
		if errors.Is(seedErr, store.ErrSnapshotDisabled) {
			return err
		}
		return errors.Join(err, seedErr)
	}

	a.offline = true
	return nil
}

// Cache returns the note cache.
func (a *App) Cache() *NoteCache { return a.cache }

// Autosave returns the autosave job.
func (a *App) Autosave() *Autosave { return a.autosave }

// AutosaveInterval returns the configured autosave period.
func (a *App) AutosaveInterval() time.Duration { return a.interval }

// OwnerID returns the authenticated owner's identifier.
func (a *App) OwnerID() string { return a.ownerID }

// Offline reports whether the app started from the offline snapshot.
func (a *App) Offline() bool { return a.offline }

// Close stops background work. The autosave job performs its final save.
func (a *App) Close() {
	a.autosave.Stop()
}
