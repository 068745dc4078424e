// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/store"
	"github.com/ndenisov/sketchkeep/internal/utils"
	"github.com/ndenisov/sketchkeep/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// validateTitle enforces the title length bound. The bound is counted in
// characters, not bytes.
func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (s *noteService) CreateNote(ctx context.Context, title string, data models.CanvasDocument, ownerID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(ownerID) {
		log.Warn().
			Str("func", "noteService.CreateNote").
			Msg("malformed owner id")
		return models.Note{}, ErrInvalidIdentifier
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = models.DefaultTitle
	}
	if err := validateTitle(title); err != nil {
		log.Warn().
			Str("func", "noteService.CreateNote").
			Str("owner_id", ownerID).
			Int("title_length", utf8.RuneCountInString(title)).
			Msg("title exceeds length bound")
		return models.Note{}, err
	}

	if data.IsZero() {
		data = models.DefaultCanvasDocument()
	}

	return s.noteRepository.SaveNote(ctx, models.Note{
		Title:    title,
		Data:     data,
		OwnerID:  ownerID,
		Starred:  false,
		Archived: false,
	})
}

func (s *noteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		log.Warn().
			Str("func", "noteService.GetNote").
			Msg("malformed note id")
		return models.Note{}, ErrInvalidIdentifier
	}

	return s.noteRepository.GetNoteByID(ctx, id)
}

func (s *noteService) GetOwnerNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(ownerID) {
		log.Warn().
			Str("func", "noteService.GetOwnerNotes").
			Msg("malformed owner id")
		return nil, ErrInvalidIdentifier
	}

	return s.noteRepository.GetNotesByOwner(ctx, ownerID)
}

func (s *noteService) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		log.Warn().
			Str("func", "noteService.UpdateNote").
			Msg("malformed note id")
		return models.Note{}, ErrInvalidIdentifier
	}

	if update.IsEmpty() {
		log.Warn().
			Str("func", "noteService.UpdateNote").
			Str("note_id", id).
			Msg("empty update request")
		return models.Note{}, ErrEmptyUpdate
	}

	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			trimmed = models.DefaultTitle
		}
		if err := validateTitle(trimmed); err != nil {
			log.Warn().
				Str("func", "noteService.UpdateNote").
				Str("note_id", id).
				Int("title_length", utf8.RuneCountInString(trimmed)).
				Msg("title exceeds length bound")
			return models.Note{}, err
		}
		update.Title = &trimmed
	}

	return s.noteRepository.UpdateNote(ctx, id, update)
}

func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		log.Warn().
			Str("func", "noteService.DeleteNote").
			Msg("malformed note id")
		return ErrInvalidIdentifier
	}

	return s.noteRepository.DeleteNote(ctx, id)
}
