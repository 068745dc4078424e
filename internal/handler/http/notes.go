package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/utils"
	"github.com/ndenisov/sketchkeep/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoOwnerInContext).Str("func", "*Handler.createNote").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), body.Title, body.Data, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		writeError(w, log, err)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error writing response")
	}
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	noteID := chi.URLParam(r, "noteID")

	note, err := h.services.NoteService.GetNote(r.Context(), noteID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Str("note_id", noteID).Msg("error fetching note")
		writeError(w, log, err)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Msg("error writing response")
	}
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoOwnerInContext).Str("func", "*Handler.listNotes").Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.GetOwnerNotes(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error fetching owner notes")
		writeError(w, log, err)
		return
	}

	response := models.NotesResponse{
		Notes:  notes,
		Length: len(notes),
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error writing response")
	}
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	noteID := chi.URLParam(r, "noteID")

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), noteID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("note_id", noteID).Msg("error updating note")
		writeError(w, log, err)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("error writing response")
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	noteID := chi.URLParam(r, "noteID")

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("note_id", noteID).Msg("error deleting note")
		writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
