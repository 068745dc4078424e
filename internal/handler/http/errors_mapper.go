package http

import (
	"errors"
	"net/http"

	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/service"
	"github.com/ndenisov/sketchkeep/internal/store"
	"github.com/ndenisov/sketchkeep/internal/utils"
	"github.com/ndenisov/sketchkeep/models"
)

// statusFromError maps the domain error taxonomy onto HTTP status codes:
//
//	InvalidIdentifier → 400
//	NotFound          → 404
//	ValidationError   → 422
//	StoreUnavailable  → 503
//	anything else     → 500
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNoteNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrEmptyUpdate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// userFacingMessage keeps internal failure detail out of response bodies:
// recognised domain errors pass their message through, everything else is
// reported generically.
func userFacingMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}

func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status := statusFromError(err)

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: userFacingMessage(err, status)}, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
