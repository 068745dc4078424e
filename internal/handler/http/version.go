package http

import (
	"net/http"

	"github.com/ndenisov/sketchkeep/internal/logger"
	"github.com/ndenisov/sketchkeep/internal/utils"
	"github.com/ndenisov/sketchkeep/models"
)

var (
	buildDate   = "N/A"
	buildCommit = "N/A"
)

// SetBuildInfo records the build stamp shown by GET /api/version/.
// Called once from main before the server starts.
func SetBuildInfo(date string, commit string) {
	if date != "" {
		buildDate = date
	}
	if commit != "" {
		buildCommit = commit
	}
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response := models.VersionResponse{
		Version:     h.app.Version,
		BuildDate:   buildDate,
		BuildCommit: buildCommit,
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.version").Msg("error writing response")
	}
}
