package models

// CreateNoteRequest is the body of POST /api/notes/. All fields are
// optional: the server substitutes [DefaultTitle] and
// [DefaultCanvasDocument] for missing values. The owner comes from the
// authenticated request context, never from the body.
type CreateNoteRequest struct {
	Title string         `json:"title"`
	Data  CanvasDocument `json:"data,omitempty"`
}

// NotesResponse is the body of GET /api/notes/: every note of the
// authenticated owner, most recently updated first.
type NotesResponse struct {
	Notes []Note `json:"notes"`

	// Length duplicates len(Notes) so clients can validate or
	// pre-allocate without iterating.
	Length int `json:"length"`
}

// ErrorResponse is the uniform error payload for non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is the body of GET /api/version/.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
