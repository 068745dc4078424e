package models

import (
	"encoding/json"
	"time"
)

// Note is the primary persistence model: metadata plus an opaque
// drawing-canvas document owned by exactly one user.
type Note struct {
	// ID is the unique identifier of the note, assigned by the server
	// at creation and immutable afterwards.
	ID string `json:"id"`

	// Title is the display name of the note. Bounded by [MaxTitleLength].
	Title string `json:"title"`

	// Data is the serialized canvas document (elements + app state).
	// The persistence layer stores and returns it unmodified and never
	// inspects its contents.
	Data CanvasDocument `json:"data"`

	// Starred marks the note as a favourite.
	Starred bool `json:"starred"`

	// Archived hides the note from the default and starred views.
	// An archived note stays fully addressable and mutable.
	Archived bool `json:"archived"`

	// OwnerID is the identifier of the owning user. Set once at creation.
	OwnerID string `json:"owner_id"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification. Refreshed by
	// every mutating operation, including autosave pushes.
	UpdatedAt time.Time `json:"updated_at"`
}

// MaxTitleLength is the upper bound on a note title, in characters.
const MaxTitleLength = 100

// DefaultTitle is assigned when a note is created without a title.
const DefaultTitle = "Untitled"

// CanvasDocument is the canvas component's serialized scene. It is opaque
// to every layer below the presentation: stored as-is, returned as-is.
type CanvasDocument json.RawMessage

// DefaultCanvasDocument is the payload a note gets when created without one:
// no elements, dark theme.
func DefaultCanvasDocument() CanvasDocument {
	return CanvasDocument(`{"elements":[],"appState":{"theme":"dark"}}`)
}

// IsZero reports whether the document carries no payload at all.
func (d CanvasDocument) IsZero() bool {
	return len(d) == 0
}

// MarshalJSON implements json.Marshaler. An empty document is encoded as
// JSON null rather than the empty string, which would be invalid JSON.
func (d CanvasDocument) MarshalJSON() ([]byte, error) {
	return json.RawMessage(d).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *CanvasDocument) UnmarshalJSON(data []byte) error {
	return (*json.RawMessage)(d).UnmarshalJSON(data)
}

func (n Note) TableName() string {
	return "notes"
}
