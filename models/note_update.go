package models

// NoteUpdate describes a partial update of a single note. Every field is
// optional; nil means "leave untouched". ID and owner are never updatable.
type NoteUpdate struct {
	Title    *string         `json:"title,omitempty"`
	Data     *CanvasDocument `json:"data,omitempty"`
	Starred  *bool           `json:"starred,omitempty"`
	Archived *bool           `json:"archived,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Data == nil && u.Starred == nil && u.Archived == nil
}
