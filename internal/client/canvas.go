package client

import (
	"encoding/json"

	"github.com/ndenisov/sketchkeep/models"
)

//go:generate mockgen -source=canvas.go -destination=../mock/canvas_source_mock.go -package=mock

// CanvasSource exposes the live state of the drawing surface. The autosave
// job and the exporter read the whole state every time; nothing in this
// package interprets the fragments beyond assembling them into a
// [models.CanvasDocument].
type CanvasSource interface {
	// SceneElements returns the current element list as raw JSON
	// (an array).
	SceneElements() json.RawMessage

	// AppState returns the current canvas app state as raw JSON
	// (an object).
	AppState() json.RawMessage

	// Files returns the binary file map as raw JSON (an object),
	// or nil when the scene references no files.
	Files() json.RawMessage
}

type canvasPayload struct {
	Elements json.RawMessage `json:"elements"`
	AppState json.RawMessage `json:"appState"`
	Files    json.RawMessage `json:"files,omitempty"`
}

// ComposeDocument assembles the full opaque document from a source's
// fragments. Nil fragments are replaced with empty JSON values so the result
// is always a well-formed document.
func ComposeDocument(source CanvasSource) (models.CanvasDocument, error) {
	payload := canvasPayload{
		Elements: source.SceneElements(),
		AppState: source.AppState(),
		Files:    source.Files(),
	}
	if payload.Elements == nil {
		payload.Elements = json.RawMessage(`[]`)
	}
	if payload.AppState == nil {
		payload.AppState = json.RawMessage(`{}`)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return models.CanvasDocument(raw), nil
}
