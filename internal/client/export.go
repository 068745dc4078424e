package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ndenisov/sketchkeep/models"
)

const (
	exportType    = "excalidraw"
	exportVersion = 2
	exportSource  = "excalidraw-draw"
	exportExt     = ".excalidraw"
)

type exportEnvelope struct {
	Type     string          `json:"type"`
	Version  int             `json:"version"`
	Source   string          `json:"source"`
	Elements json.RawMessage `json:"elements"`
	AppState json.RawMessage `json:"appState"`
	Files    json.RawMessage `json:"files,omitempty"`
}

// ExportScene writes the note's canvas document as a standalone scene file
// into dir and returns the written path. The file name is derived from the
// note title, "drawing" when the title is empty.
func ExportScene(dir string, note models.Note) (string, error) {
	var payload canvasPayload
	if err := json.Unmarshal([]byte(note.Data), &payload); err != nil {
		return "", fmt.Errorf("decode canvas document: %w", err)
	}

	envelope := exportEnvelope{
		Type:     exportType,
		Version:  exportVersion,
		Source:   exportSource,
		Elements: payload.Elements,
		AppState: payload.AppState,
		Files:    payload.Files,
	}
	if envelope.Elements == nil {
		envelope.Elements = json.RawMessage(`[]`)
	}
	if envelope.AppState == nil {
		envelope.AppState = json.RawMessage(`{}`)
	}

	raw, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode scene file: %w", err)
	}

	path := filepath.Join(dir, exportFileName(note.Title))
	if err = os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("write scene file: %w", err)
	}

	return path, nil
}

func exportFileName(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "drawing"
	}
	// forbid path separators in user-supplied titles
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '-'
		default:
			return r
		}
	}, name)

	return name + exportExt
}
