package tui

import (
	"encoding/json"
	"sync"

	"github.com/ndenisov/sketchkeep/models"
)

type canvasFragments struct {
	Elements json.RawMessage `json:"elements"`
	AppState json.RawMessage `json:"appState"`
	Files    json.RawMessage `json:"files,omitempty"`
}

// canvasState is the TUI's stand-in for a live drawing surface. It holds the
// open note's document split into the fragments the autosave job reads. The
// terminal cannot edit the scene, so the fragments only change when the note
// is (re)opened.
type canvasState struct {
	mu        sync.RWMutex
	fragments canvasFragments
}

func newCanvasState(doc models.CanvasDocument) *canvasState {
	c := &canvasState{}
	c.Load(doc)
	return c
}

// Load replaces the held fragments with the given document's content.
func (c *canvasState) Load(doc models.CanvasDocument) {
	var fragments canvasFragments
	// a malformed document degrades to an empty scene
	_ = json.Unmarshal([]byte(doc), &fragments)
	if fragments.Elements == nil {
		fragments.Elements = json.RawMessage(`[]`)
	}
	if fragments.AppState == nil {
		fragments.AppState = json.RawMessage(`{}`)
	}

	c.mu.Lock()
	c.fragments = fragments
	c.mu.Unlock()
}

func (c *canvasState) SceneElements() json.RawMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fragments.Elements
}

func (c *canvasState) AppState() json.RawMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fragments.AppState
}

func (c *canvasState) Files() json.RawMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fragments.Files
}

// sceneSummary describes the document for the note view without interpreting
// its contents beyond counting top-level entries.
type sceneSummary struct {
	elementCount int
	fileCount    int
	theme        string
	byteSize     int
}

func summarizeScene(doc models.CanvasDocument) sceneSummary {
	summary := sceneSummary{byteSize: len(doc)}

	var fragments canvasFragments
	if err := json.Unmarshal([]byte(doc), &fragments); err != nil {
		return summary
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(fragments.Elements, &elements); err == nil {
		summary.elementCount = len(elements)
	}

	var files map[string]json.RawMessage
	if err := json.Unmarshal(fragments.Files, &files); err == nil {
		summary.fileCount = len(files)
	}

	var appState struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal(fragments.AppState, &appState); err == nil {
		summary.theme = appState.Theme
	}

	return summary
}
