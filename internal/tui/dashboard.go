// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndenisov/sketchkeep/internal/client"
	"github.com/ndenisov/sketchkeep/models"
)

const savedIndicatorDuration = 1500 * time.Millisecond

type dashboardModel struct {
	ctx      context.Context
	cache    *client.NoteCache
	autosave *client.Autosave
	interval time.Duration
	offline  bool

	tab client.Tab
	idx int

	searching bool
	search    textinput.Model

	renaming    bool
	renameInput textinput.Model

	creating    bool
	createInput textinput.Model

	confirmDelete bool

	viewing bool
	open    models.Note
	canvas  *canvasState

	exportDir string

	refreshing bool
	status     string
	errMsg     string
}

func newDashboardModel(ctx context.Context, cache *client.NoteCache, autosave *client.Autosave, interval time.Duration, offline bool, exportDir string) dashboardModel {
	search := textinput.New()
	search.Placeholder = "search titles"
	search.Width = 40
	search.Prompt = "/ "

	return dashboardModel{
		ctx:       ctx,
		cache:     cache,
		autosave:  autosave,
		interval:  interval,
		offline:   offline,
		tab:       client.TabAll,
		search:    search,
		exportDir: exportDir,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) visible() []models.Note {
	return m.cache.Filter(m.tab, m.search.Value())
}

func (m dashboardModel) current() (models.Note, bool) {
	notes := m.visible()
	if len(notes) == 0 || m.idx < 0 || m.idx >= len(notes) {
		return models.Note{}, false
	}
	return notes[m.idx], true
}

func (m *dashboardModel) clampCursor() {
	n := len(m.visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.offline = false
		m.errMsg = ""
		m.status = "Refreshed"
		m.clampCursor()
		return m, clearStatusAfter()
	case noteCreatedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Note created"
		m.tab = client.TabAll
		m.idx = 0
		return m, clearStatusAfter()
	case noteMutatedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.clampCursor()
		return m, nil
	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Note deleted"
		m.clampCursor()
		return m, clearStatusAfter()
	case savedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Saved"
		if note, ok := m.cache.Get(m.open.ID); ok {
			m.open = note
		}
		return m, clearStatusAfter()
	case exportedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Exported to " + msg.path
		return m, clearStatusAfter()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "ID copied"
		return m, clearStatusAfter()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if key.Matches(keyMsg, keys.quit) && !m.searching && !m.renaming && !m.creating {
		return m, tea.Quit
	}

	switch {
	case m.confirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case m.searching:
		return m.updateSearch(keyMsg)
	case m.renaming:
		return m.updateRename(keyMsg)
	case m.creating:
		return m.updateCreate(keyMsg)
	case m.viewing:
		return m.updateNoteView(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m dashboardModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	case m.renaming:
		m.renameInput, cmd = m.renameInput.Update(msg)
	case m.creating:
		m.createInput, cmd = m.createInput.Update(msg)
	}
	return m, cmd
}

func (m dashboardModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		m.tab = nextTab(m.tab)
		m.idx = 0
	case key.Matches(keyMsg, keys.backtab):
		m.tab = prevTab(m.tab)
		m.idx = 0
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.newNote):
		input := textinput.New()
		input.Placeholder = "Untitled"
		input.Width = 40
		input.CharLimit = models.MaxTitleLength
		input.Focus()
		m.createInput = input
		m.creating = true
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.star):
		if note, ok := m.current(); ok {
			return m, m.cmdSetStarred(note.ID, !note.Starred)
		}
	case key.Matches(keyMsg, keys.archive):
		if note, ok := m.current(); ok {
			return m, m.cmdSetArchived(note.ID, !note.Archived)
		}
	case key.Matches(keyMsg, keys.rename):
		if note, ok := m.current(); ok {
			input := textinput.New()
			input.SetValue(note.Title)
			input.Width = 40
			input.CharLimit = models.MaxTitleLength
			input.Focus()
			m.renameInput = input
			m.renaming = true
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirmDelete = true
		}
	case key.Matches(keyMsg, keys.copyID):
		if note, ok := m.current(); ok {
			return m, m.cmdCopyID(note.ID)
		}
	case key.Matches(keyMsg, keys.enter):
		if note, ok := m.current(); ok {
			m.openNote(note)
		}
	}
	return m, nil
}

func (m *dashboardModel) openNote(note models.Note) {
	m.open = note
	m.canvas = newCanvasState(note.Data)
	m.viewing = true
	m.autosave.Start(m.ctx, note.ID, m.canvas, m.interval)
}

func (m dashboardModel) updateNoteView(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.viewing = false
		m.canvas = nil
		return m, m.cmdCloseNote()
	case key.Matches(keyMsg, keys.save):
		return m, m.cmdSaveNow()
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdExport(m.open)
	case key.Matches(keyMsg, keys.copyID):
		return m, m.cmdCopyID(m.open.ID)
	}
	return m, nil
}

func (m dashboardModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		if keyMsg.String() == "esc" {
			m.search.SetValue("")
		}
		m.idx = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	m.idx = 0
	return m, cmd
}

func (m dashboardModel) updateRename(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.renaming = false
		return m, nil
	case "enter":
		m.renaming = false
		if note, ok := m.current(); ok {
			return m, m.cmdRename(note.ID, m.renameInput.Value())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(keyMsg)
	return m, cmd
}

func (m dashboardModel) updateCreate(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.creating = false
		return m, nil
	case "enter":
		m.creating = false
		return m, m.cmdCreate(m.createInput.Value())
	}

	var cmd tea.Cmd
	m.createInput, cmd = m.createInput.Update(keyMsg)
	return m, cmd
}

func (m dashboardModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmDelete = false
		if note, ok := m.current(); ok {
			return m, m.cmdDelete(note.ID)
		}
		return m, nil
	case key.Matches(keyMsg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func nextTab(t client.Tab) client.Tab {
	switch t {
	case client.TabAll:
		return client.TabStarred
	case client.TabStarred:
		return client.TabArchived
	default:
		return client.TabAll
	}
}

func prevTab(t client.Tab) client.Tab {
	switch t {
	case client.TabAll:
		return client.TabArchived
	case client.TabArchived:
		return client.TabStarred
	default:
		return client.TabAll
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(savedIndicatorDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m dashboardModel) cmdRefresh() tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return notesRefreshedMsg{err: cache.Refresh(ctx)}
	}
}

func (m dashboardModel) cmdCreate(title string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		note, err := cache.Create(ctx, title)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m dashboardModel) cmdSetStarred(noteID string, starred bool) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		_, err := cache.SetStarred(ctx, noteID, starred)
		return noteMutatedMsg{err: err}
	}
}

func (m dashboardModel) cmdSetArchived(noteID string, archived bool) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		_, err := cache.SetArchived(ctx, noteID, archived)
		return noteMutatedMsg{err: err}
	}
}

func (m dashboardModel) cmdRename(noteID string, title string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		_, err := cache.Rename(ctx, noteID, title)
		return noteMutatedMsg{err: err}
	}
}

func (m dashboardModel) cmdDelete(noteID string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return noteDeletedMsg{err: cache.Delete(ctx, noteID)}
	}
}

func (m dashboardModel) cmdSaveNow() tea.Cmd {
	ctx, autosave := m.ctx, m.autosave
	return func() tea.Msg {
		return savedMsg{err: autosave.SaveNow(ctx)}
	}
}

func (m dashboardModel) cmdCloseNote() tea.Cmd {
	autosave := m.autosave
	return func() tea.Msg {
		autosave.Stop()
		return noteMutatedMsg{}
	}
}

func (m dashboardModel) cmdExport(note models.Note) tea.Cmd {
	dir := m.exportDir
	return func() tea.Msg {
		path, err := client.ExportScene(dir, note)
		return exportedMsg{path: path, err: err}
	}
}

func (m dashboardModel) cmdCopyID(noteID string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(noteID)}
	}
}
