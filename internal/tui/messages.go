package tui

import "github.com/ndenisov/sketchkeep/models"

type notesRefreshedMsg struct {
	err error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

type noteMutatedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type exportedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
