// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/ndenisov/sketchkeep/models"
)

// psql is the shared squirrel builder configured for PostgreSQL's
// $1-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notesTable = "notes"

// noteColumns is the canonical column order; every SELECT and RETURNING
// clause uses it so row scanning stays uniform across methods.
var noteColumns = []string{
	"id",
	"owner_id",
	"title",
	"data",
	"starred",
	"archived",
	"created_at",
	"updated_at",
}

func returningNoteColumns() string {
	return "RETURNING " + strings.Join(noteColumns, ", ")
}

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert(notesTable).
		Columns("id", "owner_id", "title", "data", "starred", "archived").
		Values(note.ID, note.OwnerID, note.Title, []byte(note.Data), note.Starred, note.Archived).
		Suffix(returningNoteColumns()).
		ToSql()
}

func buildSelectNoteByIDQuery(id string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectNotesByOwnerQuery(ownerID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC").
		ToSql()
}

// buildUpdateNoteQuery assembles the partial UPDATE from the non-nil
// fields of update. updated_at is always refreshed, matching the behavior
// of every mutating operation in the system, so an update carrying only an
// autosaved canvas document still bumps the note in recency ordering.
func buildUpdateNoteQuery(id string, update models.NoteUpdate) (string, []any, error) {
	builder := psql.Update(notesTable).
		Set("updated_at", sq.Expr("now()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Data != nil {
		builder = builder.Set("data", []byte(*update.Data))
	}
	if update.Starred != nil {
		builder = builder.Set("starred", *update.Starred)
	}
	if update.Archived != nil {
		builder = builder.Set("archived", *update.Archived)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix(returningNoteColumns()).
		ToSql()
}

func buildDeleteNoteQuery(id string) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
