// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package store

const (
	createSnapshotSchema = `
		CREATE TABLE IF NOT EXISTS notes_snapshot (
			id         TEXT PRIMARY KEY,
			owner_id   TEXT NOT NULL,
			title      TEXT NOT NULL,
			data       BLOB NOT NULL,
			starred    INTEGER NOT NULL DEFAULT 0,
			archived   INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_snapshot_owner ON notes_snapshot (owner_id);`

	deleteOwnerSnapshot = `
		DELETE FROM notes_snapshot
		WHERE owner_id = ?;`

	insertSnapshotNote = `
		INSERT INTO notes_snapshot (
			id,
			owner_id,
			title,
			data,
			starred,
			archived,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getSnapshotNotes = `
		SELECT
			id,
			owner_id,
			title,
			data,
			starred,
			archived,
			created_at,
			updated_at
		FROM notes_snapshot
		WHERE owner_id = ?
		ORDER BY updated_at DESC;`
)
