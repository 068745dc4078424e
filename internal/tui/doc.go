// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

// Package tui implements the terminal dashboard and note view.
//
// The dashboard shows the cached notes behind a tab bar (All Notes, Starred,
// Archived) with incremental title search; the note view shows a summary of
// the open canvas document and owns the manual save, export, and clipboard
// actions. Rendering is bubbletea with bubbles inputs and lipgloss styles.
package tui
