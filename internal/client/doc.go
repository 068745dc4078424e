// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the in-memory note cache, the autosave job, and
// the offline SQLite snapshot into a single process lifecycle.
package client
