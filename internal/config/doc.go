// Package config loads the sketchkeep configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources with first-non-zero-wins semantics and deriving the role-specific
// server and client views.
package config
