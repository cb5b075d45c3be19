// SPDX-License-Identifier: MPL-2.0

// Package cache persists full index snapshots.
//
// A snapshot on disk is either fully absent or fully well-formed: writes are
// atomic, and a file that exists but fails to decode is a hard error rather
// than a rebuild trigger, so a corrupted persistent state is never silently
// masked.
package cache

import (
	"errors"

	"appdex-cli/internal/desktop"
)

// ErrCorrupt marks a snapshot file that exists but cannot be decoded.
// Callers match it with errors.Is.
var ErrCorrupt = errors.New("corrupt snapshot")

// Snapshot is the full, unfiltered set of indexed entries captured at one
// point in time. LastUpdate is epoch seconds; it is recorded but never
// consulted for expiry — invalidation is always an explicit rebuild.
type Snapshot struct {
	Entries    []desktop.Entry `json:"entries"`
	LastUpdate uint64          `json:"last_update"`
}

// Store is the snapshot resource handle. One Store instance serves the whole
// process; it is constructed once at startup and injected into the engine so
// tests can substitute MemStore.
type Store interface {
	// Read returns the current snapshot, or (nil, nil) when none exists.
	// A snapshot that exists but cannot be decoded yields an error wrapping
	// ErrCorrupt.
	Read() (*Snapshot, error)
	// Write replaces the snapshot wholesale with the given entries, stamped
	// with the current time.
	Write(entries []desktop.Entry) error
	// Exists reports whether a snapshot is present, without decoding it.
	Exists() bool
}
