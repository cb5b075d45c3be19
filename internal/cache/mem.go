// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"time"

	"appdex-cli/internal/desktop"
)

// MemStore is an in-memory Store for tests. The zero value is an empty store.
type MemStore struct {
	// Snap is the current snapshot, nil when absent.
	Snap *Snapshot
	// ReadErr, when set, is returned by Read to simulate a decode failure.
	ReadErr error
	// Writes counts Write calls.
	Writes int
}

// Read returns the stored snapshot or the injected error.
func (s *MemStore) Read() (*Snapshot, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.Snap, nil
}

// Write replaces the stored snapshot.
func (s *MemStore) Write(entries []desktop.Entry) error {
	s.Snap = &Snapshot{
		Entries:    entries,
		LastUpdate: uint64(time.Now().Unix()),
	}
	s.Writes++
	return nil
}

// Exists reports whether a snapshot is stored. An injected read error also
// counts as existing, mirroring a corrupt on-disk file.
func (s *MemStore) Exists() bool {
	return s.Snap != nil || s.ReadErr != nil
}
