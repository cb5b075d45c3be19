// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"

	"appdex-cli/internal/desktop"
)

// FileStore persists snapshots as a single JSON document at a well-known
// path. Writes go through a temp file and rename, so readers never observe a
// partial snapshot. Concurrent writers are not coordinated; the single-writer
// assumption is the caller's to uphold.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Read loads and decodes the snapshot. A missing file is (nil, nil); a file
// that cannot be decoded is a hard error wrapping ErrCorrupt.
func (s *FileStore) Read() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return &snap, nil
}

// Write replaces the on-disk snapshot with the given entries.
func (s *FileStore) Write(entries []desktop.Entry) error {
	snap := Snapshot{
		Entries:    entries,
		LastUpdate: uint64(s.now().Unix()),
	}

	data, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}
	return nil
}

// Exists reports whether the snapshot file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return s.path
}
