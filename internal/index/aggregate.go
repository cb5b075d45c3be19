// SPDX-License-Identifier: MPL-2.0

package index

import (
	"sort"
	"sync"

	"appdex-cli/internal/desktop"
)

// Aggregate scans every source directory concurrently and returns the merged
// match set sorted by name ascending. One worker runs per directory; each
// fills its own slot of the result buffer, so no lock guards the merge — it
// happens only after all workers have joined. A directory that cannot be
// opened contributes zero matches.
//
// The limit is applied per directory, so the merged set can hold up to
// len(dirs)*limit entries before any downstream truncation.
func (s *Scanner) Aggregate(dirs []string, query string, limit int) []desktop.Entry {
	buffers := make([][]desktop.Entry, len(dirs))

	var wg sync.WaitGroup
	for i, dir := range dirs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buffers[i] = s.ScanDir(dir, query, limit)
		}()
	}
	wg.Wait()

	var merged []desktop.Entry
	for _, buf := range buffers {
		merged = append(merged, buf...)
	}

	// Stable sort over the fixed directory order keeps the result
	// deterministic even when names collide across directories.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})
	return merged
}
