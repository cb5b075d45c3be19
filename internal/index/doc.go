// SPDX-License-Identifier: MPL-2.0

// Package index discovers installed-application descriptors and answers
// substring queries over them.
//
// File organization:
//   - scan.go: Scanner, single-directory descriptor scanning
//   - aggregate.go: concurrent multi-directory scan and merge
//   - engine.go: Engine, the cache-first query orchestrator
package index
