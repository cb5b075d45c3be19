// SPDX-License-Identifier: MPL-2.0

// Package desktop models freedesktop application entries and parses their
// descriptor files.
//
// This package intentionally combines two related concerns:
//   - The indexed record type (Entry) and its cache wire format
//   - Lenient parsing of .desktop descriptor text into raw field sets
//
// These concerns are tightly coupled because the record's present/absent
// field semantics are defined by what the descriptor format allows to be
// omitted. Splitting them would create unnecessary indirection without
// meaningful abstraction benefit.
//
// File organization:
//   - entry.go: Entry, the indexed record
//   - parse.go: RawEntry and descriptor parsing
//   - match.go: the per-path query matching policies
package desktop
