// SPDX-License-Identifier: MPL-2.0

package index

import (
	"os"
	"path/filepath"
	"strings"

	"appdex-cli/internal/desktop"
	"appdex-cli/internal/icon"
)

// DefaultIconSize is the preferred pixel size passed to the icon resolver.
const DefaultIconSize = 128

// Scanner reads descriptor files from single directories. Per-item failures
// (unreadable file, unparseable descriptor) are skipped, never escalated.
type Scanner struct {
	resolver icon.Resolver
	iconSize int
}

// NewScanner returns a scanner using the given icon resolver. A nil resolver
// disables theme lookup; literal icon paths are still honored. A non-positive
// iconSize falls back to DefaultIconSize.
func NewScanner(resolver icon.Resolver, iconSize int) *Scanner {
	if iconSize <= 0 {
		iconSize = DefaultIconSize
	}
	return &Scanner{resolver: resolver, iconSize: iconSize}
}

// ScanDir returns the entries in dir matching query, up to limit. The limit
// is this directory's own budget; callers scanning several directories get
// that many per directory. An unreadable directory contributes zero matches.
func (s *Scanner) ScanDir(dir, query string, limit int) []desktop.Entry {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var matches []desktop.Entry
	for _, de := range dirents {
		if len(matches) >= limit {
			break
		}
		if de.IsDir() || !strings.HasSuffix(de.Name(), desktop.Suffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			continue
		}
		raw, err := desktop.Parse(data)
		if err != nil {
			continue
		}
		if !desktop.MatchScan(raw, query) {
			continue
		}

		matches = append(matches, s.build(raw))
	}
	return matches
}

// build turns a raw descriptor into an indexed entry, resolving its icon.
func (s *Scanner) build(raw *desktop.RawEntry) desktop.Entry {
	e := desktop.Entry{
		Exec:        "",
		Comment:     raw.Comment,
		GenericName: raw.GenericName,
	}
	if raw.Name != nil {
		e.Name = *raw.Name
	}
	if raw.Exec != nil {
		e.Exec = *raw.Exec
	}
	if raw.Icon != nil {
		if path, ok := s.resolveIcon(*raw.Icon); ok {
			e.Icon = &path
		}
	}
	return e
}

// resolveIcon keeps a literal existing path as-is and otherwise asks the
// resolver capability. A failed resolution leaves the entry without an icon;
// default presentation icons are the adapter's concern.
func (s *Scanner) resolveIcon(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, true
	}
	if s.resolver != nil {
		return s.resolver.Resolve(name, s.iconSize)
	}
	return "", false
}
