// SPDX-License-Identifier: MPL-2.0

package desktop

import "strings"

// The two search paths match on different field sets. Each rule lives behind
// its own named predicate so a future unification is a one-line change.

// MatchScan is the live-scan matching rule applied while reading descriptor
// files: the Name is tested when present and non-empty, otherwise the
// GenericName. The Comment never participates on this path. Files carrying
// neither field never match, which doubles as the index qualification rule.
func MatchScan(raw *RawEntry, query string) bool {
	q := strings.ToLower(query)
	if name := strValue(raw.Name); name != "" {
		return strings.Contains(strings.ToLower(name), q)
	}
	if generic := strValue(raw.GenericName); generic != "" {
		return strings.Contains(strings.ToLower(generic), q)
	}
	return false
}

// MatchCached is the snapshot matching rule applied to cached records: the
// Name is tested first; when it does not contain the query, the GenericName
// decides if present (the chain stops there even on a miss), and only a
// record without a GenericName falls through to its Comment.
func MatchCached(e *Entry, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	if e.GenericName != nil {
		return strings.Contains(strings.ToLower(*e.GenericName), q)
	}
	if e.Comment != nil {
		return strings.Contains(strings.ToLower(*e.Comment), q)
	}
	return false
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
