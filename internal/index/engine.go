// SPDX-License-Identifier: MPL-2.0

package index

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"appdex-cli/internal/cache"
	"appdex-cli/internal/desktop"
)

const (
	// DefaultLimit caps interactive searches when the caller passes no limit.
	DefaultLimit = 10
	// rebuildLimit is the per-directory budget used when building a full
	// snapshot. Large enough that no real applications directory hits it.
	rebuildLimit = 1000
)

// Results is an ordered sequence of matched entries.
type Results []desktop.Entry

// Empty reports whether no entry matched.
func (r Results) Empty() bool { return len(r) == 0 }

// First returns the top-ranked match, if any.
func (r Results) First() (desktop.Entry, bool) {
	if len(r) == 0 {
		return desktop.Entry{}, false
	}
	return r[0], true
}

// Engine answers substring queries over the application index, preferring
// the cached snapshot and falling back to a live concurrent scan.
type Engine struct {
	store   cache.Store
	scanner *Scanner
	dirs    []string
	log     *log.Logger
}

// Options configures an Engine. Store and SourceDirs are required; the rest
// default sensibly.
type Options struct {
	Store      cache.Store
	SourceDirs []string
	Scanner    *Scanner
	Logger     *log.Logger
}

// NewEngine builds the query engine. The store is an injected process-wide
// resource handle; the engine never constructs its own.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("index: Options.Store is required")
	}
	if opts.Scanner == nil {
		opts.Scanner = NewScanner(nil, DefaultIconSize)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Engine{
		store:   opts.Store,
		scanner: opts.Scanner,
		dirs:    opts.SourceDirs,
		log:     opts.Logger,
	}, nil
}

// Search returns the entries matching query, at most limit of them on the
// snapshot path. When no snapshot exists yet, Search first rebuilds one and
// then serves the query from a live scan; on the live path the limit applies
// per source directory.
//
// A snapshot that exists but cannot be decoded is a hard error — Search
// never masks a corrupted cache with a rescan.
func (e *Engine) Search(query string, limit int) (Results, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if !e.store.Exists() {
		e.log.Debug("no snapshot, building index", "query", query)
		if err := e.Rebuild(); err != nil {
			return nil, err
		}
		return Results(e.scanner.Aggregate(e.dirs, query, limit)), nil
	}

	snap, err := e.store.Read()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		// Snapshot vanished between Exists and Read; serve live.
		return Results(e.scanner.Aggregate(e.dirs, query, limit)), nil
	}

	e.log.Debug("searching snapshot", "query", query, "entries", len(snap.Entries))
	matches := make(Results, 0, limit)
	for i := range snap.Entries {
		if len(matches) >= limit {
			break
		}
		if desktop.MatchCached(&snap.Entries[i], query) {
			matches = append(matches, snap.Entries[i])
		}
	}
	return matches, nil
}

// Rebuild replaces the snapshot with a fresh, full aggregation of every
// source directory. This is the only way the cache is ever refreshed; the
// engine never expires it by time.
func (e *Engine) Rebuild() error {
	entries := e.scanner.Aggregate(e.dirs, "", rebuildLimit)
	e.log.Debug("indexed descriptors", "entries", len(entries), "dirs", len(e.dirs))
	if err := e.store.Write(entries); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
