// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"appdex-cli/internal/cache"
	"appdex-cli/internal/config"
	"appdex-cli/internal/index"
)

// fakeEngine implements SearchEngine for handler tests.
type fakeEngine struct {
	results  index.Results
	err      error
	rebuilds int
	lastQ    string
	lastN    int
}

func (f *fakeEngine) Search(query string, limit int) (index.Results, error) {
	f.lastQ, f.lastN = query, limit
	return f.results, f.err
}

func (f *fakeEngine) Rebuild() error {
	f.rebuilds++
	return f.err
}

func newTestApp(engine SearchEngine) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		Config: &config.Config{SearchLimit: 10},
		Engine: engine,
		Log:    log.New(io.Discard),
		stdout: out,
	}, out
}

func TestRunSearch_WritesPayload(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{results: index.Results{
		{Name: "Firefox", Exec: "firefox %u"},
	}}
	app, out := newTestApp(engine)

	if err := runSearch(app, "fire"); err != nil {
		t.Fatalf("runSearch() error = %v", err)
	}

	if engine.lastQ != "fire" || engine.lastN != 10 {
		t.Errorf("Search called with (%q, %d), want (fire, 10)", engine.lastQ, engine.lastN)
	}

	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(resp.Elements) != 1 || resp.Elements[0].Name != "Firefox" {
		t.Errorf("Elements = %+v, want single Firefox element", resp.Elements)
	}
}

func TestRunSearch_EmptyResultIsErrorPayloadNotFailure(t *testing.T) {
	t.Parallel()

	app, out := newTestApp(&fakeEngine{})

	if err := runSearch(app, "nothing"); err != nil {
		t.Fatalf("runSearch() error = %v, want nil for empty result", err)
	}

	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if resp.Error != "No match found" {
		t.Errorf("Error = %q, want 'No match found'", resp.Error)
	}
}

func TestRunSearch_CorruptCacheExitCode(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{err: fmt.Errorf("read snapshot: %w", cache.ErrCorrupt)}
	app, _ := newTestApp(engine)

	err := runSearch(app, "anything")
	if err == nil {
		t.Fatal("runSearch() error = nil, want exit error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runSearch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != exitCodeCorruptCache {
		t.Errorf("Code = %d, want %d", exitErr.Code, exitCodeCorruptCache)
	}
}

func TestRunSearch_OtherErrorsPassThrough(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("disk on fire")
	app, _ := newTestApp(&fakeEngine{err: wantErr})

	err := runSearch(app, "anything")
	if !errors.Is(err, wantErr) {
		t.Errorf("runSearch() error = %v, want %v", err, wantErr)
	}
}

func TestRunUpdate_Rebuilds(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	app, out := newTestApp(engine)
	app.Config.CachePath = "/tmp/appdex-test/cache.json"

	if err := runUpdate(app); err != nil {
		t.Fatalf("runUpdate() error = %v", err)
	}
	if engine.rebuilds != 1 {
		t.Errorf("rebuilds = %d, want 1", engine.rebuilds)
	}
	if !strings.Contains(out.String(), "Updating cache...") {
		t.Errorf("output = %q, want progress line", out.String())
	}
}

func TestNewRootCommand_SubcommandsRegistered(t *testing.T) {
	t.Parallel()

	root := newRootCommand(func() (*App, error) {
		app, _ := newTestApp(&fakeEngine{})
		return app, nil
	})

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"search", "update"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand (have %v)", want, names)
		}
	}
}

func TestSearchCommand_Run(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{results: index.Results{{Name: "GIMP", Exec: "gimp"}}}
	app, out := newTestApp(engine)

	root := newRootCommand(func() (*App, error) { return app, nil })
	root.SetArgs([]string{"search", "gimp"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if engine.lastQ != "gimp" {
		t.Errorf("query = %q, want gimp", engine.lastQ)
	}
	if !strings.Contains(out.String(), "GIMP") {
		t.Errorf("output = %q, want GIMP payload", out.String())
	}
}
