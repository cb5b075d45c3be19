// SPDX-License-Identifier: MPL-2.0

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"appdex-cli/internal/cache"
	"appdex-cli/internal/config"
	"appdex-cli/internal/icon"
	"appdex-cli/internal/index"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer — command handlers receive an App reference and
	// delegate all index work through its Engine interface.
	App struct {
		Config *config.Config
		Engine SearchEngine
		Log    *log.Logger
		stdout io.Writer
	}

	// SearchEngine is the slice of the index engine the CLI layer needs.
	// Tests supply fakes; production wiring injects *index.Engine.
	SearchEngine interface {
		Search(query string, limit int) (index.Results, error)
		Rebuild() error
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config *config.Config
		Engine SearchEngine
		Log    *log.Logger
		Stdout io.Writer
	}
)

// NewApp builds an App, wiring production defaults for any dependency left
// nil: loaded config, a file-backed snapshot store at the configured cache
// path, the theme icon resolver, and an engine over the configured source
// directories.
func NewApp(deps Dependencies) (*App, error) {
	cfg := deps.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := deps.Log
	if logger == nil {
		logger = log.New(os.Stderr)
		if cfg.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
	}

	engine := deps.Engine
	if engine == nil {
		scanner := index.NewScanner(icon.NewThemeResolver(), cfg.IconSize)
		built, err := index.NewEngine(index.Options{
			Store:      cache.NewFileStore(cfg.CachePath),
			SourceDirs: cfg.SourceDirs,
			Scanner:    scanner,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		engine = built
	}

	stdout := deps.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		Config: cfg,
		Engine: engine,
		Log:    logger,
		stdout: stdout,
	}, nil
}
