// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "appdex"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// cacheFileName is the snapshot file inside the cache directory.
	cacheFileName = "cache.json"
)

// Config holds the runtime configuration.
type Config struct {
	// CachePath is the snapshot file location. One cache serves the whole
	// system.
	CachePath string `mapstructure:"cache_path"`
	// SourceDirs overrides the scanned application directories. Empty means
	// resolve them from the environment (see SourceDirs).
	SourceDirs []string `mapstructure:"source_dirs"`
	// IconSize is the preferred icon size in pixels.
	IconSize int `mapstructure:"icon_size"`
	// SearchLimit caps the number of returned matches.
	SearchLimit int `mapstructure:"search_limit"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		CachePath:   DefaultCachePath(),
		IconSize:    128,
		SearchLimit: 10,
	}
}

// ConfigDir returns the appdex configuration directory,
// $XDG_CONFIG_HOME/appdex with the usual ~/.config fallback.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// DefaultCachePath returns the default snapshot location,
// $XDG_CACHE_HOME/appdex/cache.json with the usual ~/.cache fallback.
// Without a resolvable home it degrades to a path under /tmp, matching the
// descriptor cache conventions of launcher plugins.
func DefaultCachePath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), AppName+"_"+cacheFileName)
		}
		cacheDir = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheDir, AppName, cacheFileName)
}

// Load reads the config file if one exists and fills the rest from defaults.
// A missing config file is not an error; a present but malformed one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("cache_path", defaults.CachePath)
	v.SetDefault("source_dirs", defaults.SourceDirs)
	v.SetDefault("icon_size", defaults.IconSize)
	v.SetDefault("search_limit", defaults.SearchLimit)
	v.SetDefault("verbose", defaults.Verbose)

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFilePathOverride, err)
		}
	} else if cfgDir, err := ConfigDir(); err == nil {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(cfgDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
			// No config file; defaults apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.SourceDirs) == 0 {
		cfg.SourceDirs = SourceDirs()
	}
	return &cfg, nil
}
