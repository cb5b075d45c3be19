// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/appdex/config.toml (falling
// back to ~/.config). The package also resolves the descriptor source
// directories scanned by the index, preferring the system-reported
// $XDG_DATA_DIRS list over the conventional fallback locations.
package config
