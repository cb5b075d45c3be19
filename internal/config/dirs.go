// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceDirs resolves the directories scanned for application descriptors.
// When the system reports its data directories via $XDG_DATA_DIRS, that list
// wins; otherwise the conventional locations are used: the system and
// system-local applications directories, the per-user data and desktop
// directories, and the flatpak export directory.
func SourceDirs() []string {
	if dataDirs := os.Getenv("XDG_DATA_DIRS"); dataDirs != "" {
		var dirs []string
		for _, d := range strings.Split(dataDirs, ":") {
			if d == "" {
				continue
			}
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
		if len(dirs) > 0 {
			return dirs
		}
	}

	home, _ := os.UserHomeDir()
	return []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
		filepath.Join(home, ".local", "share", "applications"),
		desktopDir(home),
		"/var/lib/flatpak/exports/share/applications",
	}
}

// desktopDir returns the user's desktop directory, honoring the xdg
// user-dirs override when present.
func desktopDir(home string) string {
	if d := os.Getenv("XDG_DESKTOP_DIR"); d != "" {
		return strings.ReplaceAll(d, "$HOME", home)
	}
	return filepath.Join(home, "Desktop")
}
