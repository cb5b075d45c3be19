// SPDX-License-Identifier: MPL-2.0

package icon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// iconExts are the image formats tried for each candidate location, in
// preference order.
var iconExts = []string{".png", ".svg", ".xpm"}

// ThemeResolver looks up icons in freedesktop theme directories. It is a
// deliberately shallow lookup: the hicolor theme plus pixmaps covers what
// application descriptors reference in practice, without pulling in full
// theme-inheritance resolution.
type ThemeResolver struct {
	dataDirs []string
}

// NewThemeResolver builds a resolver over the host's icon locations, derived
// from $XDG_DATA_HOME and $XDG_DATA_DIRS with the usual defaults.
func NewThemeResolver() *ThemeResolver {
	return &ThemeResolver{dataDirs: dataDirs()}
}

// NewThemeResolverAt builds a resolver over explicit data directories.
// Intended for tests.
func NewThemeResolverAt(dirs []string) *ThemeResolver {
	return &ThemeResolver{dataDirs: dirs}
}

// Resolve returns the first existing candidate file for name. A name that is
// already an absolute path is only accepted if it exists.
func (r *ThemeResolver) Resolve(name string, size int) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, candidate := range r.candidates(name, size) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// candidates enumerates the paths tried for a bare icon name, most specific
// first: exact-size hicolor dirs, scalable hicolor, then pixmaps.
func (r *ThemeResolver) candidates(name string, size int) []string {
	// Names that already carry an extension are looked up verbatim.
	withExts := func(base string) []string {
		if ext := filepath.Ext(name); ext != "" {
			return []string{base + ext}
		}
		paths := make([]string, 0, len(iconExts))
		for _, ext := range iconExts {
			paths = append(paths, base+ext)
		}
		return paths
	}

	trimmed := strings.TrimSuffix(name, filepath.Ext(name))
	sizeDir := fmt.Sprintf("%dx%d", size, size)

	var paths []string
	for _, dataDir := range r.dataDirs {
		iconRoot := filepath.Join(dataDir, "icons", "hicolor")
		paths = append(paths, withExts(filepath.Join(iconRoot, sizeDir, "apps", trimmed))...)
		paths = append(paths, filepath.Join(iconRoot, "scalable", "apps", trimmed+".svg"))
	}
	for _, dataDir := range r.dataDirs {
		paths = append(paths, withExts(filepath.Join(dataDir, "pixmaps", trimmed))...)
	}
	return paths
}

// dataDirs resolves the XDG data directories searched for icons.
func dataDirs() []string {
	var dirs []string

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		dirs = append(dirs, dataHome)
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
