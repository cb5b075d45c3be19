// SPDX-License-Identifier: MPL-2.0

package icon

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestThemeResolver_SizedIcon(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	want := filepath.Join(dataDir, "icons", "hicolor", "128x128", "apps", "firefox.png")
	writeFile(t, want)

	r := NewThemeResolverAt([]string{dataDir})

	got, ok := r.Resolve("firefox", 128)
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestThemeResolver_ScalableFallback(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	want := filepath.Join(dataDir, "icons", "hicolor", "scalable", "apps", "gimp.svg")
	writeFile(t, want)

	r := NewThemeResolverAt([]string{dataDir})

	got, ok := r.Resolve("gimp", 128)
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestThemeResolver_Pixmaps(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	want := filepath.Join(dataDir, "pixmaps", "xterm.xpm")
	writeFile(t, want)

	r := NewThemeResolverAt([]string{dataDir})

	got, ok := r.Resolve("xterm", 48)
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestThemeResolver_NameWithExtension(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	want := filepath.Join(dataDir, "pixmaps", "legacy.png")
	writeFile(t, want)

	r := NewThemeResolverAt([]string{dataDir})

	got, ok := r.Resolve("legacy.png", 64)
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestThemeResolver_NotFound(t *testing.T) {
	t.Parallel()

	r := NewThemeResolverAt([]string{t.TempDir()})

	if got, ok := r.Resolve("no-such-icon", 128); ok {
		t.Errorf("Resolve() = %s, want miss", got)
	}
}

func TestThemeResolver_EmptyName(t *testing.T) {
	t.Parallel()

	r := NewThemeResolverAt([]string{t.TempDir()})

	if _, ok := r.Resolve("", 128); ok {
		t.Error("Resolve(\"\") ok = true, want false")
	}
}
