// SPDX-License-Identifier: MPL-2.0

// Package icon resolves bare icon names to concrete files on disk.
//
// The index core only depends on the Resolver interface; ThemeResolver is
// the production lookup over freedesktop icon locations.
package icon

// Resolver locates a concrete image file for a bare icon name at a preferred
// pixel size. The second return value reports whether a file was found.
type Resolver interface {
	Resolve(name string, size int) (string, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string, size int) (string, bool)

// Resolve calls the wrapped function.
func (f ResolverFunc) Resolve(name string, size int) (string, bool) {
	return f(name, size)
}
