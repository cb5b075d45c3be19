// SPDX-License-Identifier: MPL-2.0

package desktop

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Suffix is the file name suffix identifying descriptor files.
const Suffix = ".desktop"

// mainSection is the descriptor section holding the keys we consume.
const mainSection = "Desktop Entry"

// RawEntry is the field set read from one descriptor file. Every field is
// optional; a nil pointer means the key was not present in the source text.
type RawEntry struct {
	Name        *string
	GenericName *string
	Comment     *string
	Exec        *string
	Icon        *string
}

// Parse reads the content of one descriptor file and returns its consumed
// fields. A parse error means "no entry for this file"; callers are expected
// to skip the file and continue, never to abort a scan.
//
// Only the "[Desktop Entry]" section is consulted. Localized key variants
// (e.g. "Name[de]") are distinct keys in the format and are ignored.
func Parse(data []byte) (*RawEntry, error) {
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}

	sec, err := f.GetSection(mainSection)
	if err != nil {
		return nil, fmt.Errorf("descriptor has no [%s] section", mainSection)
	}

	raw := &RawEntry{}
	raw.Name = keyValue(sec, "Name")
	raw.GenericName = keyValue(sec, "GenericName")
	raw.Comment = keyValue(sec, "Comment")
	raw.Exec = keyValue(sec, "Exec")
	raw.Icon = keyValue(sec, "Icon")
	return raw, nil
}

// keyValue returns the key's value when the key exists, nil otherwise.
// A present-but-empty value stays distinguishable from an absent key.
func keyValue(sec *ini.Section, name string) *string {
	if !sec.HasKey(name) {
		return nil
	}
	v := sec.Key(name).String()
	return &v
}
