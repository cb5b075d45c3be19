// SPDX-License-Identifier: MPL-2.0

package desktop

// Entry is one indexed application record. Optional fields are pointers so
// that an absent field survives a cache round-trip as absent rather than
// collapsing into an empty string.
//
// Every Entry admitted to the index has a non-empty Name or GenericName;
// files providing neither are skipped during scanning.
type Entry struct {
	// Name is the display name from the Name key. It may be empty when the
	// descriptor only carries a GenericName.
	Name string `json:"name"`
	// Exec is the launch command line. Descriptors without an Exec key are
	// still indexable; the field then stays empty.
	Exec string `json:"exec"`
	// Icon is the resolved icon path, or nil when the descriptor named no
	// icon or resolution failed. Presentation defaults live in the adapter.
	Icon *string `json:"icon,omitempty"`
	// Comment is the free-form description, if any.
	Comment *string `json:"comment,omitempty"`
	// GenericName is the generic application name (e.g. "Web Browser").
	GenericName *string `json:"generic_name,omitempty"`
}

// DisplayName returns the name shown to users: Name when set, otherwise
// GenericName.
func (e *Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	if e.GenericName != nil {
		return *e.GenericName
	}
	return ""
}
