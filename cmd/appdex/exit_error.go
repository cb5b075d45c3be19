// SPDX-License-Identifier: MPL-2.0

package main

import "fmt"

// exitCodeCorruptCache is returned when the snapshot file exists but cannot
// be decoded. It is distinct from generic failures so launcher integrations
// can tell "rebuild the cache" apart from "something else broke".
const exitCodeCorruptCache = 2

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
