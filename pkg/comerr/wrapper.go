/*******************************************************************************
 Convenience wrappers so that callers inspecting errors returned by the echo
 server or client do not also need to import "errors" and multierr.
*******************************************************************************/

package comerr

import (
	"errors"

	"go.uber.org/multierr"
)

func Is(err error, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// Split returns the individual failures of a combined error, in the order
// they were appended.
func Split(err error) []error {
	return multierr.Errors(err)
}
