// Package common defines shared sentinel errors and small helpers used
// across the Mimamsa client layers. Callers should match errors with errors.Is.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Input errors raised before anything is sent to the backend.
	ErrorValidation = errors.New("validation error")

	// Access errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
)
