package errs

import "errors"

// Sentinel errors used as classification targets for errors.Is throughout
// the application. Each typed error in this package unwraps to one of these.
var (
	// ErrObjectNotFound classifies lookups of unknown identifiers.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid classifies malformed or rejected values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange classifies numeric values outside their bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired classifies missing required values.
	ErrValueIsRequired = errors.New("value is required")
)
