package aga8

import (
	"errors"
	"strings"
)

// ErrInvalidComposition is matched by every composition validation failure.
var ErrInvalidComposition = errors.New("invalid composition")

// InvalidCompositionError reports why a composition cannot be evaluated.
// Message is meant to be shown to the user as is.
type InvalidCompositionError struct {
	Message string
	Missing []string // mandatory components that were absent, by path id
}

func (e *InvalidCompositionError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalidComposition) hold.
func (e *InvalidCompositionError) Is(target error) bool {
	return target == ErrInvalidComposition
}

func errNoComponents() error {
	return &InvalidCompositionError{Message: "no recognized component in composition"}
}

func errZeroTotal() error {
	return &InvalidCompositionError{Message: "composition total is zero"}
}

func errMissingComponents(missing []string) error {
	return &InvalidCompositionError{
		Message: "mandatory components not found: " + strings.Join(missing, ", "),
		Missing: missing,
	}
}
