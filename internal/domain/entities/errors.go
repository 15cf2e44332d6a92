package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrComponentNotFound indicates a component name with no matching source file.
var ErrComponentNotFound = errors.New("component not found")

// ErrCancelled indicates the user aborted an interactive prompt.
var ErrCancelled = errors.New("cancelled by user")

// ErrNoComponents indicates the component source directory is empty or missing.
var ErrNoComponents = errors.New("no components available")

// ErrNoSelection indicates the user confirmed a prompt without selecting anything.
var ErrNoSelection = errors.New("no components selected")

// ValidationError is returned when explicitly supplied component names are
// not part of the available set. It is fatal to the invocation.
type ValidationError struct {
	Unknown   []string
	Available []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"unknown components: %s (available: %s)",
		strings.Join(e.Unknown, ", "),
		strings.Join(e.Available, ", "),
	)
}
