package wikibase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is returned when an identifier is not shaped like "Q123".
	//
	// No request is sent to the backend in this case.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNotFound is returned when the backend reports that the entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrBackendUnavailable is returned when the backend cannot be reached
	// or it answers with something other than an entity or a "missing" marker.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrBackendTimeout is a refinement of ErrBackendUnavailable:
	// the backend did not answer in time.
	//
	// errors.Is(ErrBackendTimeout, ErrBackendUnavailable) is true.
	ErrBackendTimeout = fmt.Errorf("%w: timeout", ErrBackendUnavailable)
)
