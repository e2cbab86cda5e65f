package repository

import (
	"errors"
	"fmt"
)

// Errors returned by repository operations. Callers match them with errors.Is.
var (
	// ErrDuplicateName is returned when an entity with the same exact name already exists
	ErrDuplicateName = errors.New("name already exists")
	// ErrNotFound is returned when no entity matches the given id or name
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when a meal references a dish id that does not exist
	ErrInvalidReference = errors.New("dish reference does not resolve")
	// ErrUpstreamUnavailable is returned when the nutrition lookup fails
	ErrUpstreamUnavailable = errors.New("nutrition service unavailable")
	// ErrUnknownFood is returned by strict nutrition gateways when the upstream has no entry for a name
	ErrUnknownFood = errors.New("food not recognized by nutrition service")
)

// CorruptionError reports that the id index and the name index of a repository
// no longer agree. It is raised with panic and never returned as a value; once
// raised, the repository refuses every further operation.
type CorruptionError struct {
	Entity string
	Index  string
	Key    string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%s repository corrupted: %s index has no entry for %s", e.Entity, e.Index, e.Key)
}
