package alert

import "errors"

var (
	// ErrDirectoryLookup is returned when a subscribed reader or the book
	// itself cannot be resolved against the store. A loan referencing an id
	// that no longer exists is a broken store invariant, not a user-facing
	// failure.
	ErrDirectoryLookup = errors.New("alert.errors.directory_lookup")
)
