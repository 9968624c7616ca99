package editor

import "errors"

// Registry errors. They are always returned wrapped together with the
// offending id; test for them with errors.Is.
var (
	ErrDuplicateID = errors.New("id already registered")
	ErrUnknownID   = errors.New("no such id")
	ErrEmptyID     = errors.New("id must not be empty")
	ErrDestroyed   = errors.New("registry has been destroyed")
)
