package store

import "errors"

// ErrNotFound is returned when no answer exists for a fact key. The rule
// environment maps it to a Stub value rather than treating it as a failure.
var ErrNotFound = errors.New("not found")
