package domain

import "errors"

// ErrNotFound marks an expected-miss lookup: a question, group or workflow
// binding that the operation presupposed but the store does not have.
var ErrNotFound = errors.New("not found")
