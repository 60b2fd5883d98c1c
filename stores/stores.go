package stores

import "errors"

// ErrNotFound is returned when a looked-up row does not exist. Handlers map
// it to 404; every other store error is a persistence failure and maps to 500.
var ErrNotFound = errors.New("record not found")
