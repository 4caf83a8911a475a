package repository

import "errors"

// ErrInvalidData is returned when the store rejects a value, for example a
// string longer than its column.
var ErrInvalidData = errors.New("invalid data")
