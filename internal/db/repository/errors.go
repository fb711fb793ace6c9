package repository

import "errors"

// ErrNotFound reports that a lookup or delete matched no row.
var ErrNotFound = errors.New("record not found")
