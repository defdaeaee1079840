package repository

import "errors"

// errNotFound is the storage-level miss shared by the in-memory stores. The
// mongo repositories report the same condition with their own messages; the
// services treat both as absence.
var errNotFound = errors.New("not found")
