package db

import "errors"

// ErrNotFound is the store-level not-found signal. Repositories of every
// backing translate their own miss conditions into this sentinel.
var ErrNotFound = errors.New("record not found")
