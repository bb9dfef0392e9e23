package state

import "errors"

// Error kinds surfaced by the generator. They are wrapped with context
// (node index, field) and should be matched with errors.Is.
var (
	ErrFormat   = errors.New("format error")
	ErrNotFound = errors.New("not found")
	ErrConfig   = errors.New("config error")
	ErrIO       = errors.New("io error")
)
