package services

import "errors"

// The whole error surface of the store. Controllers map these to HTTP
// status codes with errors.Is; everything else bubbles up as a 500.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("authentication required")
	ErrConflict        = errors.New("conflict")
)
