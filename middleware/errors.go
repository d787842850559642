package middleware

import "errors"

var (
	errMissingAuth   = errors.New("authorization header required")
	errBadAuthFormat = errors.New("invalid authorization header format")
)
