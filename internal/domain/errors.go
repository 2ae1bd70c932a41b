package domain

import "errors"

// Domain errors
var (
	ErrStorageUnavailable = errors.New("storage is not configured")
	ErrInputTooLarge      = errors.New("input exceeds maximum size")
	ErrPageNotFound       = errors.New("page not found")
)
