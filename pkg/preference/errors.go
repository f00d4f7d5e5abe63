package preference

import "errors"

var (
	// ErrNotFound is returned by Get when no valid preference is stored.
	ErrNotFound = errors.New("locale preference not found")

	ErrInvalidLocale  = errors.New("invalid locale preference")
	ErrEmptyProfile   = errors.New("preference profile must not be empty")
	ErrFailedToRead   = errors.New("failed to read locale preference")
	ErrFailedToWrite  = errors.New("failed to write locale preference")
	ErrNilRedisClient = errors.New("redis client is nil")
)
