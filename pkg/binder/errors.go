package binder

import "errors"

var (
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")
	ErrInvalidTarget     = errors.New("binder target must be a non-nil pointer to struct")
	ErrBodyTooLarge      = errors.New("request body too large")
)
