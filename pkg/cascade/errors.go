package cascade

import "errors"

var (
	// ErrClosed is returned by Toggle after Close.
	ErrClosed = errors.New("cascade: resolver is closed")

	// ErrPersistPreference wraps a store failure during Toggle. The new locale
	// is still in effect for the current view.
	ErrPersistPreference = errors.New("cascade: failed to persist locale preference")

	// ErrNilStore is returned by New when no preference store is supplied.
	ErrNilStore = errors.New("cascade: preference store is nil")
)
