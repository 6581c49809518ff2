package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrBackendUnavailable is wrapped by backends whose persistence layer is
	// not present or not usable in the host environment.
	ErrBackendUnavailable = errors.New("storage backend unavailable")

	// ErrNotLoaded is returned by Store.Save before the initial Load completed.
	ErrNotLoaded = errors.New("store has not completed its initial load")

	// ErrDuplicateID is returned when a fresh id collides with existing notes.
	ErrDuplicateID = errors.New("could not generate a unique note id")
)

// ValidationError reports a note field rejected on creation: empty after
// trimming, or not valid UTF-8 (Reason is set then).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("note %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("note %s cannot be empty", e.Field)
}

// StorageUnavailableError reports that the persistence layer cannot be used.
type StorageUnavailableError struct {
	Key string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable for %q: %v", e.Key, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }

// StorageCorruptError reports a persisted record that could not be decoded.
// ID names the offending note when it is known.
type StorageCorruptError struct {
	Key string
	ID  string
	Err error
}

func (e *StorageCorruptError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("storage record %q is corrupt at note %q: %v", e.Key, e.ID, e.Err)
	}
	return fmt.Sprintf("storage record %q is corrupt: %v", e.Key, e.Err)
}

func (e *StorageCorruptError) Unwrap() error { return e.Err }

// StorageWriteError reports a failed persistence attempt.
// The in-memory collection stays authoritative.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to write storage record %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// IsStorageError reports whether err belongs to the storage error taxonomy.
func IsStorageError(err error) bool {
	var (
		unavailable *StorageUnavailableError
		corrupt     *StorageCorruptError
		write       *StorageWriteError
	)
	return errors.As(err, &unavailable) ||
		errors.As(err, &corrupt) ||
		errors.As(err, &write) ||
		errors.Is(err, ErrNotLoaded)
}

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
