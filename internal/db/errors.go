package db

import (
	"errors"
	"fmt"
)

// Validation failures the caller can correct by changing its input
var (
	ErrInvalidDate = errors.New("invalid date format. Use: YYYY-MM-DD")
	ErrEmptyName   = errors.New("emotion name is required")
)

// Storage failure kinds. Match them with errors.Is(err, db.ErrWriteFailed).
var (
	ErrOpenFailed  = errors.New("storage open failed")
	ErrWriteFailed = errors.New("storage write failed")
	ErrQueryFailed = errors.New("storage query failed")
)

// ValidationError reports rejected caller input. No row is written when it is returned.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError wraps a failure of the underlying database.
// Kind is one of ErrOpenFailed, ErrWriteFailed or ErrQueryFailed.
type StorageError struct {
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Unwrap exposes both the kind and the driver error to errors.Is / errors.As
func (e *StorageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func openFailed(err error) error  { return &StorageError{Kind: ErrOpenFailed, Err: err} }
func writeFailed(err error) error { return &StorageError{Kind: ErrWriteFailed, Err: err} }
func queryFailed(err error) error { return &StorageError{Kind: ErrQueryFailed, Err: err} }
