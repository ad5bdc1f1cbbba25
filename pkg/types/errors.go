package types

import (
	"errors"
	"fmt"
)

// Standard errors surfaced by the repositories and the codec. Callers
// distinguish failures with errors.Is.
var (
	// ErrNotFound is returned when an operation references a missing
	// entry or journal id.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned for malformed input, such as an entry
	// draft without content or a journal draft without a name.
	ErrValidation = errors.New("invalid input")

	// ErrCannotDeleteDefault is returned on an attempt to delete the
	// default journal.
	ErrCannotDeleteDefault = errors.New("cannot delete the default journal")

	// ErrParse is returned when an import document is not valid JSON or
	// not a JSON object.
	ErrParse = errors.New("import document malformed")

	// ErrTransfer is returned when an entry transfer names the same
	// journal twice or a missing destination.
	ErrTransfer = errors.New("entry transfer rejected")
)

// StoreError wraps an underlying persistence failure (quota, I/O, closed
// database). No partial-write recovery is attempted; the caller retries the
// whole operation.
type StoreError struct {
	Op  string // Store operation that failed, e.g. "put entry".
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for the given operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err is (or wraps) a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
