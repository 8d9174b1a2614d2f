package marina

import (
	"errors"
	"fmt"
)

// Sentinel errors, to be tested with errors.Is.
var (
	// ErrMalformedRecord is returned when a record does not split into the expected fields.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidNumber is returned for a length, location number or amount that is not a valid number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNotFound is returned when no boat has the requested name.
	ErrNotFound = errors.New("no boat with that name")
	// ErrOverPayment is returned when a payment exceeds the amount owed.
	ErrOverPayment = errors.New("payment exceeds the amount owed")
	// ErrInvalidAmount is returned for a negative payment.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrCapacityExceeded is returned when the registry is full.
	ErrCapacityExceeded = errors.New("registry is full")
	// ErrDuplicateName is returned when duplicates are rejected and the name is already registered.
	ErrDuplicateName = errors.New("boat name already registered")
	// ErrIO is returned when the registry file cannot be read or written.
	ErrIO = errors.New("i/o error")
)

// RecordError locates a record that could not be loaded.
type RecordError struct {
	Line   int // 1-based line number
	Record string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Record, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
