// ================== pkg/errors/errors.go =================
package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrSelfClaim    = errors.New("cannot claim your own item")
)

// ValidationError wraps ErrValidation with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation builds a field-level validation error.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// TimeoutError is returned when a moderated user tries to post before
// their timeout expires. Until is surfaced to the client so the UI can
// show when posting becomes available again.
type TimeoutError struct {
	Until time.Time
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("account timed out until %s", e.Until.Format(time.RFC3339))
}

// PersistenceError wraps a failed or timed-out store operation. Handlers
// translate it to a generic retryable failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err unless it is already a domain error.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) || errors.Is(err, ErrSelfClaim) {
		return err
	}
	var te *TimeoutError
	if errors.As(err, &te) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain matching target.
func As(err error, target any) bool { return errors.As(err, target) }
