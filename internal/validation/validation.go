// Package validation defines the error type returned for malformed
// households, life-event parameters, and sweep bounds. These errors are
// never retried and always identify the offending field.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Error reports a single invalid field.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates field errors from one validation pass.
type Errors []*Error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ErrOrNil returns the slice as an error, or nil when empty.
func (e Errors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Newf creates a field error with a formatted message.
func Newf(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var single *Error
	var multi Errors
	return errors.As(err, &single) || errors.As(err, &multi)
}
