// Package apperr defines the error kinds the HTTP layer translates into
// status codes. Kinds are cockroachdb/errors marks, so they survive wrapping.
package apperr

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Validation returns a 400-class error whose message is shown to the client.
func Validation(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

func Forbidden(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrForbidden)
}

func NotFound(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

func Conflict(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConflict)
}

// Message is the client-facing text of err: the innermost message for
// marked errors, without any wrapping prefixes added along the way.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return errors.UnwrapAll(err).Error()
}
