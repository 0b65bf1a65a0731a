// Package commonerrors defines the error types used across the module so that
// callers can reason about failures using errors.Is rather than string comparison.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrUnknown        = errors.New("unknown")
	ErrUnexpected     = errors.New("unexpected")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCancelled      = errors.New("cancelled")
	ErrTimeout        = errors.New("timeout")
	ErrEmpty          = errors.New("empty")
	ErrTooLarge       = errors.New("too large")
	ErrEOF            = errors.New("end of file")
)

// Any determines whether the target error corresponds to any of the errors `err`.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error corresponds to none of the errors `err`.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// New returns an error of type `errType` with a description of the reason.
func New(errType error, description string) error {
	return fmt.Errorf("%w: %v", errType, description)
}

// Newf returns an error of type `errType` with a formatted description of the reason.
func Newf(errType error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", errType, fmt.Sprintf(format, args...))
}

// WrapError wraps the error `err` into an error of type `errType` so that the cause
// is retained but the error can be matched against `errType`.
func WrapError(errType, err error, description string) error {
	if err == nil {
		return New(errType, description)
	}
	if description == "" {
		return fmt.Errorf("%w: %w", errType, err)
	}
	return fmt.Errorf("%w: %v: %w", errType, description, err)
}

// WrapErrorf is similar to WrapError but accepts a formatted description.
func WrapErrorf(errType, err error, format string, args ...any) error {
	return WrapError(errType, err, fmt.Sprintf(format, args...))
}

// ConvertContextError converts a context error into a common error so that
// cancellations and timeouts can be matched against ErrCancelled and
// ErrTimeout respectively.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return WrapError(ErrCancelled, err, "")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(ErrTimeout, err, "")
	}
	return err
}

// Ignore returns nil if the error corresponds to any of the errors `ignore`.
func Ignore(err error, ignore ...error) error {
	if Any(err, ignore...) {
		return nil
	}
	return err
}

// CorrespondTo determines whether the error description contains any of the
// descriptions `description`. The comparison is case insensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	errStr := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(errStr, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// Join aggregates multiple errors into one. Nil errors are discarded and nil is
// returned if no error is left. The resulting error can be matched against any
// of the aggregated errors using errors.Is.
func Join(errs ...error) error {
	return multierror.Append(new(multierror.Error), errs...).ErrorOrNil()
}
