// Package errortest provides test assertions on errors defined by commonerrors
// so that expectations are expressed in terms of error types rather than messages.
package errortest

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
)

// TestingT is the subset of [testing.T] the Assert helpers rely upon, the same
// shape testify's assert package accepts.
type TestingT interface {
	Errorf(format string, args ...any)
}

// FailNowTestingT is the subset of [testing.T] the Require helpers rely upon,
// the same shape testify's require package accepts.
type FailNowTestingT interface {
	TestingT
	FailNow()
}

type tHelper interface {
	Helper()
}

// AssertError asserts that the error matches one of the `expectedErrors` in the
// sense of commonerrors.Any.
func AssertError(t TestingT, err error, expectedErrors ...error) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if commonerrors.Any(err, expectedErrors...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("error assertion failure:\n actual: %v\n expected any of: %+v", err, expectedErrors))
}

// RequireError is similar to AssertError but fails the test immediately.
func RequireError(t FailNowTestingT, err error, expectedErrors ...error) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertError(t, err, expectedErrors...) {
		t.FailNow()
	}
}

// AssertErrorDescription asserts that the error description corresponds to one of
// the `expectedDescriptions` in the sense of commonerrors.CorrespondTo.
func AssertErrorDescription(t TestingT, err error, expectedDescriptions ...string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if commonerrors.CorrespondTo(err, expectedDescriptions...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("error description assertion failure:\n actual: %v\n expected any of: %+v", err, expectedDescriptions))
}

// RequireErrorDescription is similar to AssertErrorDescription but fails the test
// immediately.
func RequireErrorDescription(t FailNowTestingT, err error, expectedDescriptions ...string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertErrorDescription(t, err, expectedDescriptions...) {
		t.FailNow()
	}
}
