package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
)

// failureRecorder stands in for a testing.T and records failures instead of
// failing the running test.
type failureRecorder struct {
	failures  []string
	failedNow bool
}

func (r *failureRecorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *failureRecorder) FailNow() {
	r.failedNow = true
}

func TestAssertError(t *testing.T) {
	AssertError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrMarshalling, commonerrors.ErrUndefined)
	AssertError(t, commonerrors.New(commonerrors.ErrEmpty, "no values"), commonerrors.ErrEmpty)
}

func TestAssertErrorMismatch(t *testing.T) {
	recorder := &failureRecorder{}
	assert.False(t, AssertError(recorder, commonerrors.ErrUndefined, commonerrors.ErrNotFound))
	require.Len(t, recorder.failures, 1)
	assert.Contains(t, recorder.failures[0], "error assertion failure")
	assert.False(t, recorder.failedNow)

	assert.False(t, AssertError(recorder, nil, commonerrors.ErrEmpty))
	assert.Len(t, recorder.failures, 2)
}

func TestRequireError(t *testing.T) {
	RequireError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrMarshalling, commonerrors.ErrUndefined)
}

func TestRequireErrorMismatch(t *testing.T) {
	recorder := &failureRecorder{}
	RequireError(recorder, commonerrors.New(commonerrors.ErrInvalid, "bad input"), commonerrors.ErrEmpty)
	assert.True(t, recorder.failedNow)
	require.Len(t, recorder.failures, 1)
}

func TestAssertErrorDescription(t *testing.T) {
	AssertErrorDescription(t, commonerrors.New(commonerrors.ErrEmpty, "no values were provided"), "no values")
	RequireErrorDescription(t, commonerrors.Newf(commonerrors.ErrInvalid, "unsupported precision %v", 42), "precision")
}

func TestAssertErrorDescriptionMismatch(t *testing.T) {
	recorder := &failureRecorder{}
	assert.False(t, AssertErrorDescription(recorder, commonerrors.New(commonerrors.ErrInvalid, "unsupported precision"), "timeout"))
	require.Len(t, recorder.failures, 1)
	assert.Contains(t, recorder.failures[0], "error description assertion failure")
	assert.False(t, recorder.failedNow)
}

func TestRequireErrorDescriptionMismatch(t *testing.T) {
	recorder := &failureRecorder{}
	RequireErrorDescription(recorder, commonerrors.New(commonerrors.ErrInvalid, "unsupported precision"), "timeout")
	assert.True(t, recorder.failedNow)
	require.Len(t, recorder.failures, 1)
}
