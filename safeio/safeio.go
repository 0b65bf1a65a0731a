// Package safeio provides functions similar to utilities in the built-in io
// package but with safety nets: reads are bounded and stop when the supplied
// context is done.
package safeio

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/dolmen-go/contextio"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
)

// ReadAll reads the whole content of src similarly to io.ReadAll but with
// context control to stop when asked to.
func ReadAll(ctx context.Context, src io.Reader) ([]byte, error) {
	return ReadAtMost(ctx, src, -1, -1)
}

// ReadAtMost reads the content of src up to max bytes. A negative max reads
// the entirety of the reader. A negative bufferCapacity defaults to max when
// set, or to a small initial capacity.
func ReadAtMost(ctx context.Context, src io.Reader, max int64, bufferCapacity int64) (content []byte, err error) {
	if bufferCapacity < 0 {
		if max < 0 {
			bufferCapacity = bytes.MinRead
		} else {
			bufferCapacity = max
		}
	}
	err = determineContextError(ctx)
	if err != nil {
		return
	}

	buf := bytes.NewBuffer(make([]byte, 0, bufferCapacity))
	// A buffer overflow is raised as a bytes.ErrTooLarge panic. Return it as
	// an error, any other panic remains.
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if panicErr, ok := e.(error); ok && errors.Is(panicErr, bytes.ErrTooLarge) {
			err = commonerrors.WrapError(commonerrors.ErrTooLarge, panicErr, "")
		} else {
			panic(e)
		}
	}()
	reader := src
	if max >= 0 {
		reader = io.LimitReader(src, max)
	}
	read, err := buf.ReadFrom(contextio.NewReader(ctx, reader))
	err = ConvertIOError(err)
	if err != nil {
		return
	}
	if read == int64(0) {
		err = commonerrors.New(commonerrors.ErrEmpty, "no bytes were read")
	}
	content = buf.Bytes()
	return
}

// ConvertIOError converts an I/O error into common errors.
func ConvertIOError(err error) (newErr error) {
	if err == nil {
		return
	}
	newErr = commonerrors.ConvertContextError(err)
	switch {
	case commonerrors.Any(newErr, commonerrors.ErrEOF):
	case commonerrors.Any(newErr, io.EOF, io.ErrUnexpectedEOF):
		newErr = commonerrors.WrapError(commonerrors.ErrEOF, newErr, "")
	}
	return
}

func determineContextError(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return commonerrors.ConvertContextError(ctx.Err())
}
