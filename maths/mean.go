package maths

import (
	"iter"

	"go.uber.org/atomic"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/numerics/safecast"
)

//
// Mean utilities
//

// Mean returns the arithmetic mean of the elements of the slice `s`. The
// numeric domain of `E` is determined once per call and drives the arithmetic:
//   - integral element types divide Sum(s) by the element count in `E`, with
//     truncating integer division, so the mean of [1 2 3 4] is 2 rather than 2.5.
//   - floating point element types accumulate every element as a float64 and
//     divide in that precision regardless of the native width of `E`.
//
// An empty slice has no mean and returns an error of type commonerrors.ErrEmpty.
func Mean[S ~[]E, E Divisible](s S) (mean E, err error) {
	if len(s) == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot compute the mean of an empty collection")
		return
	}
	if isIntegerDomain[E]() {
		mean = Sum(s) / E(len(s))
		return
	}
	mean = E(meanFloat64(s))
	return
}

// MeanFloat64 returns the arithmetic mean of the elements of the slice `s`
// computed entirely in the float64 domain whatever `E` is. Unlike Mean, the
// mean of an integral slice is not truncated. An empty slice returns an error
// of type commonerrors.ErrEmpty.
func MeanFloat64[S ~[]E, E Number](s S) (mean float64, err error) {
	if len(s) == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot compute the mean of an empty collection")
		return
	}
	mean = meanFloat64(s)
	return
}

// MeanSequence is similar to Mean but works on a sequence. A nil or empty
// sequence returns an error of type commonerrors.ErrEmpty.
func MeanSequence[E Divisible](s iter.Seq[E]) (mean E, err error) {
	if !isIntegerDomain[E]() {
		m, subErr := MeanFloat64Sequence(s)
		if subErr != nil {
			err = subErr
			return
		}
		mean = E(m)
		return
	}
	var sum E
	count := atomic.NewUint64(0)
	if s != nil {
		for e := range s {
			sum += e
			count.Inc()
		}
	}
	n := safecast.ToInt(count.Load())
	if n == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot compute the mean of an empty collection")
		return
	}
	mean = sum / E(n)
	return
}

// MeanFloat64Sequence is similar to MeanFloat64 but works on a sequence. A nil
// or empty sequence returns an error of type commonerrors.ErrEmpty.
func MeanFloat64Sequence[E Number](s iter.Seq[E]) (mean float64, err error) {
	sum := 0.0
	count := atomic.NewUint64(0)
	if s != nil {
		for e := range s {
			sum += safecast.ToFloat64(e)
			count.Inc()
		}
	}
	n := safecast.ToInt(count.Load())
	if n == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot compute the mean of an empty collection")
		return
	}
	mean = sum / float64(n)
	return
}

// MeanValues returns the arithmetic mean of the supplied arguments, always
// computed in the float64 domain: integral arguments are widened rather than
// divided with truncation, so the mean of (1, 2, 3, 4) is 2.5 in contrast with
// Mean. At least one argument must be provided, which makes an empty call
// impossible rather than an error case.
func MeanValues[E Comparable](first E, rest ...E) float64 {
	sum := safecast.ToFloat64(first)
	for i := range rest {
		sum += safecast.ToFloat64(rest[i])
	}
	return sum / float64(len(rest)+1)
}

func meanFloat64[S ~[]E, E Number](s S) float64 {
	sum := 0.0
	for i := range s {
		sum += safecast.ToFloat64(s[i])
	}
	return sum / float64(len(s))
}
