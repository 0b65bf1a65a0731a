package maths

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/numerics/safecast"
)

//
// Population variance utilities
//

// Variance returns the population variance of the elements of the slice `s`:
// the mean of the squared deviations from the mean, divided by the full element
// count rather than count-1. The computation happens in the float64 domain
// whatever `E` is, and the deviations are taken from the real mean: for
// integral element types, Sum(s) is widened to float64 and divided without the
// truncation Mean applies. An empty slice returns an error of type
// commonerrors.ErrEmpty.
func Variance[S ~[]E, E Number](s S) (variance float64, err error) {
	if len(s) == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot compute the variance of an empty collection")
		return
	}
	var mean float64
	if isIntegerDomain[E]() {
		mean = safecast.ToFloat64(Sum(s)) / float64(len(s))
	} else {
		mean = meanFloat64(s)
	}
	for i := range s {
		deviation := safecast.ToFloat64(s[i]) - mean
		variance += deviation * deviation
	}
	variance /= float64(len(s))
	return
}

// VarianceSequence is similar to Variance but works on a sequence. The elements
// are collected first as the computation requires two passes over them. A nil
// or empty sequence returns an error of type commonerrors.ErrEmpty.
func VarianceSequence[E Number](s iter.Seq[E]) (float64, error) {
	if s == nil {
		return 0, commonerrors.New(commonerrors.ErrEmpty, "cannot compute the variance of an empty collection")
	}
	return Variance(slices.Collect(s))
}

// VarianceValues returns the population variance of the supplied arguments,
// always computed in the float64 domain: the mean of the widened arguments is
// taken first, then the mean of the squared deviations from it. At least one
// argument must be provided, which makes an empty call impossible rather than
// an error case.
func VarianceValues[E Comparable](first E, rest ...E) float64 {
	mean := MeanValues(first, rest...)
	deviation := safecast.ToFloat64(first) - mean
	variance := deviation * deviation
	for i := range rest {
		deviation = safecast.ToFloat64(rest[i]) - mean
		variance += deviation * deviation
	}
	return variance / float64(len(rest)+1)
}
