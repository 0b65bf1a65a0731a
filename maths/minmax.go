package maths

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
)

//
// Extremum utilities
//

// Max returns the greatest element of the slice `s` under the `>` operator.
// When several elements compare equal to the maximum, the first one encountered
// wins. An empty slice has no maximum and returns an error of type
// commonerrors.ErrEmpty rather than a made up value.
func Max[S ~[]E, E Comparable](s S) (E, error) {
	return MaxSequence(slices.Values(s))
}

// MaxSequence is similar to Max but works on a sequence. A nil or empty
// sequence returns an error of type commonerrors.ErrEmpty.
func MaxSequence[E Comparable](s iter.Seq[E]) (maximum E, err error) {
	found := false
	if s != nil {
		for e := range s {
			if !found || e > maximum {
				maximum = e
				found = true
			}
		}
	}
	if !found {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot determine the maximum of an empty collection")
	}
	return
}

// MaxValues returns the greatest of the supplied arguments, seeded with the
// first one and keeping the earliest value on ties. At least one argument must
// be provided, which makes an empty call impossible rather than an error case.
func MaxValues[E Comparable](first E, rest ...E) E {
	maximum := first
	for i := range rest {
		if rest[i] > maximum {
			maximum = rest[i]
		}
	}
	return maximum
}

// Min returns the smallest element of the slice `s` under the `<` operator.
// When several elements compare equal to the minimum, the first one encountered
// wins. An empty slice has no minimum and returns an error of type
// commonerrors.ErrEmpty.
func Min[S ~[]E, E Comparable](s S) (E, error) {
	return MinSequence(slices.Values(s))
}

// MinSequence is similar to Min but works on a sequence. A nil or empty
// sequence returns an error of type commonerrors.ErrEmpty.
func MinSequence[E Comparable](s iter.Seq[E]) (minimum E, err error) {
	found := false
	if s != nil {
		for e := range s {
			if !found || e < minimum {
				minimum = e
				found = true
			}
		}
	}
	if !found {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot determine the minimum of an empty collection")
	}
	return
}

// MinValues returns the smallest of the supplied arguments, seeded with the
// first one and keeping the earliest value on ties. At least one argument must
// be provided, which makes an empty call impossible rather than an error case.
func MinValues[E Comparable](first E, rest ...E) E {
	minimum := first
	for i := range rest {
		if rest[i] < minimum {
			minimum = rest[i]
		}
	}
	return minimum
}
