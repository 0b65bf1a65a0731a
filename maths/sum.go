package maths

import (
	"iter"
	"slices"
)

//
// Sum utilities
//

// Sum returns the additive fold of all the elements of the slice `s`, starting
// from the zero value of `E` and accumulating in sequence order. Summing
// nothing is well defined: an empty slice returns zero.
func Sum[S ~[]E, E Addable](s S) E {
	return SumSequence(slices.Values(s))
}

// SumSequence is similar to Sum but works on a sequence. A nil sequence is
// considered empty and returns zero.
func SumSequence[E Addable](s iter.Seq[E]) (sum E) {
	if s == nil {
		return
	}
	for e := range s {
		sum += e
	}
	return
}

// SumValues returns the additive fold of the supplied arguments. At least one
// argument must be provided, which makes an empty call impossible rather than
// an error case.
func SumValues[E Comparable](first E, rest ...E) E {
	sum := first
	for i := range rest {
		sum += rest[i]
	}
	return sum
}
