package maths

import (
	"iter"
	"slices"
)

//
// Transform-reduce utilities
//

// MapFunc defines a function that maps an element of type T1 to type T2.
type MapFunc[T1, T2 any] func(T1) T2

// TransformReduce applies `f` to every element of the slice `s` and returns
// the additive fold of the transformed values, starting from the zero value of
// `R`. The element type is unconstrained: only the transformed values need to
// support addition. An empty slice returns zero.
func TransformReduce[E any, R Addable](s []E, f MapFunc[E, R]) R {
	return TransformReduceSequence(slices.Values(s), f)
}

// TransformReduceSequence is similar to TransformReduce but works on a
// sequence. A nil sequence or a nil mapping function returns zero.
func TransformReduceSequence[E any, R Addable](s iter.Seq[E], f MapFunc[E, R]) (result R) {
	if s == nil || f == nil {
		return
	}
	for e := range s {
		result += f(e)
	}
	return
}
