// Package maths provides generic reductions over collections of numbers: sums,
// means, population variances, extrema and transform-reduce folds, in slice,
// sequence and variadic argument form. Element types are constrained so that an
// operation which makes no sense for a type is rejected at compile time rather
// than producing a wrong answer at runtime.
package maths

import "golang.org/x/exp/constraints"

// Addable is an alias for every element type whose values can be folded with
// the `+` operator: all integers, floating point numbers and complex numbers.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Divisible is an alias for every element type whose values can be divided by
// an element count: all integers and floating point numbers.
type Divisible interface {
	constraints.Integer | constraints.Float
}

// Comparable is an alias for every element type whose values can be ordered
// with the `>` operator whilst carrying numeric meaning: all integers and
// floating point numbers. Strings are text rather than numbers and do not
// qualify, although byte and rune are aliases for uint8 and int32 and are
// therefore treated like any other integer type.
type Comparable interface {
	constraints.Integer | constraints.Float
}

// Number is an alias for all integer and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// isIntegerDomain reports whether the arithmetic of `E` is integral. The domain
// is determined once per reduction rather than once per element: integer
// division truncates 1/2 to zero whereas floating point division does not, and
// this holds for any type whose underlying type is an integer.
func isIntegerDomain[E Number]() bool {
	return E(1)/E(2) == E(0)
}
