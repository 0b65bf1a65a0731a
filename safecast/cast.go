// Package safecast provides numeric conversions which cannot overflow: a value
// outside the range of the destination type is clamped to the closest boundary
// of that range instead of wrapping around.
package safecast

import "math"

// ToInt converts any [IConvertable] value to an int. A value outside the int
// range of the platform yields the nearest boundary, math.MinInt or
// math.MaxInt, instead.
func ToInt[C IConvertable](value C) int {
	return int(clampedInt64(value, math.MinInt, math.MaxInt))
}

// ToInt64 converts any [IConvertable] value to an int64. A value outside the
// int64 range yields the nearest boundary, math.MinInt64 or math.MaxInt64,
// instead.
func ToInt64[C IConvertable](value C) int64 {
	return clampedInt64(value, math.MinInt64, math.MaxInt64)
}

// ToFloat64 converts any [IConvertable] value to a float64. Every numeric
// value fits, at the cost of rounding for integers of magnitude above 2^53.
func ToFloat64[C IConvertable](value C) float64 {
	return float64(value)
}
