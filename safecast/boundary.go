package safecast

// clampedInt64 converts value to an int64 constrained to [lower, upper]
// without overflowing on the way there. Both call sites pass the full range
// of a signed type, so lower < 0 < upper. Floating point inputs are compared
// in their own domain; integer inputs go through uint64 or int64 depending on
// their sign, each of which holds every integer value of that sign exactly.
func clampedInt64[C IConvertable](value C, lower, upper int64) int64 {
	switch f := any(value).(type) {
	case float64:
		return clampedFloatToInt64(f, lower, upper)
	case float32:
		return clampedFloatToInt64(float64(f), lower, upper)
	}
	if value > 0 {
		if uint64(value) > uint64(upper) {
			return upper
		}
		return int64(value)
	}
	if int64(value) < lower {
		return lower
	}
	return int64(value)
}

// clampedFloatToInt64 compares before converting. float64(upper) rounds up to
// upper+1 when upper is math.MaxInt64, so equality with a boundary counts as
// out of range; an exactly representable boundary converts to itself either
// way.
func clampedFloatToInt64(f float64, lower, upper int64) int64 {
	if f >= float64(upper) {
		return upper
	}
	if f <= float64(lower) {
		return lower
	}
	return int64(f)
}
