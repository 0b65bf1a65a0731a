package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzToInt64(f *testing.F) {
	f.Add(0.0)
	f.Add(4.6)
	f.Add(-4.6)
	f.Add(float64(math.MaxInt64))
	f.Add(float64(math.MinInt64))
	f.Add(math.MaxFloat64)
	f.Add(-math.MaxFloat64)
	f.Add(math.Inf(1))
	f.Add(math.Inf(-1))
	f.Fuzz(func(t *testing.T, value float64) {
		if math.IsNaN(value) {
			t.Skip("converting NaN to an integer is implementation defined")
		}
		converted := ToInt64(value)
		switch {
		case value >= float64(math.MaxInt64):
			assert.Equal(t, int64(math.MaxInt64), converted)
		case value <= float64(math.MinInt64):
			assert.Equal(t, int64(math.MinInt64), converted)
		default:
			assert.Equal(t, int64(value), converted)
		}
	})
}

func FuzzToInt64FromUnsigned(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(math.MaxInt64))
	f.Add(uint64(math.MaxInt64) + 1)
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, value uint64) {
		converted := ToInt64(value)
		assert.GreaterOrEqual(t, converted, int64(0))
		if value > uint64(math.MaxInt64) {
			assert.Equal(t, int64(math.MaxInt64), converted)
		} else {
			assert.Equal(t, value, uint64(converted))
		}
	})
}

func FuzzToInt(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, value int64) {
		converted := ToInt(value)
		if value >= math.MinInt && value <= math.MaxInt {
			assert.Equal(t, int(value), converted)
		}
		// the result survives the round trip through int64 whatever the
		// platform width of int
		assert.Equal(t, int64(converted), ToInt64(converted))
	})
}

func FuzzToFloat64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1) << 53)
	f.Add(-(int64(1) << 53))
	f.Add(int64(math.MaxInt64))
	f.Add(int64(math.MinInt64))
	f.Fuzz(func(t *testing.T, value int64) {
		converted := ToFloat64(value)
		if value >= -(1<<53) && value <= 1<<53 {
			// integers of magnitude up to 2^53 widen exactly
			assert.Equal(t, value, ToInt64(converted))
		} else {
			assert.InEpsilon(t, float64(value), float64(ToInt64(converted)), 1e-15)
		}
	})
}
