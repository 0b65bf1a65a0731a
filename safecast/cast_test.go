package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastingToInt(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{"zero", 0, 0},
		{"positive", 4.6, 4},
		{"negative", -4.6, -4},
		{"above upper boundary", 9223372036854775807.4, math.MaxInt},
		{"below lower boundary", -9223372036854775808.4, math.MinInt},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ToInt(test.value))
		})
	}
	t.Run("integer input", func(t *testing.T) {
		assert.Equal(t, 42, ToInt(int64(42)))
		assert.Equal(t, -1, ToInt(int8(-1)))
		assert.Equal(t, math.MaxInt, ToInt(uint64(math.MaxUint64)))
	})
}

func TestCastingToInt64(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int64
	}{
		{"zero", 0, 0},
		{"positive", 4.6, 4},
		{"negative", -4.6, -4},
		{"above upper boundary", 9223372036854775807.4, math.MaxInt64},
		{"below lower boundary", -9223372036854775808.4, math.MinInt64},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ToInt64(test.value))
		})
	}
	t.Run("different types", func(t *testing.T) {
		assert.Equal(t, int64(-4), ToInt64(float32(-4.6)))
		assert.Equal(t, int64(math.MaxInt64), ToInt64(uint64(math.MaxUint64)))
		assert.Equal(t, int64(25), ToInt64(25))
		assert.Equal(t, int64(0), ToInt64(uint16(0)))
	})
	t.Run("values at the boundaries", func(t *testing.T) {
		// the lower boundary is exactly representable, the upper is not: the
		// closest float64 below it is 1024 apart
		assert.Equal(t, int64(math.MinInt64), ToInt64(float64(math.MinInt64)))
		assert.Equal(t, int64(math.MaxInt64)-1023, ToInt64(math.Nextafter(float64(math.MaxInt64), 0)))
	})
}

func TestCastingToFloat64(t *testing.T) {
	assert.Equal(t, 10.0, ToFloat64(int64(10)))
	assert.Equal(t, 0.5, ToFloat64(float32(0.5)))
	assert.Equal(t, 255.0, ToFloat64(uint8(math.MaxUint8)))
	assert.Equal(t, -4.0, ToFloat64(-4))
	assert.Equal(t, math.Ldexp(1, 64), ToFloat64(uint64(math.MaxUint64)))
}
