package cmd

import (
	"strconv"
	"strings"

	"github.com/ARM-software/golang-numerics/numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/numerics/safecast"
)

// parseValues tokenises whitespace-separated numbers. Every token is parsed
// before returning so that a single report names all the faulty ones.
// isIntegral states whether the whole input can be reduced with integer
// arithmetic: it is false as soon as one token only parses as floating-point,
// or when forceFloat is set. floats always carries the full input; integers is
// only meaningful when isIntegral is true.
func parseValues(raw string, forceFloat bool) (integers []int64, floats []float64, isIntegral bool, err error) {
	tokens := strings.Fields(raw)
	isIntegral = !forceFloat
	var parseErrs []error
	for i := range tokens {
		token := tokens[i]
		integer, intErr := strconv.ParseInt(token, 10, 64)
		if intErr == nil {
			integers = append(integers, integer)
			floats = append(floats, safecast.ToFloat64(integer))
			continue
		}
		float, floatErr := strconv.ParseFloat(token, 64)
		if floatErr != nil {
			parseErrs = append(parseErrs, commonerrors.WrapErrorf(commonerrors.ErrMarshalling, floatErr, "token #%v `%v` is not a number", i+1, token))
			continue
		}
		isIntegral = false
		floats = append(floats, float)
	}
	err = commonerrors.Join(parseErrs...)
	if err != nil {
		return nil, nil, false, err
	}
	return
}
