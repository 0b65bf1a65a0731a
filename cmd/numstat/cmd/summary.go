package cmd

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ARM-software/golang-numerics/numerics/maths"
)

// Summary aggregates the reductions numstat reports for a collection of
// numbers. Sum and the extrema keep the element type so that integral inputs
// are reported without any floating-point rounding.
type Summary[E maths.Number] struct {
	Count    int     `json:"count"`
	Distinct int     `json:"distinct"`
	Sum      E       `json:"sum"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Minimum  E       `json:"minimum"`
	Maximum  E       `json:"maximum"`
}

// Summarise reduces values to its Summary. It errors with
// commonerrors.ErrEmpty when values carries no element.
func Summarise[E maths.Number](values []E) (summary *Summary[E], err error) {
	mean, err := maths.MeanFloat64(values)
	if err != nil {
		return
	}
	variance, err := maths.Variance(values)
	if err != nil {
		return
	}
	minimum, err := maths.Min(values)
	if err != nil {
		return
	}
	maximum, err := maths.Max(values)
	if err != nil {
		return
	}
	summary = &Summary[E]{
		Count:    len(values),
		Distinct: mapset.NewSet(values...).Cardinality(),
		Sum:      maths.Sum(values),
		Mean:     mean,
		Variance: variance,
		Minimum:  minimum,
		Maximum:  maximum,
	}
	return
}
