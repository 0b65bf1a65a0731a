package maths_test

import (
	"fmt"

	"github.com/ARM-software/golang-numerics/numerics/maths"
)

func ExampleSum() {
	fmt.Println(maths.Sum([]int{1, 2, 3, 4}))
	fmt.Println(maths.Sum([]float64{1.5, 2.0, 0.5}))
	// Output:
	// 10
	// 4
}

func ExampleMean() {
	integralMean, _ := maths.Mean([]int{1, 2, 3, 4})
	floatingMean, _ := maths.Mean([]float64{1.0, 2.0, 3.0, 4.0})

	fmt.Println(integralMean)
	fmt.Println(floatingMean)
	// Output:
	// 2
	// 2.5
}

func ExampleVariance() {
	integralVariance, _ := maths.Variance([]int{1, 2, 3, 4})
	floatingVariance, _ := maths.Variance([]float64{1.0, 2.0, 3.0, 4.0})

	fmt.Println(integralVariance)
	fmt.Println(floatingVariance)
	// Output:
	// 1.25
	// 1.25
}

func ExampleMax() {
	maximum, _ := maths.Max([]int{3, 9, 2, 7})
	floatingMaximum, _ := maths.Max([]float64{1.2, 4.8, 3.1})

	fmt.Println(maximum)
	fmt.Println(floatingMaximum)
	// Output:
	// 9
	// 4.8
}

func ExampleTransformReduce() {
	fmt.Println(maths.TransformReduce([]int{1, 2, 3}, func(x int) int { return x * x }))
	fmt.Println(maths.TransformReduce([]int{1, 2, 3}, func(x int) int { return x + 10 }))
	// Output:
	// 14
	// 36
}

func ExampleSumValues() {
	fmt.Println(maths.SumValues(1, 2, 33, 4))
	fmt.Println(maths.SumValues(0.5, 1, 2.5))
	// Output:
	// 40
	// 4
}

func ExampleMeanValues() {
	fmt.Println(maths.MeanValues(1, 2, 3, 4))
	// Output:
	// 2.5
}

func ExampleVarianceValues() {
	fmt.Println(maths.VarianceValues(1, 2, 3, 4))
	// Output:
	// 1.25
}

func ExampleMaxValues() {
	fmt.Println(maths.MaxValues(1, 2, 33, 4))
	fmt.Println(maths.MaxValues(1, 2.7, 3, 4))
	// Output:
	// 33
	// 4
}
