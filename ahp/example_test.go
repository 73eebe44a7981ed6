package ahp_test

import (
	"fmt"

	"github.com/katalvlaran/ecoeval/ahp"
	"github.com/katalvlaran/ecoeval/matrix"
)

// ExampleEvaluate weighs three ecological criteria (soil quality, water
// use, biodiversity) from a perfectly consistent expert judgment matrix.
func ExampleEvaluate() {
	A, err := matrix.NewFromRows([][]float64{
		{1, 2, 4},
		{0.5, 1, 2},
		{0.25, 0.5, 1},
	}, matrix.AlternativesByIndicators)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := ahp.Evaluate(A, ahp.WithMethod(ahp.Geometric))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("weights=[%.4f %.4f %.4f]\n", res.Weights[0], res.Weights[1], res.Weights[2])
	fmt.Println("accepted:", res.Consistency.Accepted)
	// Output:
	// weights=[0.5714 0.2857 0.1429]
	// accepted: true
}
