package fit_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/morphofit/fit"
	"github.com/katalvlaran/morphofit/model"
)

// ExampleFit fits the exponential model to a clean synthetic gradient with a
// known fixed background and reports the recovered parameters.
func ExampleFit() {
	// y = 1·exp(−x/0.5), measured every 0.02 over [0, 3].
	x := make([]float64, 151)
	y := make([]float64, 151)
	for i := range x {
		x[i] = float64(i) * 0.02
		y[i] = math.Exp(-x[i] / 0.5)
	}

	sum, err := fit.Fit(x, y, model.FixedOffset(0), model.Landmarks{})
	if err != nil {
		fmt.Println("fit failed:", err)

		return
	}

	res := sum[model.Exponential]
	fmt.Printf("amplitude   ≈ %.3f\n", res.Params[0])
	fmt.Printf("decayLength ≈ %.3f\n", res.Params[1])
	fmt.Printf("R² > 0.999  : %v\n", res.R2 > 0.999)
	fmt.Printf("warning     : %v\n", res.Warning)
	// Output:
	// amplitude   ≈ 1.000
	// decayLength ≈ 0.500
	// R² > 0.999  : true
	// warning     : false
}

// ExampleFit_twoDomain requests the conditional two-domain fit: the
// interface boundary landmark becomes mandatory, and the result map gains a
// second entry seeded from the exponential best fit.
func ExampleFit_twoDomain() {
	lm := model.NewLandmarks(1)
	x := make([]float64, 101)
	for i := range x {
		x[i] = float64(i) * 0.02
	}
	y, _ := model.EvalTwoDomain([]float64{1, 0.5, 0.1}, x, lm, model.FixedOffset(0))

	sum, err := fit.Fit(x, y, model.FixedOffset(0), lm, fit.WithTwoDomain())
	if err != nil {
		fmt.Println("fit failed:", err)

		return
	}

	res := sum[model.TwoDomain]
	fmt.Printf("proximal ≈ %.2f, distal ≈ %.2f\n", res.Params[1], res.Params[2])
	// Output:
	// proximal ≈ 0.50, distal ≈ 0.10
}
