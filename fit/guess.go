// Package fit: initial-guess estimation for the exponential model.
//
// The seed comes from a log-linearization: subtract the background offset,
// clamp what is left into the positive domain, and fit a straight line to
// (x, log y). The line's slope and intercept back-map onto decay length and
// amplitude. Ordinary least squares runs through a Vandermonde matrix and a
// QR factorization.
package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/morphofit/model"
)

// InitialGuess derives the exponential model's starting parameter vector
// from the data.
//
// Procedure:
//  1. offsetEstimate = the policy's fixed/seed value if provided, else min(y).
//  2. yShifted = y − offsetEstimate; non-positive entries are clamped to the
//     smallest strictly positive yShifted value (log guard). If no positive
//     value exists the input is degenerate and the call fails.
//  3. Fit log(yShifted) = b + m·x by ordinary least squares; back-map
//     amplitude = exp(b), decayLength = −1/m.
//  4. Under a Free offset policy, append the offset seed (explicit value if
//     given, else min(y)).
//
// Returns the guess in the positional ordering of the exponential model.
//
// Errors:
//   - ErrLengthMismatch   if len(x) != len(y).
//   - ErrTooFewPoints     if fewer than 2 points are given.
//   - ErrNoPositiveSignal if nothing remains above the offset estimate.
func InitialGuess(x, y []float64, off model.OffsetPolicy) ([]float64, error) {
	// 1) Validate shape.
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(y) < 2 {
		return nil, ErrTooFewPoints
	}

	// 2) Background subtraction.
	offsetEstimate, ok := off.Seed()
	if !ok {
		offsetEstimate = floats.Min(y)
	}
	shifted := make([]float64, len(y))
	for i, v := range y {
		shifted[i] = v - offsetEstimate
	}

	// 3) Log guard: clamp non-positive entries to the smallest positive one.
	smallest := math.Inf(1)
	for _, v := range shifted {
		if v > 0 && v < smallest {
			smallest = v
		}
	}
	if math.IsInf(smallest, 1) {
		return nil, ErrNoPositiveSignal
	}
	logY := make([]float64, len(shifted))
	for i, v := range shifted {
		if v <= 0 {
			v = smallest
		}
		logY[i] = math.Log(v)
	}

	// 4) Degree-1 OLS and back-map.
	slope, intercept, err := lineFit(x, logY)
	if err != nil {
		return nil, err
	}
	guess := []float64{math.Exp(intercept), -1 / slope}

	// 5) Offset seed for the Free policy.
	if off.Free() {
		seed, given := off.Seed()
		if !given {
			seed = floats.Min(y)
		}
		guess = append(guess, seed)
	}

	return guess, nil
}

// lineFit solves the degree-1 least-squares problem over (x, y) via a
// Vandermonde matrix and QR factorization, returning slope and intercept.
func lineFit(x, y []float64) (slope, intercept float64, err error) {
	a := mat.NewDense(len(x), 2, nil)
	for i, v := range x {
		a.Set(i, 0, 1)
		a.Set(i, 1, v)
	}
	b := mat.NewVecDense(len(y), y)
	c := mat.NewVecDense(2, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err = qr.SolveVecTo(c, false, b); err != nil {
		return 0, 0, fmt.Errorf("fit: initial-guess regression: %w", err)
	}

	return c.AtVec(1), c.AtVec(0), nil
}
