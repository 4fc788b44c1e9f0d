// SPDX-License-Identifier: MIT
// Package special: Heaviside step and real-argument Airy kernels.
//
// Purpose:
//   - Centralize the transcendental primitives the model evaluators depend on,
//     so every evaluator shares one step convention and one Airy source.
//
// Determinism & Performance:
//   - Pure functions, no state, no allocations.
//   - Airy calls delegate to gonum's complex Amos port; one complex evaluation
//     per call (two for the second kind).

package special

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mathext"
)

// Step is the Heaviside unit-step selector used to switch between piecewise
// model branches.
//
// Convention (load-bearing): Step(0) == 1, so at the interface boundary both
// gated branches of a piecewise evaluator are active simultaneously.
//
//	Step(x) = 0 for x < 0
//	Step(x) = 1 for x ≥ 0
//
// NaN input returns NaN.
func Step(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x < 0 {
		return 0
	}

	return 1
}

// AiryAi returns the Airy function of the first kind Ai(x) for real x.
//
// Ai solves w″ = x·w and decays super-exponentially for x → +∞; it is the
// physically admissible solution in the gradual-sink distal domain.
func AiryAi(x float64) float64 {
	return real(mathext.AiryAi(complex(x, 0)))
}

// AiryAiDeriv returns the derivative Ai′(x) of the Airy function of the first
// kind for real x. This is the derivative variant consumed by the
// gradual-sink evaluator's Ai′(k)/Ai(k) ratio term.
func AiryAiDeriv(x float64) float64 {
	return real(mathext.AiryAiDeriv(complex(x, 0)))
}

// rot and rotInv are e^{±2πi/3}, the sector rotations of the Airy connection
// formula; ph6 is e^{iπ/6}.
var (
	rot    = cmplx.Exp(complex(0, 2*math.Pi/3))
	rotInv = cmplx.Exp(complex(0, -2*math.Pi/3))
	ph6    = cmplx.Exp(complex(0, math.Pi/6))
)

// AiryBi returns the Airy function of the second kind Bi(x) for real x,
// assembled from the first kind via DLMF 9.2.10:
//
//	Bi(z) = e^{iπ/6}·Ai(z·e^{2πi/3}) + e^{−iπ/6}·Ai(z·e^{−2πi/3})
//
// For real z the two terms are complex conjugates, so the imaginary parts
// cancel analytically; only rounding noise is discarded by taking the real
// part.
func AiryBi(x float64) float64 {
	z := complex(x, 0)

	return real(ph6*mathext.AiryAi(z*rot) + cmplx.Conj(ph6)*mathext.AiryAi(z*rotInv))
}

// AiryBiDeriv returns the derivative Bi′(x) of the Airy function of the
// second kind for real x, obtained by differentiating DLMF 9.2.10:
//
//	Bi′(z) = e^{5iπ/6}·Ai′(z·e^{2πi/3}) + e^{−5iπ/6}·Ai′(z·e^{−2πi/3})
func AiryBiDeriv(x float64) float64 {
	z := complex(x, 0)

	return real(ph6*rot*mathext.AiryAiDeriv(z*rot) + cmplx.Conj(ph6*rot)*mathext.AiryAiDeriv(z*rotInv))
}
