package model

import (
	"math"

	"github.com/katalvlaran/morphofit/special"
)

// EvalGradualSink evaluates the two-domain gradual-sink model: a hyperbolic
// profile in the proximal domain and an Airy-Ai profile in the distal domain,
// where the consumption rate grows linearly with distance past the interface
// boundary xB.
//
// With λ = p[1], s = p[2], h = xB/λ and
//
//	k = λ⁻²·s⁻²ᐟ³
//	D = Ai(k)·cosh(h) − λ·s¹ᐟ³·Ai′(k)·sinh(h)
//
// the profile is
//
//	left  (x < xB): offset + p[0]/D · [ D·cosh(x/λ)
//	                 + (λ·s¹ᐟ³·Ai′(k)·cosh(h) − Ai(k)·sinh(h))·sinh(x/λ) ]
//	right (x > xB): offset + p[0]/D · Ai(s¹ᐟ³·(x−xB) + k)
//
// which matches value and flux at xB and gives y(0) = p[0] + offset. The
// branches are gated by Step(xB−x)/Step(x−xB), so both contribute at exactly
// x == xB (same tie convention as TwoDomain).
//
// Parameters (positional): [amplitude, proximalDecayLength, distalSinkSlope,
// (offset)].
//
// Known sensitivity: the denominators vanish as p[1] → 0 or p[2] → 0 and the
// values blow up; a negative slope leaves the Airy argument's physical
// regime. Neither is guarded here — the fit orchestrator keeps the slope in
// [0, +∞) through its bound constraints, and exact zeros are rejected below.
//
// Errors:
//   - ErrParamLength     if len(p) != off.ParamCount(TwoDomainGradualSink).
//   - ErrZeroDecayLength if p[1] == 0.
//   - ErrZeroSinkSlope   if p[2] == 0.
//   - ErrMissingBoundary if lm.HasBoundary is false.
//
// Complexity: O(len(x)) with one Airy evaluation per distal sample.
func EvalGradualSink(p, x []float64, lm Landmarks, off OffsetPolicy) ([]float64, error) {
	if len(p) != off.ParamCount(TwoDomainGradualSink) {
		return nil, ErrParamLength
	}
	if p[1] == 0 {
		return nil, ErrZeroDecayLength
	}
	if p[2] == 0 {
		return nil, ErrZeroSinkSlope
	}
	if !lm.HasBoundary {
		return nil, ErrMissingBoundary
	}

	y := make([]float64, len(x))
	gradualSinkKernel(y, p, x, lm.Boundary, off.resolve(p))

	return y, nil
}

// gradualSinkKernel writes the gradual-sink model values into dst without
// validation. Shared by the public evaluator and the optimizer's residual
// loop.
func gradualSinkKernel(dst, p, x []float64, xB, offset float64) {
	amp, lp, slope := p[0], p[1], p[2]

	s13 := math.Cbrt(slope)                // s¹ᐟ³
	k := 1 / (lp * lp * s13 * s13)         // matching point of the Airy argument
	ai, aid := special.AiryAi(k), special.AiryAiDeriv(k)

	h := xB / lp
	ch, sh := math.Cosh(h), math.Sinh(h)
	den := ai*ch - lp*s13*aid*sh
	scale := amp / den

	// Proximal sinh coefficient; divided by den inside the loop via scale.
	bcoef := lp*s13*aid*ch - ai*sh

	for i, xi := range x {
		d := xi - xB
		left := den*math.Cosh(xi/lp) + bcoef*math.Sinh(xi/lp)
		right := special.AiryAi(s13*d + k)
		dst[i] = offset + scale*(special.Step(-d)*left+special.Step(d)*right)
	}
}
