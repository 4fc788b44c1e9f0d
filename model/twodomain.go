package model

import (
	"math"

	"github.com/katalvlaran/morphofit/special"
)

// EvalTwoDomain evaluates the two-domain model: a hyperbolic profile in the
// proximal domain (x < xB) and an exponential decay in the distal domain
// (x > xB), matched in value and flux at the interface boundary xB.
//
// With λp = p[1], λd = p[2] and the shared denominator
//
//	D = λd·cosh(xB/λp) + λp·sinh(xB/λp)
//
// the profile is
//
//	y = offset + p[0]/D · [ Step(xB−x)·(λd·cosh((x−xB)/λp) − λp·sinh((x−xB)/λp))
//	                      + Step(x−xB)·λd·exp(−(x−xB)/λd) ]
//
// so that y(0) = p[0] + offset and both value and flux are continuous at xB.
// Because Step(0) == 1, BOTH branches contribute at exactly x == xB — the
// single boundary sample doubles. That tie convention is part of the model
// definition.
//
// Parameters (positional): [amplitude, proximalDecayLength,
// distalDecayLength, (offset)].
//
// Errors:
//   - ErrParamLength     if len(p) != off.ParamCount(TwoDomain).
//   - ErrZeroDecayLength if p[1] == 0 or p[2] == 0.
//   - ErrMissingBoundary if lm.HasBoundary is false.
//
// Complexity: O(len(x)), one output allocation.
func EvalTwoDomain(p, x []float64, lm Landmarks, off OffsetPolicy) ([]float64, error) {
	if len(p) != off.ParamCount(TwoDomain) {
		return nil, ErrParamLength
	}
	if p[1] == 0 || p[2] == 0 {
		return nil, ErrZeroDecayLength
	}
	if !lm.HasBoundary {
		return nil, ErrMissingBoundary
	}

	y := make([]float64, len(x))
	twoDomainKernel(y, p, x, lm.Boundary, off.resolve(p))

	return y, nil
}

// twoDomainKernel writes the two-domain model values into dst without
// validation. Shared by the public evaluator and the optimizer's residual
// loop.
func twoDomainKernel(dst, p, x []float64, xB, offset float64) {
	amp, lp, ld := p[0], p[1], p[2]
	den := ld*math.Cosh(xB/lp) + lp*math.Sinh(xB/lp)
	scale := amp / den
	for i, xi := range x {
		d := xi - xB
		left := ld*math.Cosh(d/lp) - lp*math.Sinh(d/lp)
		right := ld * math.Exp(-d/ld)
		dst[i] = offset + scale*(special.Step(-d)*left+special.Step(d)*right)
	}
}
