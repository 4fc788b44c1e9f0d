package model

import "math"

// EvalExponential evaluates the single-domain decaying-exponential model
//
//	y = p[0]·exp(−x/p[1]) + offset
//
// over every coordinate in x. No landmark dependency: lm is accepted to honor
// the shared Evaluator contract and ignored.
//
// Parameters (positional): [amplitude, decayLength, (offset)].
//
// Errors:
//   - ErrParamLength     if len(p) != off.ParamCount(Exponential).
//   - ErrZeroDecayLength if p[1] == 0.
//
// Complexity: O(len(x)), one output allocation.
func EvalExponential(p, x []float64, lm Landmarks, off OffsetPolicy) ([]float64, error) {
	if len(p) != off.ParamCount(Exponential) {
		return nil, ErrParamLength
	}
	if p[1] == 0 {
		return nil, ErrZeroDecayLength
	}

	y := make([]float64, len(x))
	expKernel(y, p, x, off.resolve(p))

	return y, nil
}

// expKernel writes the exponential model values into dst without validation.
// Shared by the public evaluator and the optimizer's residual loop.
func expKernel(dst, p, x []float64, offset float64) {
	amp, lambda := p[0], p[1]
	for i, xi := range x {
		dst[i] = amp*math.Exp(-xi/lambda) + offset
	}
}
