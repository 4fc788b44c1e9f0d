// Package model: evaluator registry.
//
// The registry is the interface boundary between the model evaluators and
// callers that iterate over model families generically (the fit orchestrator,
// noise harnesses, reporting). It replaces dynamic per-name dispatch with an
// explicit Kind → Evaluator mapping.
package model

// Evaluator is the shared contract of the three model evaluators: map a
// positional parameter vector and coordinates to predicted values of the same
// length, resolving the offset once per call.
type Evaluator func(p, x []float64, lm Landmarks, off OffsetPolicy) ([]float64, error)

// evaluators is the fixed Kind → Evaluator registry.
var evaluators = map[Kind]Evaluator{
	Exponential:          EvalExponential,
	TwoDomain:            EvalTwoDomain,
	TwoDomainGradualSink: EvalGradualSink,
}

// EvaluatorOf returns the validated evaluator registered for kind k.
//
// Errors: ErrUnknownKind if k is not a declared kind.
func EvaluatorOf(k Kind) (Evaluator, error) {
	ev, ok := evaluators[k]
	if !ok {
		return nil, ErrUnknownKind
	}

	return ev, nil
}

// Predictor compiles kind, landmarks and offset policy into a raw evaluation
// closure for an optimizer's inner loop: it writes the model values for
// parameter vector p into dst, len(dst) == len(x), without validating or
// allocating. Structural preconditions (boundary presence, known kind) are
// checked once here; parameter-value pathologies (zero decay lengths) are the
// optimizer's territory and surface as NaN/Inf in dst.
//
// Errors:
//   - ErrUnknownKind    if k is not a declared kind.
//   - ErrMissingBoundary if k needs a boundary and lm has none.
func Predictor(k Kind, lm Landmarks, off OffsetPolicy) (func(dst, p, x []float64), error) {
	if BaseParamCount(k) == 0 {
		return nil, ErrUnknownKind
	}
	if NeedsBoundary(k) && !lm.HasBoundary {
		return nil, ErrMissingBoundary
	}

	switch k {
	case Exponential:
		return func(dst, p, x []float64) {
			expKernel(dst, p, x, off.resolve(p))
		}, nil
	case TwoDomain:
		return func(dst, p, x []float64) {
			twoDomainKernel(dst, p, x, lm.Boundary, off.resolve(p))
		}, nil
	default: // TwoDomainGradualSink
		return func(dst, p, x []float64) {
			gradualSinkKernel(dst, p, x, lm.Boundary, off.resolve(p))
		}, nil
	}
}
