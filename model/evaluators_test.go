package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/morphofit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	boundary = 1.0
	offset   = 0.2
	eps      = 1e-7 // probe distance for continuity checks
)

// evalAt is a one-sample convenience wrapper around an evaluator.
func evalAt(t *testing.T, ev model.Evaluator, p []float64, x float64, lm model.Landmarks, off model.OffsetPolicy) float64 {
	t.Helper()
	y, err := ev(p, []float64{x}, lm, off)
	require.NoError(t, err)

	return y[0]
}

// TestEvalExponential_Values checks the closed form against a manual
// computation under both offset policies.
func TestEvalExponential_Values(t *testing.T) {
	x := []float64{0, 0.5, 1, 2}

	y, err := model.EvalExponential([]float64{2, 0.5}, x, model.Landmarks{}, model.FixedOffset(0.1))
	require.NoError(t, err)
	require.Len(t, y, len(x))
	for i, xi := range x {
		assert.InDelta(t, 2*math.Exp(-xi/0.5)+0.1, y[i], 1e-12)
	}

	// Free policy: offset is the trailing vector element.
	yFree, err := model.EvalExponential([]float64{2, 0.5, 0.1}, x, model.Landmarks{}, model.FreeOffset())
	require.NoError(t, err)
	assert.Equal(t, y, yFree, "free offset of 0.1 must match fixed offset 0.1")
}

// TestEvalExponential_Errors covers parameter-vector and decay-length
// validation.
func TestEvalExponential_Errors(t *testing.T) {
	_, err := model.EvalExponential([]float64{1}, []float64{0}, model.Landmarks{}, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrParamLength)

	_, err = model.EvalExponential([]float64{1, 0}, []float64{0}, model.Landmarks{}, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrZeroDecayLength)
}

// TestEvalTwoDomain_AnchorsAndContinuity verifies the boundary-value-problem
// structure: y(0) = amplitude + offset, and value plus flux continuity across
// the interface boundary (probed just off the boundary, where exactly one
// step gate is open).
func TestEvalTwoDomain_AnchorsAndContinuity(t *testing.T) {
	p := []float64{1, 0.5, 0.1}
	lm := model.NewLandmarks(boundary)
	off := model.FixedOffset(offset)

	at := func(x float64) float64 { return evalAt(t, model.EvalTwoDomain, p, x, lm, off) }

	assert.InDelta(t, 1+offset, at(0), 1e-12, "amplitude anchors the profile at the origin")

	left, right := at(boundary-eps), at(boundary+eps)
	assert.InDelta(t, left, right, 1e-5, "value continuity across the interface")

	// Flux continuity: one-sided finite-difference slopes agree.
	dLeft := (at(boundary-eps) - at(boundary-2*eps)) / eps
	dRight := (at(boundary+2*eps) - at(boundary+eps)) / eps
	assert.InDelta(t, dLeft, dRight, 1e-3*math.Abs(dLeft)+1e-6, "flux continuity across the interface")
}

// TestEvalTwoDomain_BoundaryTie pins the declared Step(0)==1 convention: at
// exactly x == xB BOTH branches contribute, so the boundary sample doubles
// the one-sided limit (offset aside). This is the reference tie behavior,
// not a 50/50 split.
func TestEvalTwoDomain_BoundaryTie(t *testing.T) {
	p := []float64{1, 0.5, 0.1}
	lm := model.NewLandmarks(boundary)
	off := model.FixedOffset(offset)

	limit := evalAt(t, model.EvalTwoDomain, p, boundary-eps, lm, off) - offset
	tie := evalAt(t, model.EvalTwoDomain, p, boundary, lm, off) - offset
	assert.InDelta(t, 2*limit, tie, 1e-5, "both unit-step branches active at the boundary")
}

// TestEvalTwoDomain_Errors covers the sentinel taxonomy.
func TestEvalTwoDomain_Errors(t *testing.T) {
	lm := model.NewLandmarks(boundary)

	_, err := model.EvalTwoDomain([]float64{1, 0.5}, []float64{0}, lm, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrParamLength)

	_, err = model.EvalTwoDomain([]float64{1, 0, 0.1}, []float64{0}, lm, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrZeroDecayLength)

	_, err = model.EvalTwoDomain([]float64{1, 0.5, 0}, []float64{0}, lm, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrZeroDecayLength)

	_, err = model.EvalTwoDomain([]float64{1, 0.5, 0.1}, []float64{0}, model.Landmarks{}, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrMissingBoundary)
}

// TestEvalGradualSink_AnchorsAndContinuity verifies the Airy-matched
// structure: origin anchor, value continuity and flux continuity at the
// interface, and the same boundary-tie doubling as TwoDomain.
func TestEvalGradualSink_AnchorsAndContinuity(t *testing.T) {
	p := []float64{1, 0.5, 50}
	lm := model.NewLandmarks(boundary)
	off := model.FixedOffset(offset)

	at := func(x float64) float64 { return evalAt(t, model.EvalGradualSink, p, x, lm, off) }

	assert.InDelta(t, 1+offset, at(0), 1e-10, "amplitude anchors the profile at the origin")

	left, right := at(boundary-eps), at(boundary+eps)
	assert.InDelta(t, left, right, 1e-5, "value continuity across the interface")

	dLeft := (at(boundary-eps) - at(boundary-2*eps)) / eps
	dRight := (at(boundary+2*eps) - at(boundary+eps)) / eps
	assert.InDelta(t, dLeft, dRight, 1e-3*math.Abs(dLeft)+1e-6, "flux continuity across the interface")

	limit := at(boundary-eps) - offset
	tie := at(boundary) - offset
	assert.InDelta(t, 2*limit, tie, 1e-5, "both unit-step branches active at the boundary")
}

// TestEvalGradualSink_DistalDecay checks the qualitative sink behavior: the
// distal profile decays monotonically and stays positive while the
// consumption term keeps growing.
func TestEvalGradualSink_DistalDecay(t *testing.T) {
	p := []float64{1, 0.5, 50}
	lm := model.NewLandmarks(boundary)
	off := model.FixedOffset(0)

	prev := math.Inf(1)
	for _, x := range []float64{1.1, 1.3, 1.5, 1.8, 2.2} {
		v := evalAt(t, model.EvalGradualSink, p, x, lm, off)
		assert.Greater(t, v, 0.0, "profile must stay positive at x=%v", x)
		assert.Less(t, v, prev, "profile must decay at x=%v", x)
		prev = v
	}
}

// TestEvalGradualSink_Errors covers the sentinel taxonomy, including the
// zero-slope rejection (the documented near-zero sensitivity itself is not
// guarded).
func TestEvalGradualSink_Errors(t *testing.T) {
	lm := model.NewLandmarks(boundary)

	_, err := model.EvalGradualSink([]float64{1, 0.5}, []float64{0}, lm, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrParamLength)

	_, err = model.EvalGradualSink([]float64{1, 0, 100}, []float64{0}, lm, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrZeroDecayLength)

	_, err = model.EvalGradualSink([]float64{1, 0.5, 0}, []float64{0}, lm, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrZeroSinkSlope)

	_, err = model.EvalGradualSink([]float64{1, 0.5, 100}, []float64{0}, model.Landmarks{}, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrMissingBoundary)
}

// TestRegistry_EvaluatorOf verifies kind dispatch and the unknown-kind
// sentinel.
func TestRegistry_EvaluatorOf(t *testing.T) {
	for _, k := range model.Kinds() {
		ev, err := model.EvaluatorOf(k)
		require.NoError(t, err, "kind %s", k)
		require.NotNil(t, ev)
	}

	_, err := model.EvaluatorOf(model.Kind(42))
	assert.ErrorIs(t, err, model.ErrUnknownKind)
}

// TestRegistry_PredictorMatchesEvaluator checks that the compiled predictor
// closure reproduces the validated evaluator exactly for every kind.
func TestRegistry_PredictorMatchesEvaluator(t *testing.T) {
	x := []float64{0, 0.4, boundary, 1.6, 2}
	lm := model.NewLandmarks(boundary)
	off := model.FreeOffset()

	vectors := map[model.Kind][]float64{
		model.Exponential:          {1, 0.5, 0.2},
		model.TwoDomain:            {1, 0.5, 0.1, 0.2},
		model.TwoDomainGradualSink: {1, 0.5, 50, 0.2},
	}

	for k, p := range vectors {
		ev, err := model.EvaluatorOf(k)
		require.NoError(t, err)
		want, err := ev(p, x, lm, off)
		require.NoError(t, err)

		predict, err := model.Predictor(k, lm, off)
		require.NoError(t, err)
		got := make([]float64, len(x))
		predict(got, p, x)
		assert.Equal(t, want, got, "kind %s", k)
	}
}

// TestRegistry_PredictorErrors verifies upfront structural validation of the
// compiled closure.
func TestRegistry_PredictorErrors(t *testing.T) {
	_, err := model.Predictor(model.Kind(42), model.Landmarks{}, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrUnknownKind)

	_, err = model.Predictor(model.TwoDomain, model.Landmarks{}, model.FixedOffset(0))
	assert.ErrorIs(t, err, model.ErrMissingBoundary)

	_, err = model.Predictor(model.Exponential, model.Landmarks{}, model.FixedOffset(0))
	assert.NoError(t, err, "exponential needs no boundary")
}
