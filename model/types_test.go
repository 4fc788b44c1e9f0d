package model_test

import (
	"testing"

	"github.com/katalvlaran/morphofit/model"
	"github.com/stretchr/testify/assert"
)

// TestKind_String pins the aggregate keys the orchestrator's result map is
// indexed by.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "exponential", model.Exponential.String())
	assert.Equal(t, "twoDomain", model.TwoDomain.String())
	assert.Equal(t, "twoDomainGradualSink", model.TwoDomainGradualSink.String())
	assert.Equal(t, "unknown", model.Kind(42).String())
}

// TestKinds_Order verifies the fitting-order enumeration.
func TestKinds_Order(t *testing.T) {
	assert.Equal(t, []model.Kind{model.Exponential, model.TwoDomain, model.TwoDomainGradualSink}, model.Kinds())
}

// TestBaseParamCount covers the 2/3/3 base counts and the unknown-kind zero.
func TestBaseParamCount(t *testing.T) {
	assert.Equal(t, 2, model.BaseParamCount(model.Exponential))
	assert.Equal(t, 3, model.BaseParamCount(model.TwoDomain))
	assert.Equal(t, 3, model.BaseParamCount(model.TwoDomainGradualSink))
	assert.Equal(t, 0, model.BaseParamCount(model.Kind(42)))
}

// TestOffsetPolicy_Variants checks the tagged-variant semantics: Free adds a
// vector element, Fixed does not, and seeds round-trip.
func TestOffsetPolicy_Variants(t *testing.T) {
	free := model.FreeOffset()
	assert.True(t, free.Free())
	assert.Equal(t, 1, free.Extra())
	_, seeded := free.Seed()
	assert.False(t, seeded, "plain Free carries no explicit seed")
	assert.Equal(t, 3, free.ParamCount(model.Exponential))
	assert.Equal(t, 4, free.ParamCount(model.TwoDomain))

	seededFree := model.FreeOffsetSeeded(0.25)
	v, seeded := seededFree.Seed()
	assert.True(t, seeded)
	assert.Equal(t, 0.25, v)
	assert.True(t, seededFree.Free())

	fixed := model.FixedOffset(1.5)
	assert.False(t, fixed.Free())
	assert.Equal(t, 0, fixed.Extra())
	v, seeded = fixed.Seed()
	assert.True(t, seeded)
	assert.Equal(t, 1.5, v)
	v, isFixed := fixed.Fixed()
	assert.True(t, isFixed)
	assert.Equal(t, 1.5, v)
	_, isFixed = model.FreeOffset().Fixed()
	assert.False(t, isFixed)
	assert.Equal(t, 2, fixed.ParamCount(model.Exponential))

	var zero model.OffsetPolicy
	assert.False(t, zero.Free(), "zero value behaves as FixedOffset(0)")
	assert.Equal(t, 0, zero.Extra())
	v, seeded = zero.Seed()
	assert.True(t, seeded, "a fixed policy's constant is always provided")
	assert.Equal(t, 0.0, v)
}

// TestLandmarks_Shifted verifies the one-time origin shift and its
// idempotence on already-zeroed landmarks.
func TestLandmarks_Shifted(t *testing.T) {
	lm := model.NewLandmarks(3).WithZero(1)
	shifted := lm.Shifted()
	assert.Equal(t, 2.0, shifted.Boundary)
	assert.Equal(t, 0.0, shifted.ZeroLocation)
	assert.True(t, shifted.HasBoundary)

	again := shifted.Shifted()
	assert.Equal(t, shifted, again, "shifting zeroed landmarks must be a no-op")

	// The receiver is a value; the original is untouched.
	assert.Equal(t, 3.0, lm.Boundary)
	assert.Equal(t, 1.0, lm.ZeroLocation)
}
