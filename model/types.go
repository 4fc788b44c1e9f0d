// Package model: model kinds, offset policy, landmarks and sentinel errors.
//
// This file is the single source of truth for the package's enumerations and
// error set. All evaluators MUST return these sentinels and tests MUST check
// them via errors.Is; no evaluator panics on user-triggered conditions.
package model

import "errors"

// Sentinel errors returned by the model package.
var (
	// ErrUnknownKind indicates a Kind value outside the declared enumeration.
	ErrUnknownKind = errors.New("model: unknown model kind")

	// ErrParamLength indicates that the parameter vector length does not match
	// the model's base parameter count plus the offset-policy extra.
	ErrParamLength = errors.New("model: parameter vector length mismatch")

	// ErrZeroDecayLength indicates a zero decay-length parameter, which would
	// divide by zero inside the evaluator.
	ErrZeroDecayLength = errors.New("model: decay length must be nonzero")

	// ErrZeroSinkSlope indicates a zero distal sink slope, which collapses the
	// gradual-sink Airy argument.
	ErrZeroSinkSlope = errors.New("model: distal sink slope must be nonzero")

	// ErrMissingBoundary indicates that a two-domain model was evaluated
	// without an interface boundary landmark.
	ErrMissingBoundary = errors.New("model: interface boundary landmark required")
)

// Kind tags the three fitted model families.
type Kind int

const (
	// Exponential is the single-domain decaying-exponential model, always fit.
	Exponential Kind = iota

	// TwoDomain is the piecewise model with distinct proximal and distal
	// decay lengths matched at the interface boundary.
	TwoDomain

	// TwoDomainGradualSink is the piecewise model whose distal consumption
	// rate grows linearly with distance from the interface boundary.
	TwoDomainGradualSink
)

// String returns the stable aggregate key of the kind, used to index the
// orchestrator's result map.
func (k Kind) String() string {
	switch k {
	case Exponential:
		return "exponential"
	case TwoDomain:
		return "twoDomain"
	case TwoDomainGradualSink:
		return "twoDomainGradualSink"
	default:
		return "unknown"
	}
}

// Kinds returns all model kinds in fitting order. Callers sweeping the model
// families iterate this instead of duplicating the enumeration.
func Kinds() []Kind {
	return []Kind{Exponential, TwoDomain, TwoDomainGradualSink}
}

// BaseParamCount returns the number of model parameters excluding the
// optional trailing offset: 2 for Exponential, 3 for the two-domain models.
// Unknown kinds report 0.
func BaseParamCount(k Kind) int {
	switch k {
	case Exponential:
		return 2
	case TwoDomain, TwoDomainGradualSink:
		return 3
	default:
		return 0
	}
}

// NeedsBoundary reports whether the kind requires the interface boundary
// landmark. Exponential is the only landmark-free model.
func NeedsBoundary(k Kind) bool {
	return k == TwoDomain || k == TwoDomainGradualSink
}

// OffsetPolicy resolves the uniform background offset added by every model
// evaluator. It is a tagged variant:
//
//   - Free  — the offset is a fitted parameter, the last element of the
//     parameter vector; optionally seeded with an initial value (otherwise the
//     guess estimator seeds it from min(y)).
//   - Fixed — the offset is a known constant excluded from the vector.
//
// The zero value behaves as FixedOffset(0).
type OffsetPolicy struct {
	free   bool
	value  float64
	seeded bool
}

// FreeOffset returns a policy that fits the offset, seeding its initial
// guess from min(y).
func FreeOffset() OffsetPolicy {
	return OffsetPolicy{free: true}
}

// FreeOffsetSeeded returns a policy that fits the offset, seeding its
// initial guess with v.
func FreeOffsetSeeded(v float64) OffsetPolicy {
	return OffsetPolicy{free: true, value: v, seeded: true}
}

// FixedOffset returns a policy that holds the offset at the constant v; the
// offset is excluded from the fitted parameter vector.
func FixedOffset(v float64) OffsetPolicy {
	return OffsetPolicy{value: v, seeded: true}
}

// Free reports whether the offset is a fitted parameter.
func (o OffsetPolicy) Free() bool { return o.free }

// Seed returns the initial/fixed offset value and whether one was provided.
// A Fixed policy's constant is always provided, so the zero value reports
// (0, true) like FixedOffset(0); plain FreeOffset reports (0, false).
func (o OffsetPolicy) Seed() (float64, bool) { return o.value, o.seeded || !o.free }

// Fixed returns the fixed offset constant and whether the policy is Fixed.
func (o OffsetPolicy) Fixed() (float64, bool) { return o.value, !o.free }

// Extra returns 1 when the policy appends a fitted offset to the parameter
// vector, 0 otherwise.
func (o OffsetPolicy) Extra() int {
	if o.free {
		return 1
	}

	return 0
}

// ParamCount returns the full fitted-vector length for kind k under this
// policy: BaseParamCount(k) + 1 iff the offset is Free.
func (o OffsetPolicy) ParamCount(k Kind) int {
	return BaseParamCount(k) + o.Extra()
}

// resolve extracts the offset value for parameter vector p under this policy.
// Callers have already validated len(p).
func (o OffsetPolicy) resolve(p []float64) float64 {
	if o.free {
		return p[len(p)-1]
	}

	return o.value
}

// Landmarks carries the spatial reference points of a fitting session.
//
//	ZeroLocation — optional origin shift (default 0), applied once by the
//	               orchestrator to both x and the boundary.
//	Boundary     — interface boundary location, required by the two-domain
//	               models, unused by Exponential.
type Landmarks struct {
	ZeroLocation float64
	Boundary     float64
	HasBoundary  bool
}

// NewLandmarks returns Landmarks with the interface boundary set.
func NewLandmarks(boundary float64) Landmarks {
	return Landmarks{Boundary: boundary, HasBoundary: true}
}

// WithZero returns a copy with ZeroLocation set.
func (l Landmarks) WithZero(zero float64) Landmarks {
	l.ZeroLocation = zero

	return l
}

// Shifted returns a copy with the origin shift applied: the boundary moves by
// −ZeroLocation and ZeroLocation resets to 0. Idempotent on already-shifted
// landmarks.
func (l Landmarks) Shifted() Landmarks {
	if l.HasBoundary {
		l.Boundary -= l.ZeroLocation
	}
	l.ZeroLocation = 0

	return l
}
