// Package model: named parameter records for the three model families.
//
// The records replace positional indexing (p[0], p[1], …) at the API surface
// while preserving the exact ordering contract documented in doc.go for the
// fitted vector. Vector and ParamsFromVector are exact inverses under the
// same OffsetPolicy.
package model

// Params is the discriminated union over the three model parameter records.
// Each record reports its Kind and serializes to the positional vector the
// optimizer and the reporting layer consume.
type Params interface {
	// Kind returns the model family tag of the record.
	Kind() Kind

	// Vector returns the positional parameter vector under the given offset
	// policy: base parameters in documented order, plus a trailing offset
	// element iff the policy is Free.
	Vector(off OffsetPolicy) []float64
}

// ExpParams are the Exponential model parameters.
// Offset holds the resolved offset value regardless of policy (fitted or
// fixed); Vector emits it only under a Free policy.
type ExpParams struct {
	Amplitude   float64
	DecayLength float64
	Offset      float64
}

// Kind returns Exponential.
func (p ExpParams) Kind() Kind { return Exponential }

// Vector returns [amplitude, decayLength, (offset)].
func (p ExpParams) Vector(off OffsetPolicy) []float64 {
	if off.Free() {
		return []float64{p.Amplitude, p.DecayLength, p.Offset}
	}

	return []float64{p.Amplitude, p.DecayLength}
}

// TwoDomainParams are the TwoDomain model parameters.
type TwoDomainParams struct {
	Amplitude           float64
	ProximalDecayLength float64
	DistalDecayLength   float64
	Offset              float64
}

// Kind returns TwoDomain.
func (p TwoDomainParams) Kind() Kind { return TwoDomain }

// Vector returns [amplitude, proximalDecayLength, distalDecayLength, (offset)].
func (p TwoDomainParams) Vector(off OffsetPolicy) []float64 {
	if off.Free() {
		return []float64{p.Amplitude, p.ProximalDecayLength, p.DistalDecayLength, p.Offset}
	}

	return []float64{p.Amplitude, p.ProximalDecayLength, p.DistalDecayLength}
}

// GradualSinkParams are the TwoDomainGradualSink model parameters.
type GradualSinkParams struct {
	Amplitude           float64
	ProximalDecayLength float64
	DistalSinkSlope     float64
	Offset              float64
}

// Kind returns TwoDomainGradualSink.
func (p GradualSinkParams) Kind() Kind { return TwoDomainGradualSink }

// Vector returns [amplitude, proximalDecayLength, distalSinkSlope, (offset)].
func (p GradualSinkParams) Vector(off OffsetPolicy) []float64 {
	if off.Free() {
		return []float64{p.Amplitude, p.ProximalDecayLength, p.DistalSinkSlope, p.Offset}
	}

	return []float64{p.Amplitude, p.ProximalDecayLength, p.DistalSinkSlope}
}

// ParamsFromVector decodes a positional vector into the kind's named record.
// Under a Fixed policy the record's Offset field carries the fixed constant.
//
// Errors:
//   - ErrUnknownKind  if k is not a declared kind.
//   - ErrParamLength  if len(vec) != off.ParamCount(k).
func ParamsFromVector(k Kind, vec []float64, off OffsetPolicy) (Params, error) {
	if BaseParamCount(k) == 0 {
		return nil, ErrUnknownKind
	}
	if len(vec) != off.ParamCount(k) {
		return nil, ErrParamLength
	}

	c := off.resolve(vec)
	switch k {
	case Exponential:
		return ExpParams{Amplitude: vec[0], DecayLength: vec[1], Offset: c}, nil
	case TwoDomain:
		return TwoDomainParams{Amplitude: vec[0], ProximalDecayLength: vec[1], DistalDecayLength: vec[2], Offset: c}, nil
	default: // TwoDomainGradualSink; unknown kinds rejected above
		return GradualSinkParams{Amplitude: vec[0], ProximalDecayLength: vec[1], DistalSinkSlope: vec[2], Offset: c}, nil
	}
}
