// Package model defines the morphogen-gradient model families fitted by
// morphofit: their named parameter records, the offset policy, spatial
// landmarks, and the three pure model evaluators.
//
// 🧬 Model families
//
//	Exponential           y = A·exp(−x/λ) + c
//	TwoDomain             piecewise at the interface boundary xB: hyperbolic
//	                      profile in the proximal domain, exponential decay in
//	                      the distal domain, matched in value and flux at xB
//	TwoDomainGradualSink  hyperbolic proximal profile matched to an Airy-Ai
//	                      distal profile whose consumption rate grows linearly
//	                      with distance from xB
//
// All three share one contract: given a positional parameter vector `p`, a
// coordinate slice `x`, optional Landmarks and an OffsetPolicy, return the
// predicted profile of the same length as `x`. The offset resolves once per
// call — the last vector element when the policy is Free, the fixed constant
// otherwise.
//
// Positional ordering contract (stable for reporting):
//
//	Exponential:          [amplitude, decayLength, (offset)]
//	TwoDomain:            [amplitude, proximalDecayLength, distalDecayLength, (offset)]
//	TwoDomainGradualSink: [amplitude, proximalDecayLength, distalSinkSlope, (offset)]
//
// The trailing offset element is present iff the OffsetPolicy is Free. The
// typed records (ExpParams, TwoDomainParams, GradualSinkParams) carry the same
// information by name; Vector/ParamsFromVector convert both ways.
//
// Piecewise branches are combined with special.Step, whose Step(0)==1
// convention makes BOTH branches contribute at exactly x == xB. This doubling
// at the single boundary sample is the model's documented tie behavior.
//
// ⚠️ Numerical sensitivity: the TwoDomainGradualSink denominators vanish as
// proximalDecayLength → 0 or distalSinkSlope → 0, and a negative sink slope
// puts the Airy argument outside the physical regime. The evaluator does not
// guard these — positivity is enforced by the fit orchestrator's bound
// constraints.
//
// Errors (sentinel): ErrUnknownKind, ErrParamLength, ErrZeroDecayLength,
// ErrZeroSinkSlope, ErrMissingBoundary.
package model
