// Package fit: sentinel errors, functional options and result types.
package fit

import (
	"errors"

	"github.com/katalvlaran/morphofit/model"
	"github.com/katalvlaran/morphofit/solve"
)

// Sentinel errors returned by the fit package. All are fatal precondition
// violations; numerical trouble is reported per-model via Result.Warning.
var (
	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = errors.New("fit: x and y must have the same length")

	// ErrTooFewPoints indicates fewer data points than free parameters + 1
	// for the most demanding requested model.
	ErrTooFewPoints = errors.New("fit: need at least free-parameter count + 1 data points")

	// ErrNoPositiveSignal indicates a degenerate log-transform input: no
	// strictly positive values remain after offset subtraction, so the
	// log-linear initial guess is impossible.
	ErrNoPositiveSignal = errors.New("fit: no positive values after offset subtraction")
)

// DefaultConfidenceLevel is the confidence-interval coverage used unless
// WithConfidenceLevel overrides it.
const DefaultConfidenceLevel = 0.95

// sinkSlopeSeed is the constant initial guess for the gradual-sink distal
// slope; the exponential fit carries no information about it.
const sinkSlopeSeed = 100.0

// Options configures one orchestration call.
//
//	TwoDomain / GradualSink — the flag set selecting which models are fit in
//	                          addition to the always-fit Exponential.
//	MaxIterations           — solver iteration cap per model (default 1000);
//	                          exceeding it is a warning, not an error.
//	ConfidenceLevel         — CI coverage in (0, 1), default 0.95.
type Options struct {
	TwoDomain       bool
	GradualSink     bool
	MaxIterations   int
	ConfidenceLevel float64
}

// DefaultOptions returns the documented defaults: exponential-only fitting,
// the solver's default iteration cap, 95% confidence intervals.
func DefaultOptions() Options {
	return Options{
		MaxIterations:   solve.DefaultMaxIterations,
		ConfidenceLevel: DefaultConfidenceLevel,
	}
}

// Option mutates Options; nonsensical values panic (programmer error), in
// line with the rest of the library's option constructors.
type Option func(*Options)

// WithTwoDomain requests the TwoDomain fit in addition to Exponential.
func WithTwoDomain() Option {
	return func(o *Options) { o.TwoDomain = true }
}

// WithGradualSink requests the TwoDomainGradualSink fit in addition to
// Exponential.
func WithGradualSink() Option {
	return func(o *Options) { o.GradualSink = true }
}

// WithMaxIterations caps the solver's iterations per model. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("fit: WithMaxIterations requires n ≥ 1")
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithConfidenceLevel sets the CI coverage. Panics unless 0 < level < 1.
func WithConfidenceLevel(level float64) Option {
	if level <= 0 || level >= 1 {
		panic("fit: WithConfidenceLevel requires 0 < level < 1")
	}

	return func(o *Options) { o.ConfidenceLevel = level }
}

// Result holds one model's fit outcome.
//
//	Params  — best-fit positional vector (ordering contract of model/doc.go).
//	Record  — the same parameters as a named record.
//	CI      — one [low, high] pair per Params element, symmetric at the
//	          configured confidence level.
//	MSE     — residual mean square from the solver.
//	R2      — coefficient of determination against the measured y.
//	Status  — first-class solver diagnostics for this model.
//	Warning — true iff Status carries a numerical caveat; the parameters are
//	          then the solver's last estimate, not a certified optimum.
type Result struct {
	Kind    model.Kind
	Params  []float64
	Record  model.Params
	CI      [][2]float64
	MSE     float64
	R2      float64
	Status  solve.Status
	Warning bool
}

// Summary aggregates per-model results keyed by model kind. The Exponential
// entry is always present; TwoDomain and TwoDomainGradualSink appear iff
// requested.
type Summary map[model.Kind]Result
