// Package solve: problem/result types, status enumeration and sentinel errors.
package solve

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by LeastSquares. All of them are precondition
// violations; numerical trouble during the solve is reported through Status,
// never through an error.
var (
	// ErrNilResidual indicates that Problem.Residual is nil.
	ErrNilResidual = errors.New("solve: residual function is nil")

	// ErrBadProblemSize indicates NumParams < 1 or NumResiduals < NumParams.
	ErrBadProblemSize = errors.New("solve: need NumParams ≥ 1 and NumResiduals ≥ NumParams")

	// ErrInitLength indicates len(InitParams) != NumParams.
	ErrInitLength = errors.New("solve: initial parameter vector length mismatch")

	// ErrBoundsLength indicates that Lower/Upper were given with a length
	// other than NumParams.
	ErrBoundsLength = errors.New("solve: bounds length mismatch")

	// ErrBoundsInverted indicates Lower[i] > Upper[i] for some parameter.
	ErrBoundsInverted = errors.New("solve: lower bound exceeds upper bound")
)

// DefaultMaxIterations caps the collaborator's iterative solve when
// Problem.MaxIterations is unset. Exceeding the cap is a warning, not an
// error.
const DefaultMaxIterations = 1000

// Status classifies the outcome of a least-squares solve. It replaces
// ambient "last warning" inspection with an explicit diagnostics value.
type Status int

const (
	// Converged — the gradient at the solution satisfies the first-order
	// optimality tolerance and the iterate is finite.
	Converged Status = iota

	// MaxIterationsReached — the collaborator stopped before first-order
	// optimality was reached; Params holds its last estimate.
	MaxIterationsReached

	// IllConditioned — the iterate contains NaN/Inf or the normal-equations
	// matrix JᵀJ is numerically singular.
	IllConditioned
)

// String returns a short diagnostic label for the status.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "maxIterationsReached"
	case IllConditioned:
		return "illConditioned"
	default:
		return "unknown"
	}
}

// Warned reports whether the status carries a numerical caveat the caller
// should surface (anything but clean convergence).
func (s Status) Warned() bool { return s != Converged }

// Problem describes one nonlinear least-squares solve.
//
//	Residual     — writes the NumResiduals residuals for parameter vector p
//	               into dst (model(p) − data, any sign convention).
//	InitParams   — starting point, length NumParams.
//	Lower/Upper  — optional per-parameter bounds. Both nil ⇒ unconstrained.
//	               ±Inf entries relax individual sides. Initial parameters
//	               outside a bound are projected onto it.
//	MaxIterations — iteration cap; 0 ⇒ DefaultMaxIterations.
type Problem struct {
	Residual      func(dst, p []float64)
	NumParams     int
	NumResiduals  int
	InitParams    []float64
	Lower         []float64
	Upper         []float64
	MaxIterations int
}

// Result is the outcome of a least-squares solve.
//
//	Params     — best-fit parameters (last estimate when Status.Warned()).
//	Residuals  — residual vector at Params.
//	Jacobian   — NumResiduals×NumParams Jacobian at Params in the ORIGINAL
//	             parameter space (central differences), both modes.
//	Covariance — MSE·(JᵀJ)⁻¹ parameter covariance; unconstrained mode only,
//	             nil when bounds were given (the bounded confidence-interval
//	             path derives its intervals from Residuals + Jacobian).
//	MSE        — Σr²/(n−p), the residual mean square the covariance is
//	             scaled by.
type Result struct {
	Params     []float64
	Residuals  []float64
	Jacobian   *mat.Dense
	Covariance *mat.Dense
	MSE        float64
	Status     Status
}
