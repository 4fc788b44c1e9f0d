// SPDX-License-Identifier: MIT
// Package solve: LeastSquares entry point, bound transforms and the
// covariance estimate.
//
// Purpose:
//   - Drive the external Levenberg–Marquardt collaborator through one
//     unconstrained/bounded solve and package its outcome with first-class
//     diagnostics.
//
// Determinism:
//   - No randomness anywhere; identical Problems produce identical Results.

package solve

import (
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Collaborator tuning. Tau seeds the LM damping from the initial JᵀJ
// diagonal; Eps1/Eps2 are its gradient and step tolerances; ObjectiveTol
// stops on a negligible sum of squares.
const (
	lmTau          = 1e-6
	lmEps1         = 1e-8
	lmEps2         = 1e-8
	lmObjectiveTol = 1e-16
)

// gradTol is the first-order optimality tolerance used to classify
// convergence at the returned solution: the solve converged when
// ‖Jᵀr‖∞ ≤ gradTol·max(1, ‖r‖₂) in the space the optimizer worked in.
const gradTol = 1e-4

// LeastSquares runs one nonlinear least-squares solve of p.
//
// Stages:
//  1. Validate the problem (sentinel errors, fatal).
//  2. Set up the bound transform; solver works in the unconstrained z-space.
//  3. Delegate to the Levenberg–Marquardt collaborator with a numeric
//     Jacobian and the iteration cap.
//  4. Map the solution back, evaluate residuals, MSE and the original-space
//     Jacobian.
//  5. Classify Status from iterate finiteness, the collaborator's error and
//     the gradient norm at the solution.
//  6. Unconstrained mode only: attach the covariance estimate MSE·(JᵀJ)⁻¹.
//
// Numerical trouble (non-convergence, singular JᵀJ) is reported via
// Result.Status with the last parameter estimate, never as an error.
func LeastSquares(p Problem) (Result, error) {
	// 1) Validate.
	if p.Residual == nil {
		return Result{}, ErrNilResidual
	}
	if p.NumParams < 1 || p.NumResiduals < p.NumParams {
		return Result{}, ErrBadProblemSize
	}
	if len(p.InitParams) != p.NumParams {
		return Result{}, ErrInitLength
	}
	tr, err := newTransform(p.Lower, p.Upper, p.NumParams)
	if err != nil {
		return Result{}, err
	}
	maxIter := p.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	// 2) Solver-space residual: identity when unconstrained, transformed
	//    otherwise. The scratch buffer keeps the hot loop allocation-free.
	residual := p.Residual
	if tr.active() {
		pbuf := make([]float64, p.NumParams)
		residual = func(dst, z []float64) {
			tr.fromInternal(z, pbuf)
			p.Residual(dst, pbuf)
		}
	}
	z0 := tr.toInternal(p.InitParams)

	// 3) Delegate to the collaborator.
	nj := lm.NumJac{Func: residual}
	prob := lm.LMProblem{
		Dim:        p.NumParams,
		Size:       p.NumResiduals,
		Func:       residual,
		Jac:        nj.Jac,
		InitParams: z0,
		Tau:        lmTau,
		Eps1:       lmEps1,
		Eps2:       lmEps2,
	}
	lmRes, lmErr := lm.LM(prob, &lm.Settings{Iterations: maxIter, ObjectiveTol: lmObjectiveTol})
	zSol := z0
	if lmRes != nil && len(lmRes.X) == p.NumParams {
		zSol = lmRes.X
	}

	// 4) Back to the original space; residuals, MSE, Jacobian.
	params := make([]float64, p.NumParams)
	tr.fromInternal(zSol, params)
	r := make([]float64, p.NumResiduals)
	p.Residual(r, params)

	dof := p.NumResiduals - p.NumParams
	if dof < 1 {
		dof = 1
	}
	mse := floats.Dot(r, r) / float64(dof)
	jac := jacobianAt(p.Residual, params, p.NumResiduals)

	// 5) Status.
	status := classify(residual, zSol, r, lmErr != nil)

	out := Result{
		Params:    params,
		Residuals: r,
		Jacobian:  jac,
		MSE:       mse,
		Status:    status,
	}

	// 6) Covariance estimate for the unconstrained path.
	if !tr.active() {
		cov, wellConditioned := CovarianceFromJacobian(jac, mse)
		out.Covariance = cov
		if !wellConditioned && status == Converged {
			out.Status = IllConditioned
		}
	}

	return out, nil
}

// classify derives the solve Status at solution z: non-finite iterates or
// residuals are ill-conditioned; otherwise first-order optimality decides
// between clean convergence and an exhausted iteration budget. lmFailed
// records whether the collaborator itself reported an error.
func classify(residual func(dst, z []float64), z, r []float64, lmFailed bool) Status {
	for _, v := range z {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return IllConditioned
		}
	}
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return IllConditioned
		}
	}

	// Gradient Jᵀr in the space the optimizer worked in.
	jz := jacobianAt(residual, z, len(r))
	gmax := 0.0
	for i := 0; i < len(z); i++ {
		g := 0.0
		for k := 0; k < len(r); k++ {
			g += jz.At(k, i) * r[k]
		}
		if a := math.Abs(g); a > gmax {
			gmax = a
		}
	}
	if math.IsNaN(gmax) {
		return IllConditioned
	}
	if gmax <= gradTol*math.Max(1, floats.Norm(r, 2)) {
		return Converged
	}
	if lmFailed {
		return IllConditioned
	}

	return MaxIterationsReached
}

// jacobianAt evaluates the size×len(p) Jacobian of f at p with gonum's
// central-difference formula.
func jacobianAt(f func(dst, p []float64), p []float64, size int) *mat.Dense {
	j := mat.NewDense(size, len(p), nil)
	fd.Jacobian(j, f, p, &fd.JacobianSettings{Formula: fd.Central})

	return j
}

// CovarianceFromJacobian returns the linearized parameter covariance
// MSE·(JᵀJ)⁻¹ together with a conditioning flag. A singular JᵀJ falls back
// to the Moore–Penrose pseudo-inverse and reports wellConditioned=false; the
// estimate then understates the uncertainty of the unidentifiable directions.
func CovarianceFromJacobian(jac *mat.Dense, mse float64) (cov *mat.Dense, wellConditioned bool) {
	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		pinvTo(&inv, &jtj)
		inv.Scale(mse, &inv)

		return &inv, false
	}
	inv.Scale(mse, &inv)

	return &inv, true
}

// pinvTo writes the Moore–Penrose pseudo-inverse of a into dst via SVD,
// zeroing singular values below n·ε·σmax.
func pinvTo(dst *mat.Dense, a *mat.Dense) {
	rows, cols := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		// Factorization failure leaves a zero covariance; the caller has
		// already flagged the solve as ill-conditioned.
		dst.Reset()
		dst.ReuseAs(cols, rows)

		return
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	tol := float64(max(rows, cols)) * 2.22e-16 * s[0]
	d := mat.NewDense(len(s), len(s), nil)
	for i, sv := range s {
		if sv > tol {
			d.Set(i, i, 1/sv)
		}
	}

	var tmp mat.Dense
	tmp.Mul(&v, d)
	dst.Mul(&tmp, u.T())
}
