// Package fit: fit statistics — R² and the two confidence-interval
// derivations.
//
// Purpose:
//   - Keep the statistical post-processing of a solve in one place, mirroring
//     the two derivations the solver contract supports: an explicit
//     covariance estimate (unconstrained path) and residuals + Jacobian
//     (bounded path). Under the same linearization both reduce to
//     MSE·(JᵀJ)⁻¹ and must agree; stats_test.go pins that equivalence.
//
// Determinism & Performance:
//   - Pure functions; O(n·p²) worst case in the Jacobian path.
package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/morphofit/solve"
)

// rSquared returns the coefficient of determination 1 − SSres/SStot of the
// fitted values against the measurements. SStot == 0 (constant y) yields an
// undefined ratio — a documented caller precondition, not guarded here.
func rSquared(y, yFit []float64) float64 {
	return stat.RSquaredFrom(yFit, y, nil)
}

// studentQuantile returns the two-sided Student-t critical value for the
// given coverage level and residual degrees of freedom.
func studentQuantile(level float64, dof int) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}

	return dist.Quantile(0.5 + level/2)
}

// ciFromCovariance derives symmetric confidence intervals from an explicit
// parameter covariance estimate: params[i] ± t(level, dof)·√Cov[i,i].
// Negative diagonal noise from an ill-conditioned estimate is clamped to 0.
func ciFromCovariance(params []float64, cov *mat.Dense, dof int, level float64) [][2]float64 {
	t := studentQuantile(level, dof)
	ci := make([][2]float64, len(params))
	for i, p := range params {
		hw := t * math.Sqrt(math.Max(cov.At(i, i), 0))
		ci[i] = [2]float64{p - hw, p + hw}
	}

	return ci
}

// ciFromResidualJacobian derives the same intervals from the residual vector
// and Jacobian alone — the bounded path, where the solver returns no
// covariance. The residual mean square is recomputed from the residuals and
// scaled into (JᵀJ)⁻¹; wellConditioned reports whether the normal equations
// were invertible without a pseudo-inverse fallback.
func ciFromResidualJacobian(params, residuals []float64, jac *mat.Dense, level float64) (ci [][2]float64, wellConditioned bool) {
	dof := len(residuals) - len(params)
	if dof < 1 {
		dof = 1
	}
	mse := floats.Dot(residuals, residuals) / float64(dof)

	cov, wellConditioned := solve.CovarianceFromJacobian(jac, mse)

	return ciFromCovariance(params, cov, dof, level), wellConditioned
}
