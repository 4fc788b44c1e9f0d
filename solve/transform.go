// SPDX-License-Identifier: MIT
// Package solve: MINPACK-style bound transforms.
//
// Each bounded parameter is re-expressed through a smooth surjection from the
// real line onto its interval, so the collaborator always faces an
// unconstrained problem:
//
//	[l, +∞): p = l + z²             (−∞, u]: p = u − z²
//	[l, u]:  p = l + (u−l)·(sin z + 1)/2
//
// The maps guarantee feasibility by construction — no clipping inside the
// optimizer loop, which is what makes the fitted gradual-sink slope
// non-negative regardless of where the solver wanders.

package solve

import "math"

// boundKind tags the per-parameter transform.
type boundKind uint8

const (
	boundNone boundKind = iota
	boundLower
	boundUpper
	boundBoth
)

// transform holds the per-parameter bound classification.
type transform struct {
	kind  []boundKind
	lower []float64
	upper []float64
}

// newTransform classifies the bounds of an n-parameter problem. Nil slices
// and ±Inf entries relax the corresponding sides.
//
// Errors: ErrBoundsLength, ErrBoundsInverted.
func newTransform(lower, upper []float64, n int) (transform, error) {
	if lower == nil && upper == nil {
		return transform{}, nil
	}
	if (lower != nil && len(lower) != n) || (upper != nil && len(upper) != n) {
		return transform{}, ErrBoundsLength
	}

	t := transform{
		kind:  make([]boundKind, n),
		lower: make([]float64, n),
		upper: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		lo, hi := math.Inf(-1), math.Inf(1)
		if lower != nil {
			lo = lower[i]
		}
		if upper != nil {
			hi = upper[i]
		}
		if lo > hi {
			return transform{}, ErrBoundsInverted
		}
		t.lower[i], t.upper[i] = lo, hi
		switch {
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			t.kind[i] = boundNone
		case math.IsInf(hi, 1):
			t.kind[i] = boundLower
		case math.IsInf(lo, -1):
			t.kind[i] = boundUpper
		default:
			t.kind[i] = boundBoth
		}
	}

	return t, nil
}

// active reports whether any parameter is transformed.
func (t transform) active() bool {
	for _, k := range t.kind {
		if k != boundNone {
			return true
		}
	}

	return false
}

// zNudge keeps transformed starting points strictly off the bound: the
// square and sine maps have zero derivative exactly on a bound, which would
// zero the starting Jacobian column and pin the parameter there.
const zNudge = 1e-3

// toInternal maps an original-space starting point into solver space,
// projecting out-of-bounds components onto their bound first. Inactive
// transforms return p itself.
func (t transform) toInternal(p []float64) []float64 {
	if !t.active() {
		return p
	}

	z := make([]float64, len(p))
	for i, v := range p {
		switch t.kind[i] {
		case boundLower:
			z[i] = math.Max(math.Sqrt(math.Max(v-t.lower[i], 0)), zNudge)
		case boundUpper:
			z[i] = math.Max(math.Sqrt(math.Max(t.upper[i]-v, 0)), zNudge)
		case boundBoth:
			span := t.upper[i] - t.lower[i]
			frac := 0.5 // degenerate l==u interval pins the midpoint
			if span > 0 {
				frac = math.Min(math.Max((v-t.lower[i])/span, zNudge), 1-zNudge)
			}
			z[i] = math.Asin(2*frac - 1)
		default:
			z[i] = v
		}
	}

	return z
}

// fromInternal maps a solver-space point back into the original space,
// writing into dst (len(dst) == len(z)). Inactive transforms copy.
func (t transform) fromInternal(z, dst []float64) {
	if !t.active() {
		copy(dst, z)

		return
	}

	for i, v := range z {
		switch t.kind[i] {
		case boundLower:
			dst[i] = t.lower[i] + v*v
		case boundUpper:
			dst[i] = t.upper[i] - v*v
		case boundBoth:
			dst[i] = t.lower[i] + (t.upper[i]-t.lower[i])*(math.Sin(v)+1)/2
		default:
			dst[i] = v
		}
	}
}
