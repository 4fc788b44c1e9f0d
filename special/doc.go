// SPDX-License-Identifier: MIT

// Package special provides the small special-function kernel shared by the
// morphofit model evaluators: a Heaviside unit-step selector and real-argument
// Airy functions of the first and second kind (plus their derivatives).
//
// Conventions:
//
//   - Step(0) == 1. The piecewise model evaluators gate their two spatial
//     branches with Step(xB−x) and Step(x−xB); at the interface boundary both
//     gates are open, so both branches contribute. That tie convention is part
//     of the model definition and must not be "fixed" to a 50/50 split.
//   - Airy functions take real arguments. Values are obtained from the complex
//     Amos implementation in gonum's mathext package; the second kind is
//     assembled from the first via the DLMF 9.2.10 connection formula.
//
// Hyperbolic functions are intentionally NOT wrapped here — callers use
// math.Cosh / math.Sinh directly.
//
// Errors: none. All functions are total over finite real inputs; NaN/Inf
// propagate as in the underlying math library.
package special
