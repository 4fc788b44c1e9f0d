// Package morphofit fits parametric steady-state models of morphogen
// concentration profiles to noisy one-dimensional spatial measurements,
// recovering decay-length and sink-strength parameters together with
// 95% confidence intervals and goodness-of-fit statistics.
//
// 🚀 What is morphofit?
//
//	A pure in-memory fitting library for diffusion/consumption gradients:
//		• Model evaluators: exponential, two-domain, two-domain gradual-sink —
//		  piecewise closed-form boundary-value-problem solutions
//		• Initial guess: background subtraction + log-linear regression
//		• Orchestrated fitting: each model seeded from the previous best fit
//		• Statistics: confidence intervals, MSE, coefficient of determination
//		• Special functions: Heaviside selector and Airy Ai/Bi kernels
//
// ✨ Why choose morphofit?
//
//   - Deterministic – no hidden randomness, identical inputs give identical fits
//   - Honest diagnostics – solver status is a first-class value, never polled
//     from ambient state; non-convergence degrades to a warning, not a crash
//   - Pure Go – no cgo, no I/O, reentrant per call
//
// Everything is organized under four subpackages:
//
//	special/ — Heaviside step and Airy functions of the first & second kind
//	model/   — parameter records, offset policy, landmarks & the three evaluators
//	solve/   — adapter around the Levenberg–Marquardt least-squares collaborator
//	fit/     — initial guess, fit orchestrator and fit statistics
//
// Quick sketch of the data flow:
//
//	(x, y) ──► fit.InitialGuess ──► exponential fit ──┬──► twoDomain fit
//	                                                  └──► gradualSink fit
//
// Dive into each package's doc.go for formulas, error contracts and examples.
//
//	go get github.com/katalvlaran/morphofit
package morphofit
