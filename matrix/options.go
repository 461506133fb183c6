// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// factorization kernels (LU, Inverse, Solve). This file defines:
//   - Option (functional options over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions, the single resolver used by every kernel.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTolerance is the largest |pivot| still treated as zero.
	// 0 means only an exact zero column (after pivoting) is singular.
	DefaultSingularTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on kernel inputs.
	DefaultValidateNaNInf = true
)

const panicSingularToleranceInvalid = "matrix: WithSingularTolerance: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported so callers cannot bypass gatherOptions.
type options struct {
	singularTol    float64 // >= 0; DefaultSingularTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithSingularTolerance sets the pivot threshold used by LU: a column whose
// best candidate satisfies |pivot| ≤ eps makes the matrix singular.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Notes:
//   - Larger eps rejects near-singular inputs early instead of returning an
//     inverse with huge entries. Scale-dependent; pick it relative to the data.
func WithSingularTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicSingularToleranceInvalid)
	}

	return func(o *options) { o.singularTol = eps }
}

// WithValidateNaNInf enables the finite-input check (the default).
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-input check. NaN inputs then
// propagate into the result instead of failing with ErrNaNInf.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) options {
	o := options{
		singularTol:    DefaultSingularTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
