// SPDX-License-Identifier: MIT

// Package matrix provides the dense matrix value type and the linear-algebra
// kernels that invcache delegates to.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and deep Clone.
//   - LU: partial-pivoting factorization PA = LU.
//   - Inverse: A⁻¹ assembled from LU by forward/backward substitution.
//   - Solve: X with A·X = B, without forming A⁻¹.
//   - Mul and AllClose helpers for composing and checking results.
//
// All kernels are pure: inputs are never mutated and each call allocates its
// own result. Errors are package sentinels (see errors.go) wrapped with an
// operation tag, so callers match them with errors.Is.
//
// Numeric policy is configured per call with functional options
// (WithSingularTolerance, WithValidateNaNInf, WithNoValidateNaNInf).
package matrix
