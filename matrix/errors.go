// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag
// (see matrixErrorf); tests and callers check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped across logs.
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> NaN/Inf -> dimension mismatch -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows is returned by NewDenseFrom when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, Solve where a.Rows != b.Rows, or a
	// non-square input to LU/Inverse.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when no usable pivot exists in a column during
	// LU factorization, i.e. every candidate |pivot| ≤ singular tolerance.
	ErrSingular = errors.New("matrix: singular matrix")
)
