// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels (Mul, LU, Inverse, Solve, AllClose).
//
// Purpose:
//   - Provide the inversion primitive used by invcache, plus the direct
//     linear-system solve and the helpers needed to verify results.
//
// Determinism:
//   - Fixed loop orders everywhere; pivot ties resolve to the lowest row index.
//   - Kernels never mutate their inputs; every result is freshly allocated.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opLU       = "LU"
	opInverse  = "Inverse"
	opSolve    = "Solve"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns a private *Dense copy of m that kernels may overwrite.
// *Dense inputs take the flat copy fast-path; other implementations are
// read through At in i→j order.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		cp := make([]float64, len(d.data))
		copy(cp, d.data)
		return &Dense{r: d.r, c: d.c, data: cp, validateNaNInf: d.validateNaNInf}, nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Mul computes the matrix product a × b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - *Dense operands use an i→k→j flat loop; anything else falls back to At.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		var aik float64
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				aik = ad.data[i*inner+k]
				if aik == 0 {
					continue
				}
				for j = 0; j < cols; j++ {
					out.data[i*cols+j] += aik * bd.data[k*cols+j]
				}
			}
		}

		return out, nil
	}

	var av, bv, sum float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// LUFactors holds the result of a partial-pivoting factorization P·A = L·U.
type LUFactors struct {
	L     *Dense // unit lower triangular
	U     *Dense // upper triangular
	Perm  []int  // row i of P·A is row Perm[i] of A
	Swaps int    // number of row interchanges (parity gives sign of det P)
}

// N returns the order of the factorized matrix.
func (f *LUFactors) N() int { return len(f.Perm) }

// Det returns det(A) = (−1)^Swaps · Π U[i,i].
func (f *LUFactors) Det() float64 {
	det := 1.0
	if f.Swaps%2 == 1 {
		det = -1.0
	}
	n := f.N()
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det
}

// solveInPlace overwrites x (holding the already permuted right-hand side P·b)
// with the solution of L·U·x = P·b.
// Forward pass i↑ leaves y in x; backward pass i↓ reads y[i] before overwriting it.
func (f *LUFactors) solveInPlace(x []float64) {
	n := f.N()
	l, u := f.L.data, f.U.data
	var (
		i, k int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += l[i*n+k] * x[k]
		}
		x[i] -= sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += u[i*n+k] * x[k]
		}
		x[i] = (x[i] - sum) / u[i*n+i]
	}
}

// LU factorizes a square matrix with partial (row) pivoting: P·A = L·U.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy m into a private Dense; optional finite check.
//   - Stage 2: For each column k, pick the row p ≥ k with the largest |a[p,k]|,
//     swap it into place, then eliminate below the pivot storing multipliers in-place.
//   - Stage 3: Split the compact buffer into L (unit diagonal) and U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (policy on),
//     ErrSingular (best pivot |v| ≤ singular tolerance).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	w, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if o.validateNaNInf {
		if err = ValidateFinite(w); err != nil {
			return nil, matrixErrorf(opLU, err)
		}
	}

	n := w.r
	a := w.data
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p   int
		swaps        int
		best, v, fac float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= o.singularTol {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			swaps++
		}
		for i = k + 1; i < n; i++ {
			fac = a[i*n+k] / a[k*n+k]
			a[i*n+k] = fac
			if fac == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= fac * a[k*n+j]
			}
		}
	}

	L, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Swaps: swaps}, nil
}

// Inverse computes A⁻¹ from the pivoted LU factorization of m.
// The input must be non-nil and square; it is never mutated.
//
// Implementation:
//   - Stage 1: LU(m, opts...).
//   - Stage 2: For each canonical basis column e_col, permute it, solve
//     L·U·x = P·e_col and write x into column col of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular (all from LU).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - If only A⁻¹·B is needed, Solve is cheaper than Inverse followed by Mul.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.N()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			if f.Perm[i] == col {
				x[i] = 1.0
			} else {
				x[i] = 0.0
			}
		}
		f.solveInPlace(x)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Solve returns X such that A·X = B, for square A (n×n) and B (n×k).
//
// Errors:
//   - ErrNilMatrix (a or b), ErrDimensionMismatch (non-square a, or b.Rows != n),
//     ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^3 + n^2·k), Space O(n^2 + n·k).
func Solve(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.N()
	if b.Rows() != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs has %d rows, want %d: %w", b.Rows(), n, ErrDimensionMismatch))
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if o := gatherOptions(opts...); o.validateNaNInf {
		if err = ValidateFinite(bd); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	k := bd.c
	out, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, n)
	var col, i int
	for col = 0; col < k; col++ {
		for i = 0; i < n; i++ {
			x[i] = bd.data[f.Perm[i]*k+col]
		}
		f.solveInPlace(x)
		for i = 0; i < n; i++ {
			out.data[i*k+col] = x[i]
		}
	}

	return out, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ tol for every cell.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tol not finite).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(tol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= tol) {
				return false, nil
			}
		}
	}

	return true, nil
}
