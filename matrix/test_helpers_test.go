// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/invcache/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths inside kernels.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from a 2D literal or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustSet WRITES m[i,j]=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandSPD BUILDS a well-conditioned n×n matrix MᵀM + n·I from a fixed seed.
func RandSPD(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j, k int
	raw := make([]float64, n*n)
	for i = range raw {
		raw[i] = rng.Float64()*2 - 1
	}
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += raw[k*n+i] * raw[k*n+j]
			}
			if i == j {
				sum += float64(n)
			}
			MustSet(t, m, i, j, sum)
		}
	}

	return m
}

// AssertClose FAILS the test unless a and b agree cell-wise within tol.
func AssertClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, tol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond %.1e:\n%v\nvs\n%v", tol, a, b)
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// grid is a minimal slice-backed Matrix without any numeric policy, used to
// feed values a *Dense would refuse (NaN/Inf) into kernels.
type grid [][]float64

func (g grid) Rows() int { return len(g) }
func (g grid) Cols() int { return len(g[0]) }

func (g grid) At(i, j int) (float64, error) {
	if i < 0 || i >= len(g) || j < 0 || j >= len(g[i]) {
		return 0, matrix.ErrOutOfRange
	}
	return g[i][j], nil
}

func (g grid) Set(i, j int, v float64) error {
	if i < 0 || i >= len(g) || j < 0 || j >= len(g[i]) {
		return matrix.ErrOutOfRange
	}
	g[i][j] = v
	return nil
}

func (g grid) Clone() matrix.Matrix {
	out := make(grid, len(g))
	for i := range g {
		out[i] = append([]float64(nil), g[i]...)
	}
	return out
}
