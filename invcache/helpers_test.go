// SPDX-License-Identifier: MIT
package invcache_test

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/invcache"
	"github.com/katalvlaran/invcache/matrix"
)

const hitMessage = "getting cached inverse"

// newTestLogger writes Info and above into buf so tests can assert on hits.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// quietLogger drops everything.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// requireClose fails unless got matches the literal want within tol.
func requireClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(mustFrom(t, want), got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want %v, got\n%v", want, got)
}

// requireIdentityProduct fails unless a·inv ≈ I.
func requireIdentityProduct(t *testing.T, a, inv matrix.Matrix, tol float64) {
	t.Helper()
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(a.Rows())
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, id, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "A·A⁻¹ is not I:\n%v", prod)
}

// randDominant builds an n×n strictly diagonally dominant (hence invertible)
// matrix from a fixed seed.
func randDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}

	return mustFrom(t, rows)
}

// countingInverter wraps the default primitive and counts invocations.
type countingInverter struct {
	calls atomic.Int64
	next  invcache.Inverter
}

func newCountingInverter() *countingInverter {
	return &countingInverter{next: invcache.MatrixInverter()}
}

func (c *countingInverter) Inverse(a matrix.Matrix) (matrix.Matrix, error) {
	c.calls.Add(1)
	return c.next.Inverse(a)
}

func (c *countingInverter) Calls() int { return int(c.calls.Load()) }

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
