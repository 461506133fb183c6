// SPDX-License-Identifier: MIT

package invcache

import (
	"fmt"
	"time"

	"github.com/katalvlaran/invcache/matrix"
)

// Solve returns the inverse of h's current matrix, computing it at most once
// per epoch.
//
// On a hit it logs "getting cached inverse" at Info and returns the cached
// value; nothing is recomputed or mutated. On a miss it inverts the current
// matrix with the configured Inverter, caches the result and returns it.
// When concurrent callers miss in the same epoch, the first stored result
// wins and every caller of that epoch gets that same value.
//
// Errors:
//   - ErrNilHolder if h is nil.
//   - Any Inverter error, returned as is. The cache stays empty, so the next
//     call retries.
//
// Complexity:
//   - Hit O(1); miss is the Inverter's cost (O(n³) for the default).
func Solve(h *Holder, opts ...Option) (matrix.Matrix, error) {
	if h == nil {
		return nil, ErrNilHolder
	}
	o := gatherOptions(opts...)

	if inv, epoch, ok := h.lookup(); ok {
		o.logger.Info("getting cached inverse", "epoch", epoch)
		o.metrics.hit()
		return inv, nil
	}

	m, epoch := h.snapshot()
	start := time.Now()
	inverter := o.inverter
	if inverter == nil {
		inverter = defaultInverter
	}
	inv, err := inverter.Inverse(m)
	if err != nil {
		o.metrics.failure(time.Since(start))
		return nil, err
	}
	o.metrics.miss(time.Since(start))

	inv, stored := h.storeIfCurrent(epoch, inv)
	if stored {
		o.logger.Debug("inverse computed", "epoch", epoch, "elapsed", time.Since(start))
	} else {
		// SetMatrix ran while we were inverting; inv belongs to the old matrix.
		o.logger.Debug("matrix replaced during inversion, result not cached", "epoch", epoch)
	}

	return inv, nil
}

// SolveSystem returns X = A⁻¹·B where A is h's current matrix. A⁻¹ is
// obtained through Solve and therefore memoized; B and X are never cached,
// so different right-hand sides always get their own answer.
//
// Errors:
//   - ErrNilHolder, matrix.ErrNilMatrix (b is nil).
//   - Any Inverter error, as in Solve.
//   - matrix.ErrDimensionMismatch when b.Rows() differs from the order of A.
func SolveSystem(h *Holder, b matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	if h == nil {
		return nil, ErrNilHolder
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveSystem, err)
	}

	inv, err := Solve(h, opts...)
	if err != nil {
		return nil, err
	}
	x, err := matrix.Mul(inv, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveSystem, err)
	}

	return x, nil
}
