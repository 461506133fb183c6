// SPDX-License-Identifier: MIT

package invcache

import (
	"sync"

	"github.com/katalvlaran/invcache/matrix"
)

// Holder owns a matrix and an optional cached inverse of it.
//
// Invariant: when the cached inverse is present it is the inverse of the
// current matrix. It is kept procedurally: every SetMatrix (and Invalidate)
// clears the cache; nothing is recomputed or verified on write.
//
// The zero value is not useful; construct with New.
type Holder struct {
	mu      sync.Mutex
	matrix  matrix.Matrix
	inverse matrix.Matrix // nil ⇔ no valid cached inverse
	epoch   uint64        // bumped on every SetMatrix / Invalidate
}

// New returns a Holder for initial with an empty cache.
// No validation happens here; shape and invertibility are left to the
// Inverter used by Solve.
func New(initial matrix.Matrix) *Holder {
	return &Holder{matrix: initial}
}

// SetMatrix replaces the held matrix and unconditionally clears the cached
// inverse, even when m is the same value (or the same pointer) as before.
func (h *Holder) SetMatrix(m matrix.Matrix) {
	h.mu.Lock()
	h.matrix = m
	h.inverse = nil
	h.epoch++
	h.mu.Unlock()
}

// Matrix returns the held matrix. The value is shared, not copied.
func (h *Holder) Matrix() matrix.Matrix {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.matrix
}

// SetCachedInverse stores inv as the cached inverse without checking it.
// Callers vouch that inv is the inverse of the current matrix; Solve is the
// only caller in this package. Passing nil clears the cache.
func (h *Holder) SetCachedInverse(inv matrix.Matrix) {
	h.mu.Lock()
	h.inverse = inv
	h.mu.Unlock()
}

// CachedInverse returns the cached inverse and whether one is present.
// It never triggers a computation.
func (h *Holder) CachedInverse() (matrix.Matrix, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.inverse, h.inverse != nil
}

// Invalidate clears the cached inverse while keeping the matrix. Use it after
// mutating the held matrix in place, which the holder cannot observe.
func (h *Holder) Invalidate() {
	h.mu.Lock()
	h.inverse = nil
	h.epoch++
	h.mu.Unlock()
}

// Epoch returns the number of SetMatrix/Invalidate calls so far.
func (h *Holder) Epoch() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.epoch
}

// lookup reads the cache and the current epoch under one lock.
func (h *Holder) lookup() (inv matrix.Matrix, epoch uint64, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.inverse, h.epoch, h.inverse != nil
}

// snapshot reads the matrix together with the epoch it belongs to.
func (h *Holder) snapshot() (matrix.Matrix, uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.matrix, h.epoch
}

// storeIfCurrent caches inv only if no SetMatrix/Invalidate happened since
// epoch was observed and no other caller stored an inverse for that epoch
// first. It returns the value callers of this epoch must see: the earlier
// stored inverse when one exists, otherwise inv. stored is false when the
// epoch moved on; inv is then returned unchanged and not cached.
func (h *Holder) storeIfCurrent(epoch uint64, inv matrix.Matrix) (out matrix.Matrix, stored bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.epoch != epoch {
		return inv, false
	}
	if h.inverse != nil {
		return h.inverse, true
	}
	h.inverse = inv

	return inv, true
}
