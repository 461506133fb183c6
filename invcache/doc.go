// SPDX-License-Identifier: MIT

// Package invcache memoizes the inverse of a matrix.
//
// A Holder pairs a matrix with a lazily computed cache of its inverse.
// Replacing the matrix (SetMatrix) always clears the cache, whether or not
// the new value equals the old one. Solve serves the cached inverse when it
// is present and otherwise computes it once through an Inverter and stores
// it:
//
//	h := invcache.New(a)
//	inv, err := invcache.Solve(h) // computes A⁻¹
//	inv, err = invcache.Solve(h)  // cache hit, same value
//	h.SetMatrix(b)                // cache cleared
//	inv, err = invcache.Solve(h)  // computes B⁻¹
//
// The interval between two SetMatrix calls is an epoch. Within an epoch the
// first successful Solve pays the O(n³) inversion and every later Solve is a
// field read returning the identical matrix value. A failed inversion stores
// nothing, so the next Solve retries.
//
// Cached inverses are shared, not copied: callers must treat them, and the
// matrix returned by Holder.Matrix, as read-only. If the owner mutates the
// held matrix in place it must call Invalidate.
//
// Holder is safe for concurrent use. Solve does not serialize inversions:
// concurrent callers in one epoch may both compute, but a result is stored
// only if its epoch is still current, so a concurrent SetMatrix never leaves
// a stale inverse behind.
package invcache
