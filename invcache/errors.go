// SPDX-License-Identifier: MIT

package invcache

import "errors"

// ErrNilHolder is returned by Solve and SolveSystem when given a nil *Holder.
var ErrNilHolder = errors.New("invcache: nil holder")

// Operation tags used when invcache itself wraps an error.
const (
	opSolveSystem = "SolveSystem"
)
