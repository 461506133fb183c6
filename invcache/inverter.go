// SPDX-License-Identifier: MIT

package invcache

//go:generate mockgen -source=inverter.go -destination=mocks/inverter_mock.go -package=mocks

import "github.com/katalvlaran/invcache/matrix"

// Inverter is the inversion primitive Solve delegates to on a cache miss.
// Implementations must be pure: same input, same output, no retained state.
// Failures (non-square, singular, ...) are returned as errors and reach the
// caller of Solve unchanged.
type Inverter interface {
	Inverse(a matrix.Matrix) (matrix.Matrix, error)
}

// InverterFunc adapts an ordinary function to the Inverter interface.
type InverterFunc func(a matrix.Matrix) (matrix.Matrix, error)

// Inverse calls f(a).
func (f InverterFunc) Inverse(a matrix.Matrix) (matrix.Matrix, error) { return f(a) }

// defaultInverter serves Solve when no WithInverter option is given.
var defaultInverter = MatrixInverter()

// MatrixInverter returns an Inverter backed by matrix.Inverse with the given
// numeric policy (e.g. matrix.WithSingularTolerance).
func MatrixInverter(opts ...matrix.Option) Inverter {
	return InverterFunc(func(a matrix.Matrix) (matrix.Matrix, error) {
		return matrix.Inverse(a, opts...)
	})
}
