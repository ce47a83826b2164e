// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chemeq

import "github.com/cpmech/gosl/io"

// InvalidCompositionError indicates element amounts that cannot define a mixture
type InvalidCompositionError struct {
	B0     []float64 // given element amounts
	Reason string    // what is wrong
}

func (o *InvalidCompositionError) Error() string {
	return io.Sf("invalid composition b0=%v: %s", o.B0, o.Reason)
}

// ConvergenceError indicates that the equilibrium iterations did not converge
type ConvergenceError struct {
	T, P  float64   // temperature [K] and pressure [bar]
	B0    []float64 // element amounts
	Nit   int       // number of iterations performed
	Resid float64   // last element-balance residual
	Err   error     // cause, if the iterations were interrupted
}

func (o *ConvergenceError) Error() string {
	if o.Err != nil {
		return io.Sf("equilibrium at T=%g, P=%g failed after %d iterations:\n%v", o.T, o.P, o.Nit, o.Err)
	}
	return io.Sf("equilibrium at T=%g, P=%g failed after %d iterations. element residual=%g", o.T, o.P, o.Nit, o.Resid)
}

// Unwrap returns the cause
func (o *ConvergenceError) Unwrap() error { return o.Err }
