// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package linsol solves dense linear systems with one factorisation shared by many right-hand sides
package linsol

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// DefaultCondMax is the default bound on the condition number
const DefaultCondMax = 1e12

// SingularMatrixError indicates a matrix that cannot be factorised or is too ill-conditioned
type SingularMatrixError struct {
	Nrow, Ncol int     // dimensions
	Cond       float64 // estimated condition number (1-norm); +Inf if a pivot is zero
	CondMax    float64 // bound that was exceeded; zero if none
}

func (o *SingularMatrixError) Error() string {
	if o.Nrow != o.Ncol {
		return io.Sf("matrix is not square: %d x %d", o.Nrow, o.Ncol)
	}
	if math.IsInf(o.Cond, 1) || math.IsNaN(o.Cond) {
		return io.Sf("matrix (%d x %d) is singular", o.Nrow, o.Ncol)
	}
	return io.Sf("matrix (%d x %d) is ill-conditioned: cond=%g > %g", o.Nrow, o.Ncol, o.Cond, o.CondMax)
}

// Solve factorises A (LU with partial pivoting) once and solves A⋅x = b for every b in rhs.
//  condMax -- bound on the condition number of A; zero or negative means that only exact
//             singularity is reported
func Solve(A mat.Matrix, condMax float64, rhs ...[]float64) (x [][]float64, err error) {

	// check
	m, n := A.Dims()
	if m != n {
		return nil, &SingularMatrixError{Nrow: m, Ncol: n, Cond: math.Inf(1)}
	}

	// factorise
	var lu mat.LU
	lu.Factorize(A)
	cond := lu.Cond()
	if math.IsInf(cond, 0) || math.IsNaN(cond) || (condMax > 0 && cond > condMax) {
		return nil, &SingularMatrixError{Nrow: m, Ncol: n, Cond: cond, CondMax: condMax}
	}

	// solve
	x = make([][]float64, len(rhs))
	for k, b := range rhs {
		if len(b) != n {
			return nil, chk.Err("right-hand side %d has length %d but must have length %d", k, len(b), n)
		}
		var xk mat.VecDense
		err = lu.SolveVecTo(&xk, false, mat.NewVecDense(n, copyOf(b)))
		if err != nil {
			var c mat.Condition
			if !errors.As(err, &c) || math.IsInf(float64(c), 0) {
				return nil, &SingularMatrixError{Nrow: m, Ncol: n, Cond: cond, CondMax: condMax}
			}
			err = nil // solution is available; cond within the requested bound
		}
		x[k] = make([]float64, n)
		for i := 0; i < n; i++ {
			x[k][i] = xk.AtVec(i)
		}
	}
	return
}

// copyOf returns a copy of v; NewVecDense uses the given slice as backing data
func copyOf(v []float64) []float64 {
	w := make([]float64, len(v))
	copy(w, v)
	return w
}
