// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package props computes the derivatives of the equilibrium state with respect to temperature
// and pressure and the properties of the reacting gas mixture
package props

import (
	"math"

	"github.com/cpmech/gocea/thermo"
	"gonum.org/v1/gonum/mat"
)

// System holds the sensitivity equations A⋅x = rhs of a converged state
//  unknowns: x = {∂π_i/∂ln T, ∂ln n/∂ln T} or {∂π_i/∂ln P, ∂ln n/∂ln P}
type System struct {
	A    *mat.Dense // [ne+1][ne+1] symmetric matrix
	RhsT []float64  // [ne+1] right-hand side for derivatives w.r.t ln T
	RhsP []float64  // [ne+1] right-hand side for derivatives w.r.t ln P
}

// weights returns max(n_j, trace⋅nmoles); species that cannot be formed (NaN data) get zero
func weights(n []float64, nmoles, trace float64, h []float64) (w []float64) {
	w = make([]float64, len(n))
	for j, nj := range n {
		if math.IsNaN(h[j]) {
			continue
		}
		w[j] = math.Max(nj, trace*nmoles)
	}
	return
}

// BuildSystem assembles the sensitivity system at the equilibrium state (n, T)
//  absent -- species that cannot be formed (see chemeq.State.Absent); may be nil
func BuildSystem(tbl *thermo.Table, n []float64, nmoles, T, trace float64, absent []bool) (o *System, err error) {

	// thermodynamic data
	_, h, _, err := tbl.Eval(T, absent)
	if err != nil {
		return
	}
	w := weights(n, nmoles, trace, h)

	// allocate
	ne, ns := tbl.Ne(), tbl.Ns()
	o = new(System)
	o.A = mat.NewDense(ne+1, ne+1, nil)
	o.RhsT = make([]float64, ne+1)
	o.RhsP = make([]float64, ne+1)

	// assemble
	for j := 0; j < ns; j++ {
		if w[j] == 0 {
			continue
		}
		for i := 0; i < ne; i++ {
			aw := tbl.Aij[i][j] * w[j]
			if aw == 0 {
				continue
			}
			for k := 0; k < ne; k++ {
				o.A.Set(i, k, o.A.At(i, k)+aw*tbl.Aij[k][j])
			}
			o.A.Set(i, ne, o.A.At(i, ne)+aw)
			o.A.Set(ne, i, o.A.At(ne, i)+aw)
			o.RhsT[i] -= aw * h[j]
			o.RhsP[i] += aw
		}
		o.RhsT[ne] -= w[j] * h[j]
		o.RhsP[ne] += w[j]
	}

	// elements that are absent give identity rows
	for i := 0; i < ne; i++ {
		if o.A.At(i, ne) == 0 {
			o.A.Set(i, i, 1)
		}
	}
	return
}
