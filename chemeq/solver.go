// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package chemeq implements the computation of chemical equilibrium by minimisation of Gibbs energy
//  References:
//   [1] Gordon S and McBride BJ (1994) Computer program for calculation of complex chemical
//       equilibrium compositions and applications. I. Analysis. NASA RP-1311
package chemeq

import (
	"math"

	"github.com/cpmech/gocea/linsol"
	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// State holds the equilibrium composition at (b0, T, P)
type State struct {
	T      float64   // temperature [K]
	P      float64   // pressure [bar]
	B0     []float64 // [ne] element amounts [kmol/kg]
	N      []float64 // [ns] species amounts [kmol/kg]
	Nmoles float64   // Σ N
	Pi     []float64 // [ne] element potentials (Lagrange multipliers ÷ RT)
	Trace  []bool    // [ns] species below the trace threshold, including absent ones
	Absent []bool    // [ns] species that cannot be formed with the elements present
	Nit    int       // number of iterations
	Resid  float64   // max element-balance residual
}

// X returns the mole fractions
func (o *State) X() (x []float64) {
	x = make([]float64, len(o.N))
	for j, nj := range o.N {
		x[j] = nj / o.Nmoles
	}
	return
}

// Solve computes the equilibrium composition of a gas mixture with element amounts b0 at
// temperature T [K] and pressure P [bar]. Settings may be nil
func Solve(tbl *thermo.Table, b0 []float64, T, P float64, s *Settings) (st *State, err error) {

	// settings
	if s == nil {
		s = NewSettings()
	}

	// check input
	ne, ns := tbl.Ne(), tbl.Ns()
	if len(b0) != ne {
		return nil, &InvalidCompositionError{b0, io.Sf("%d amounts given but table has %d elements %v", len(b0), ne, tbl.Elements)}
	}
	for i, b := range b0 {
		if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
			return nil, &InvalidCompositionError{b0, io.Sf("amount of %q must be finite and non-negative", tbl.Elements[i])}
		}
	}
	if floats.Sum(b0) <= 0 {
		return nil, &InvalidCompositionError{b0, "all amounts are zero"}
	}
	if !(T > 0) || math.IsInf(T, 0) || !(P > 0) || math.IsInf(P, 0) {
		return nil, chk.Err("temperature and pressure must be positive and finite. T=%g, P=%g are invalid", T, P)
	}

	// elements present and species that can be formed with them
	var elems, spcs []int
	removed := make([]bool, ns)
	for i := 0; i < ne; i++ {
		if b0[i] > 0 {
			elems = append(elems, i)
			continue
		}
		for j := 0; j < ns; j++ {
			if tbl.Aij[i][j] > 0 {
				removed[j] = true
			}
		}
	}
	for j := 0; j < ns; j++ {
		if !removed[j] {
			spcs = append(spcs, j)
		}
	}
	if len(spcs) == 0 {
		return nil, &InvalidCompositionError{b0, "no species can be formed with the elements present"}
	}

	// Gibbs energies ÷ RT at (T, P)
	_, h, sr, err := tbl.Eval(T, removed)
	if err != nil {
		return nil, err
	}
	sol := newSolver(tbl, b0, elems, spcs)
	lnp := math.Log(P / thermo.Pref)
	for a, j := range spcs {
		sol.g[a] = h[j] - sr[j] + lnp
	}

	// iterations
	sol.run(s)
	if sol.err != nil || !sol.converged {
		return nil, &ConvergenceError{T: T, P: P, B0: b0, Nit: sol.it, Resid: sol.resid, Err: sol.err}
	}

	// results
	st = &State{T: T, P: P, Nit: sol.it, Resid: sol.resid}
	st.B0 = make([]float64, ne)
	copy(st.B0, b0)
	st.N = make([]float64, ns)
	st.Trace = make([]bool, ns)
	st.Absent = removed
	for j := 0; j < ns; j++ {
		st.Trace[j] = removed[j]
	}
	for a, j := range spcs {
		st.N[j] = sol.nj[a]
		st.Trace[j] = !sol.active[a]
	}
	st.Nmoles = floats.Sum(st.N)
	st.Pi = make([]float64, ne)
	for k, i := range elems {
		st.Pi[i] = sol.pi[k]
	}
	return
}

// solver holds the reduced problem: elements present and species that can be formed
type solver struct {

	// problem
	a  [][]float64 // [nel][nsp] stoichiometry
	b0 []float64   // [nel] element amounts
	g  []float64   // [nsp] Gibbs energies ÷ RT at P

	// state
	lnnj   []float64 // [nsp] ln(n_j)
	lnn    float64   // ln(n)
	nj     []float64 // [nsp] n_j
	mu     []float64 // [nsp] chemical potentials ÷ RT
	active []bool    // [nsp] species above the trace threshold
	pi     []float64 // [nel] element potentials
	dl     []float64 // [nsp] Δln(n_j)
	dlnn   float64   // Δln(n)

	// results
	it        int     // iteration number
	resid     float64 // max element-balance residual
	converged bool    // convergence flag
	err       error   // error that interrupted the iterations
}

func newSolver(tbl *thermo.Table, b0 []float64, elems, spcs []int) (o *solver) {
	nel, nsp := len(elems), len(spcs)
	o = new(solver)
	o.a = make([][]float64, nel)
	o.b0 = make([]float64, nel)
	for k, i := range elems {
		o.b0[k] = b0[i]
		o.a[k] = make([]float64, nsp)
		for m, j := range spcs {
			o.a[k][m] = tbl.Aij[i][j]
		}
	}
	o.g = make([]float64, nsp)
	o.lnnj = make([]float64, nsp)
	o.nj = make([]float64, nsp)
	o.mu = make([]float64, nsp)
	o.active = make([]bool, nsp)
	o.pi = make([]float64, nel)
	o.dl = make([]float64, nsp)
	return
}

// run performs the Newton-Raphson iterations with n=0.1 and n_j=n/ns as initial estimate
func (o *solver) run(s *Settings) {

	// constants
	nel, nsp := len(o.b0), len(o.g)
	lntrace := math.Log(s.Trace)
	lnxmax := math.Log(1e-4) // trace species cannot exceed this fraction in one step
	btol := s.Btol * floats.Max(o.b0)

	// initial estimate
	o.lnn = math.Log(0.1)
	for j := 0; j < nsp; j++ {
		o.lnnj[j] = math.Log(0.1 / float64(nsp))
	}

	// message
	if s.ShowR {
		io.PfYel("%6s%6s%14s%14s%14s%5s\n", "it", "nact", "max|Δln nj|", "|Δln n|", "resid", "ex")
	}

	// iterations
	idx := make([]int, 0, nsp)
	for o.it = 0; o.it < s.NmaxIt; o.it++ {

		// current estimate
		n := math.Exp(o.lnn)
		idx = idx[:0]
		for j := 0; j < nsp; j++ {
			o.nj[j] = math.Exp(o.lnnj[j])
			o.mu[j] = o.g[j] + o.lnnj[j] - o.lnn
			o.active[j] = o.lnnj[j]-o.lnn > lntrace
			if o.active[j] {
				idx = append(idx, j)
			}
		}
		sn := floats.Sum(o.nj)
		wtr := s.Trace * n

		// Jacobian and right-hand side
		//  unknowns: Δln(n_j) of active species, π_k, Δln(n)
		na := len(idx)
		neq := na + nel + 1
		A := mat.NewDense(neq, neq, nil)
		r := make([]float64, neq)
		ip, in := na, na+nel // first π column and Δln(n) column

		// stationarity: Δln(n_j) - Σ a_ij π_i - Δln(n) = -μ_j
		for m, j := range idx {
			A.Set(m, m, 1)
			for i := 0; i < nel; i++ {
				A.Set(m, ip+i, -o.a[i][j])
			}
			A.Set(m, in, -1)
			r[m] = -o.mu[j]
		}

		// element balance: Σ a_kj n_j Δln(n_j) = b0_k - b_k
		o.resid = 0
		for k := 0; k < nel; k++ {
			bk := floats.Dot(o.a[k], o.nj)
			r[ip+k] = o.b0[k] - bk
			o.resid = math.Max(o.resid, math.Abs(o.b0[k]-bk))
			for m, j := range idx {
				A.Set(ip+k, m, o.a[k][j]*o.nj[j])
			}
		}

		// total moles: Σ n_j Δln(n_j) - n Δln(n) = n - Σ n_j
		for m, j := range idx {
			A.Set(in, m, o.nj[j])
		}
		A.Set(in, in, -n)
		r[in] = n - sn

		// trace species: Δln(n_j) = -μ_j + Σ a_ij π_i + Δln(n) eliminated with weight Trace⋅n
		for j := 0; j < nsp; j++ {
			if o.active[j] {
				continue
			}
			for k := 0; k < nel; k++ {
				akw := o.a[k][j] * wtr
				if akw == 0 {
					continue
				}
				for i := 0; i < nel; i++ {
					addTo(A, ip+k, ip+i, akw*o.a[i][j])
				}
				addTo(A, ip+k, in, akw)
				r[ip+k] += akw * o.mu[j]
			}
			for i := 0; i < nel; i++ {
				addTo(A, in, ip+i, wtr*o.a[i][j])
			}
			addTo(A, in, in, wtr)
			r[in] += wtr * o.mu[j]
		}

		// solve
		x, err := linsol.Solve(A, 0, r)
		if err != nil {
			o.err = err
			return
		}
		copy(o.pi, x[0][ip:in])
		o.dlnn = x[0][in]
		for j := 0; j < nsp; j++ {
			o.dl[j] = -o.mu[j] + o.dlnn
			for i := 0; i < nel; i++ {
				o.dl[j] += o.a[i][j] * o.pi[i]
			}
			if math.IsNaN(o.dl[j]) || math.IsInf(o.dl[j], 0) {
				o.err = chk.Err("NaN or Inf found in corrections: Δln(n_j)=%v Δln(n)=%v", o.dl, o.dlnn)
				return
			}
		}

		// check convergence
		o.converged = n*math.Abs(o.dlnn)/sn <= s.Tol && o.resid <= btol
		dlmax := 5 * math.Abs(o.dlnn)
		for _, j := range idx {
			if o.nj[j]*math.Abs(o.dl[j])/sn > s.Tol {
				o.converged = false
			}
			dlmax = math.Max(dlmax, math.Abs(o.dl[j]))
		}
		if s.ShowR {
			io.Pfyel("%6d%6d%14.6e%14.6e%14.6e%5d\n", o.it, na, dlmax, math.Abs(o.dlnn), o.resid, utl.Expon(o.resid))
		}
		if o.converged {
			break
		}

		// damping
		λ := 1.0
		if dlmax > 2 {
			λ = 2.0 / dlmax
		}
		for j := 0; j < nsp; j++ {
			if o.active[j] {
				continue
			}
			if d := o.dl[j] - o.dlnn; d > 0 {
				λ = math.Min(λ, math.Abs((lnxmax-(o.lnnj[j]-o.lnn))/d))
			}
		}

		// update
		for j := 0; j < nsp; j++ {
			o.lnnj[j] += λ * o.dl[j]
		}
		o.lnn += λ * o.dlnn
	}

	// message
	if s.ShowR {
		io.Pfgrey("  converged=%v with %d iterations\n", o.converged, o.it)
	}
}

// addTo adds v to A[i][j]
func addTo(A *mat.Dense, i, j int, v float64) {
	A.Set(i, j, A.At(i, j)+v)
}
