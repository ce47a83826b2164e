// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cea

import (
	"github.com/cpmech/gocea/chemeq"
	"github.com/cpmech/gocea/linsol"
	"github.com/cpmech/gocea/props"
	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/fun/dbf"
)

// CEA computes equilibrium properties by Gibbs minimisation followed by the solution of
// the sensitivity equations w.r.t temperature and pressure
type CEA struct {
	Settings *chemeq.Settings // solver settings; read-only during Calc
	tbl      *thermo.Table    // species
}

// add backend to factory
func init() {
	allocators["cea"] = func(tbl *thermo.Table, prms dbf.Params) (Backend, error) {
		o := &CEA{Settings: new(chemeq.Settings), tbl: tbl}
		if err := o.Settings.Init(prms); err != nil {
			return nil, err
		}
		return o, nil
	}
}

// Table returns the species table
func (o *CEA) Table() *thermo.Table { return o.tbl }

// Calc computes the equilibrium state and properties at (b0, T, P)
func (o *CEA) Calc(b0 []float64, T, P float64) (res *Result, err error) {

	// equilibrium
	st, err := chemeq.Solve(o.tbl, b0, T, P, o.Settings)
	if err != nil {
		return
	}

	// sensitivity system
	sys, err := props.BuildSystem(o.tbl, st.N, st.Nmoles, T, o.Settings.Trace, st.Absent)
	if err != nil {
		return
	}
	x, err := linsol.Solve(sys.A, o.Settings.CondMax, sys.RhsT, sys.RhsP)
	if err != nil {
		return
	}

	// properties
	p, err := props.Calc(o.tbl, st.N, st.Nmoles, T, P, x[0], x[1], o.Settings.Trace, st.Absent)
	if err != nil {
		return
	}
	return &Result{st, p}, nil
}
