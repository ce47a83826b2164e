// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chemeq

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Settings holds the constants of the equilibrium iterations
type Settings struct {
	NmaxIt  int     // max number of iterations
	Tol     float64 // tolerance on the corrections: n_j|Δln n_j|/Σn and n|Δln n|/Σn
	Btol    float64 // tolerance on the element balance, relative to max(b0)
	Trace   float64 // mole fraction below which a species is treated as trace
	CondMax float64 // bound on the condition number of the sensitivity matrix
	ShowR   bool    // show residuals during iterations
}

// NewSettings returns the default settings
func NewSettings() (o *Settings) {
	o = new(Settings)
	o.SetDefault()
	return
}

// SetDefault sets default values
func (o *Settings) SetDefault() {
	o.NmaxIt = 50
	o.Tol = 0.5e-5
	o.Btol = 1e-8
	o.Trace = 1e-10
	o.CondMax = 1e12
	o.ShowR = false
}

// Init initialises settings from parameters. Missing parameters keep their default values
func (o *Settings) Init(prms dbf.Params) (err error) {
	o.SetDefault()
	for _, p := range prms {
		switch p.N {
		case "NmaxIt":
			o.NmaxIt = int(p.V)
		case "Tol":
			o.Tol = p.V
		case "Btol":
			o.Btol = p.V
		case "Trace":
			o.Trace = p.V
		case "CondMax":
			o.CondMax = p.V
		case "ShowR":
			o.ShowR = p.V > 0
		default:
			return chk.Err("chemeq: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.NmaxIt < 1 {
		return chk.Err("chemeq: NmaxIt must be at least 1. NmaxIt=%d is invalid", o.NmaxIt)
	}
	if o.Tol <= 0 || o.Btol <= 0 {
		return chk.Err("chemeq: tolerances must be positive. Tol=%g, Btol=%g are invalid", o.Tol, o.Btol)
	}
	if o.Trace <= 0 || o.Trace >= 1e-4 {
		return chk.Err("chemeq: trace threshold must be in (0, 1e-4). Trace=%g is invalid", o.Trace)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Settings) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "NmaxIt", V: 50},
		&dbf.P{N: "Tol", V: 0.5e-5},
		&dbf.P{N: "Btol", V: 1e-8},
		&dbf.P{N: "Trace", V: 1e-10},
		&dbf.P{N: "CondMax", V: 1e12},
		&dbf.P{N: "ShowR", V: 0},
	}
}
