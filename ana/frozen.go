// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the equilibrium computations
package ana

import (
	"math"

	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// FrozenMixture holds the properties of an ideal-gas mixture whose composition does not change
type FrozenMixture struct {
	T     float64 // temperature [K]
	P     float64 // pressure [bar]
	Wt    float64 // molecular weight [kg/kmol]
	R     float64 // gas constant [kJ/(kg K)]
	Cp    float64 // specific heat at constant pressure [kJ/(kg K)]
	Cv    float64 // specific heat at constant volume [kJ/(kg K)]
	Gamma float64 // Cp/Cv
	H     float64 // enthalpy [kJ/kg]
	S     float64 // entropy [kJ/(kg K)]
	Rho   float64 // density [kg/m³]
}

// Init computes the properties of the mixture with amounts n [kmol/kg] (or relative amounts
// that are normalised to unit mass)
func (o *FrozenMixture) Init(tbl *thermo.Table, n []float64, T, P float64) (err error) {

	// check
	if len(n) != tbl.Ns() {
		return chk.Err("number of amounts must be equal to the number of species. %d != %d", len(n), tbl.Ns())
	}
	mass := floats.Dot(n, tbl.Wt)
	if !(mass > 0) {
		return chk.Err("mixture must have a positive mass. n=%v is invalid", n)
	}

	// thermodynamic data
	skip := make([]bool, len(n))
	for j, nj := range n {
		skip[j] = nj == 0
	}
	cp, h, s, err := tbl.Eval(T, skip)
	if err != nil {
		return
	}

	// sums per unit mass
	nmoles := floats.Sum(n) / mass
	var cpsum, hsum, ssum float64
	for j, nj := range n {
		if nj == 0 {
			continue
		}
		nj /= mass
		cpsum += nj * cp[j]
		hsum += nj * h[j]
		ssum += nj * (s[j] - math.Log(nj/nmoles) - math.Log(P/thermo.Pref))
	}

	// properties
	o.T, o.P = T, P
	o.Wt = 1.0 / nmoles
	o.R = thermo.Ru * nmoles
	o.Cp = thermo.Ru * cpsum
	o.Cv = o.Cp - o.R
	o.Gamma = o.Cp / o.Cv
	o.H = thermo.Ru * T * hsum
	o.S = thermo.Ru * ssum
	o.Rho = 100.0 * P / (o.R * T)
	return
}

// IsentropicRatio returns the pressure ratio P2/P1 of an isentropic process between T1 and T2
// at constant Gamma
func (o *FrozenMixture) IsentropicRatio(T1, T2 float64) float64 {
	return math.Pow(T2/T1, o.Gamma/(o.Gamma-1.0))
}
