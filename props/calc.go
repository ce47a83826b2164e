// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"math"

	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Props holds the properties of the equilibrium mixture per unit mass. Amounts are normalised
// by the mixture mass Σ n_j⋅Wt_j
type Props struct {
	H        float64 // enthalpy [kJ/kg]
	S        float64 // entropy [kJ/(kg K)]
	Cp       float64 // equilibrium specific heat at constant pressure [kJ/(kg K)]
	Cv       float64 // equilibrium specific heat at constant volume [kJ/(kg K)]
	Gamma    float64 // isentropic exponent -(Cp/Cv)/(∂lnV/∂lnP)
	Rho      float64 // density [kg/m³]
	R        float64 // gas constant [kJ/(kg K)]
	CpFrozen float64 // specific heat at fixed composition [kJ/(kg K)]
	DlnVdlnT float64 // (∂lnV/∂lnT) at constant P
	DlnVdlnP float64 // (∂lnV/∂lnP) at constant T
}

// PropertyComputationError indicates a non-finite input or result
type PropertyComputationError struct {
	Name  string  // quantity
	Value float64 // offending value
	T, P  float64 // state
}

func (o *PropertyComputationError) Error() string {
	return io.Sf("%s is not finite (%g) at T=%g, P=%g", o.Name, o.Value, o.T, o.P)
}

// Calc computes the properties of the equilibrium mixture
//  n      -- [ns] species amounts [kmol/kg]
//  nmoles -- Σ n
//  T, P   -- temperature [K] and pressure [bar]
//  xT, xP -- [ne+1] solutions of the sensitivity system
//  trace  -- trace fraction used to build the sensitivity system
//  absent -- species that cannot be formed; may be nil
func Calc(tbl *thermo.Table, n []float64, nmoles, T, P float64, xT, xP []float64, trace float64, absent []bool) (o *Props, err error) {

	// check input
	ne, ns := tbl.Ne(), tbl.Ns()
	if len(n) != ns || len(xT) != ne+1 || len(xP) != ne+1 {
		return nil, chk.Err("sizes are incorrect: len(n)=%d (ns=%d), len(xT)=%d, len(xP)=%d (ne+1=%d)", len(n), ns, len(xT), len(xP), ne+1)
	}
	if err = finite(T, P, "nmoles", nmoles); err != nil {
		return
	}
	for _, v := range []struct {
		name string
		vals []float64
	}{
		{"n", n}, {"xT", xT}, {"xP", xP},
	} {
		for k, val := range v.vals {
			if err = finite(T, P, io.Sf("%s[%d]", v.name, k), val); err != nil {
				return
			}
		}
	}
	mass := floats.Dot(n, tbl.Wt)
	if !(mass > 0) {
		return nil, chk.Err("mixture mass Σ n_j⋅Wt_j must be positive. mass=%g is invalid", mass)
	}

	// thermodynamic data
	cp, h, s, err := tbl.Eval(T, absent)
	if err != nil {
		return
	}
	w := weights(n, nmoles, trace, h)

	// sums
	var cpf, hsum, ssum, wh, whh float64
	lnp := math.Log(P / thermo.Pref)
	awh := make([]float64, ne)
	for j := 0; j < ns; j++ {
		if w[j] == 0 {
			continue
		}
		cpf += n[j] * cp[j]
		hsum += n[j] * h[j]
		if n[j] > 0 {
			ssum += n[j] * (s[j] - math.Log(n[j]/nmoles) - lnp)
		}
		wh += w[j] * h[j]
		whh += w[j] * h[j] * h[j]
		for i := 0; i < ne; i++ {
			awh[i] += tbl.Aij[i][j] * w[j] * h[j]
		}
	}

	// derivatives of volume
	o = new(Props)
	o.DlnVdlnT = 1 + xT[ne]
	o.DlnVdlnP = -1 + xP[ne]

	// specific heats
	cpr := cpf + wh*xT[ne] + whh
	for i := 0; i < ne; i++ {
		cpr += awh[i] * xT[i]
	}
	o.R = thermo.Ru * nmoles / mass
	o.CpFrozen = thermo.Ru * cpf / mass
	o.Cp = thermo.Ru * cpr / mass
	o.Cv = o.Cp + o.R*o.DlnVdlnT*o.DlnVdlnT/o.DlnVdlnP
	o.Gamma = -(o.Cp / o.Cv) / o.DlnVdlnP

	// other properties
	o.H = thermo.Ru * T * hsum / mass
	o.S = thermo.Ru * ssum / mass
	o.Rho = 100.0 * P / (o.R * T)

	// check results
	for _, r := range []struct {
		name string
		val  float64
	}{
		{"h", o.H}, {"S", o.S}, {"Cp", o.Cp}, {"Cv", o.Cv}, {"gamma", o.Gamma},
		{"rho", o.Rho}, {"R", o.R}, {"dlnV/dlnT", o.DlnVdlnT}, {"dlnV/dlnP", o.DlnVdlnP},
	} {
		if err = finite(T, P, r.name, r.val); err != nil {
			return nil, err
		}
	}
	return
}

// CvFrozen returns the specific heat at constant volume and fixed composition [kJ/(kg K)]
func (o *Props) CvFrozen() float64 {
	return o.CpFrozen - o.R
}

// GammaFrozen returns the ratio of frozen specific heats
func (o *Props) GammaFrozen() float64 {
	return o.CpFrozen / o.CvFrozen()
}

// finite returns a PropertyComputationError if v is NaN or Inf
func finite(T, P float64, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &PropertyComputationError{name, v, T, P}
	}
	return nil
}
