// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gocea/chemeq"
	"github.com/cpmech/gocea/linsol"
	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// evaluate runs the complete sequence: equilibrium, sensitivity system and properties
func evaluate(tbl *thermo.Table, b0 []float64, T, P float64) (sys *System, p *Props, err error) {
	s := chemeq.NewSettings()
	st, err := chemeq.Solve(tbl, b0, T, P, s)
	if err != nil {
		return
	}
	sys, err = BuildSystem(tbl, st.N, st.Nmoles, T, s.Trace, st.Absent)
	if err != nil {
		return
	}
	x, err := linsol.Solve(sys.A, s.CondMax, sys.RhsT, sys.RhsP)
	if err != nil {
		return
	}
	p, err = Calc(tbl, st.N, st.Nmoles, T, P, x[0], x[1], s.Trace, st.Absent)
	return
}

func getdb(tst *testing.T, name string) *thermo.Table {
	tbl, err := thermo.GetDb(name)
	if err != nil {
		tst.Fatalf("cannot get database: %v\n", err)
	}
	return tbl
}

var b0co2 = []float64{0.02272211, 0.04544422}

func Test_props01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props01. CO2 dissociation at 4000 K")

	tbl := getdb(tst, "co2_co_o2")
	sys, p, err := evaluate(tbl, b0co2, 4000, 1.034210)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// system
	io.Pforan("A =\n%v\n", mat.Formatted(sys.A))
	chk.Deep2(tst, "A", 1e-12, denseToSlices(sys.A), [][]float64{
		{0.02272211000017485, 0.02502568989186597, 0.02272211000017485},
		{0.02502568989186597, 0.07046990989704201, 0.04544422000276287},
		{0.02272211000017485, 0.04544422000276287, 0.0},
	})
	if !mat.EqualApprox(sys.A, sys.A.T(), 1e-17) {
		tst.Errorf("A must be symmetric\n")
		return
	}
	chk.Array(tst, "rhsT", 1e-12, sys.RhsT, []float64{-0.00023474685138816058, -0.07324446927394547, -0.04290417354193172})
	chk.Array(tst, "rhsP", 1e-12, sys.RhsP, []float64{0.02272211000017485, 0.04544422000276287, 0.032931375055623296})

	// properties
	io.Pforan("%+v\n", p)
	chk.Float64(tst, "gamma   ", 1e-8, p.Gamma, 1.19054697)
	chk.Float64(tst, "gamma   ", 1e-10, p.Gamma, 1.1905469677890304)
	chk.Float64(tst, "Cp      ", 1e-9, p.Cp, 2.42072328856215)
	chk.Float64(tst, "Cv      ", 1e-9, p.Cv, 2.0028755065410175)
	chk.Float64(tst, "CpFrozen", 1e-9, p.CpFrozen, 1.341134224623845)
	chk.Float64(tst, "h       ", 1e-7, p.H, 1426.9167123108691)
	chk.Float64(tst, "S       ", 1e-9, p.S, 9.868864486485418)
	chk.Float64(tst, "rho     ", 1e-12, p.Rho, 0.09442778090850654)
	chk.Float64(tst, "R       ", 1e-12, p.R, 0.27380978088484154)
	chk.Float64(tst, "dlnVdlnT", 1e-9, p.DlnVdlnT, 1.2446776795359216)
	chk.Float64(tst, "dlnVdlnP", 1e-9, p.DlnVdlnP, -1.0151837549939406)
}

func Test_props02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props02. equation of state and monotonic enthalpy")

	tbl := getdb(tst, "co2_co_o2")
	for _, P := range []float64{0.1, 1, 10} {
		hprev := math.Inf(-1)
		for _, T := range []float64{1000, 2000, 3000, 4000, 5000, 6000} {
			_, p, err := evaluate(tbl, b0co2, T, P)
			if err != nil {
				tst.Errorf("test failed: %v\n", err)
				return
			}
			chk.Float64(tst, io.Sf("ρRT/100 @ T=%g P=%g", T, P), 1e-12, p.Rho*p.R*T/100.0, P)
			if p.H <= hprev {
				tst.Errorf("enthalpy must increase with temperature: h(%g)=%g <= %g\n", T, p.H, hprev)
				return
			}
			if p.Cp < p.CpFrozen-1e-9 {
				tst.Errorf("equilibrium Cp must not be smaller than frozen Cp: %g < %g\n", p.Cp, p.CpFrozen)
				return
			}
			hprev = p.H
		}
	}
}

func Test_props03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props03. derivatives")

	tbl := getdb(tst, "co2_co_o2")
	P := 1.034210
	for _, T := range []float64{2500, 4000} {
		_, p, err := evaluate(tbl, b0co2, T, P)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}

		// Cp = dh/dT and dlnV/dlnT = -dlnρ/dlnT at constant P
		var ferr error
		fT := func(get func(*Props) float64) func(float64) float64 {
			return func(x float64) float64 {
				_, q, e := evaluate(tbl, b0co2, x, P)
				if e != nil {
					ferr = e
					return math.NaN()
				}
				return get(q)
			}
		}
		set := &fd.Settings{Formula: fd.Central, Step: 1e-3 * T}
		dhdT := fd.Derivative(fT(func(q *Props) float64 { return q.H }), T, set)
		dlnρdT := fd.Derivative(fT(func(q *Props) float64 { return math.Log(q.Rho) }), T, set)
		if ferr != nil {
			tst.Errorf("test failed: %v\n", ferr)
			return
		}
		chk.AnaNum(tst, io.Sf("Cp @ %gK", T), 1e-4, p.Cp, dhdT, chk.Verbose)
		chk.AnaNum(tst, io.Sf("dlnV/dlnT @ %gK", T), 1e-5, p.DlnVdlnT, -T*dlnρdT, chk.Verbose)

		// dlnV/dlnP = -dlnρ/dlnP at constant T
		dlnρdP := fd.Derivative(func(x float64) float64 {
			_, q, e := evaluate(tbl, b0co2, T, x)
			if e != nil {
				ferr = e
				return math.NaN()
			}
			return math.Log(q.Rho)
		}, P, &fd.Settings{Formula: fd.Central, Step: 1e-3 * P})
		if ferr != nil {
			tst.Errorf("test failed: %v\n", ferr)
			return
		}
		chk.AnaNum(tst, io.Sf("dlnV/dlnP @ %gK", T), 1e-5, p.DlnVdlnP, -P*dlnρdP, chk.Verbose)
	}
}

func Test_props04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props04. frozen limits")

	// dissociation is suppressed by pressure: gamma approaches the frozen ratio
	tbl := getdb(tst, "co2_co_o2")
	prev := math.Inf(1)
	for _, P := range []float64{1, 100, 1e4} {
		_, p, err := evaluate(tbl, b0co2, 1500, P)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		diff := math.Abs(p.Gamma - p.GammaFrozen())
		io.Pforan("P=%g: gamma=%.8f frozen=%.8f diff=%g\n", P, p.Gamma, p.GammaFrozen(), diff)
		if diff >= prev {
			tst.Errorf("difference to frozen ratio must decrease with pressure: %g >= %g\n", diff, prev)
			return
		}
		prev = diff
	}
	if prev > 2e-4 {
		tst.Errorf("gamma should be close to the frozen ratio at high pressure. diff=%g\n", prev)
	}

	// inert gas: equilibrium and frozen properties coincide
	tbl = getdb(tst, "n2")
	b0 := []float64{2.0 / 28.0134}
	for k, T := range []float64{300, 1000, 3000} {
		_, p, err := evaluate(tbl, b0, T, 1)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("gamma @ %gK", T), 1e-9, p.Gamma, []float64{1.3995309470330537, 1.341011135162167, 1.289575197934765}[k])
		chk.Float64(tst, "gamma-frozen", 1e-9, p.Gamma, p.GammaFrozen())
		chk.Float64(tst, "Cp-CpFrozen ", 1e-9, p.Cp, p.CpFrozen)
		chk.Float64(tst, "dlnVdlnT", 1e-9, p.DlnVdlnT, 1)
		chk.Float64(tst, "dlnVdlnP", 1e-9, p.DlnVdlnP, -1)
	}
}

func Test_props05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props05. failures")

	tbl := getdb(tst, "co2_co_o2")
	n := []float64{0.020418530108483726, 0.002303579891691122, 0.010209265055448448}
	nmoles := 0.032931375055623296
	xT := []float64{1.7467046764063776, -1.8174586192047273, 0.24467767953592148}
	xP := []float64{0.48310324252370673, 0.48310324252949516, -0.015183754993940705}

	// reference
	p, err := Calc(tbl, n, nmoles, 4000, 1.034210, xT, xP, 1e-10, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "gamma", 1e-9, p.Gamma, 1.1905469677890304)

	// non-finite inputs
	check := func(name string, n, xT, xP []float64) {
		_, err := Calc(tbl, n, nmoles, 4000, 1.034210, xT, xP, 1e-10, nil)
		var e *PropertyComputationError
		if !errors.As(err, &e) {
			tst.Errorf("%s: PropertyComputationError should have been returned. err=%v\n", name, err)
			return
		}
		io.Pforan("%v\n", err)
	}
	check("n", []float64{math.NaN(), n[1], n[2]}, xT, xP)
	check("xT", n, []float64{xT[0], xT[1], math.Inf(1)}, xP)
	check("xP", n, xT, []float64{xP[0], xP[1], math.NaN()})

	// zero volume derivative gives infinite Cv
	check("dlnVdlnP", n, xT, []float64{xP[0], xP[1], 1})

	// wrong sizes
	if _, err = Calc(tbl, n[:2], nmoles, 4000, 1, xT, xP, 1e-10, nil); err == nil {
		tst.Errorf("wrong size of n should have failed\n")
		return
	}

	// temperature outside the table
	_, err = BuildSystem(tbl, n, nmoles, 50, 1e-10, nil)
	var e *thermo.OutOfRangeError
	if !errors.As(err, &e) {
		tst.Errorf("OutOfRangeError should have been returned. err=%v\n", err)
	}
}

func Test_props06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props06. properties per unit mass")

	tbl := getdb(tst, "co2_co_o2")
	n := []float64{0.020418530108483726, 0.002303579891691122, 0.010209265055448448}
	nmoles := 0.032931375055623296
	xT := []float64{1.7467046764063776, -1.8174586192047273, 0.24467767953592148}
	xP := []float64{0.48310324252370673, 0.48310324252949516, -0.015183754993940705}
	p, err := Calc(tbl, n, nmoles, 4000, 1.034210, xT, xP, 1e-10, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// b0 of this state is not exactly per unit mass
	mass := 0.0
	for j := range n {
		mass += n[j] * tbl.Wt[j]
	}
	io.Pforan("mass = %v\n", mass)
	chk.Float64(tst, "R", 1e-15, p.R, thermo.Ru*nmoles/mass)
	chk.Float64(tst, "ρRT/100", 1e-12, p.Rho*p.R*4000/100.0, 1.034210)

	// the amounts of any multiple of the mixture give the same properties
	for _, α := range []float64{0.5, 2, 1000} {
		m := make([]float64, len(n))
		for j := range n {
			m[j] = α * n[j]
		}
		q, err := Calc(tbl, m, α*nmoles, 4000, 1.034210, xT, xP, 1e-10, nil)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		msg := io.Sf(" @ α=%g", α)
		chk.Float64(tst, "h  "+msg, 1e-9, q.H, p.H)
		chk.Float64(tst, "S  "+msg, 1e-12, q.S, p.S)
		chk.Float64(tst, "Cp "+msg, 1e-12, q.Cp, p.Cp)
		chk.Float64(tst, "Cv "+msg, 1e-12, q.Cv, p.Cv)
		chk.Float64(tst, "Cpf"+msg, 1e-12, q.CpFrozen, p.CpFrozen)
		chk.Float64(tst, "γ  "+msg, 1e-12, q.Gamma, p.Gamma)
		chk.Float64(tst, "ρ  "+msg, 1e-14, q.Rho, p.Rho)
		chk.Float64(tst, "R  "+msg, 1e-14, q.R, p.R)
	}

	// zero mass
	if _, err = Calc(tbl, []float64{0, 0, 0}, nmoles, 4000, 1, xT, xP, 1e-10, nil); err == nil {
		tst.Errorf("zero mass should have failed\n")
		return
	}

	// first offending input is reported in the order n, xT, xP
	for k := 0; k < 20; k++ {
		_, err = Calc(tbl, n, nmoles, 4000, 1, []float64{math.NaN(), 0, 0}, []float64{0, 0, math.Inf(1)}, 1e-10, nil)
		var e *PropertyComputationError
		if !errors.As(err, &e) {
			tst.Errorf("PropertyComputationError should have been returned. err=%v\n", err)
			return
		}
		chk.String(tst, e.Name, "xT[0]")
	}
}

func denseToSlices(a *mat.Dense) (res [][]float64) {
	r, c := a.Dims()
	res = make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return
}
