// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gocea/cea"
	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_frozen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frozen01. nitrogen")

	tbl, err := thermo.GetDb("n2")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	be, err := cea.New("cea", tbl, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// relative amounts are normalised
	var mix FrozenMixture
	err = mix.Init(tbl, []float64{1}, 300, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("N2 @ 300K: %+v\n", mix)
	chk.Float64(tst, "Wt   ", 1e-12, mix.Wt, 28.0134)
	chk.Float64(tst, "R    ", 1e-12, mix.R, thermo.Ru/28.0134)
	chk.Float64(tst, "gamma", 1e-3, mix.Gamma, 1.4)
	chk.Float64(tst, "ρRT  ", 1e-12, mix.Rho*mix.R*mix.T, 100)

	// equilibrium of an inert gas is the frozen mixture
	b0 := []float64{2.0 / 28.0134}
	for _, T := range []float64{300, 1000, 3000} {
		for _, P := range []float64{0.1, 10} {
			res, err := be.Calc(b0, T, P)
			if err != nil {
				tst.Errorf("test failed: %v\n", err)
				return
			}
			err = mix.Init(tbl, res.State.N, T, P)
			if err != nil {
				tst.Errorf("test failed: %v\n", err)
				return
			}
			msg := io.Sf(" @ T=%g P=%g", T, P)
			chk.Float64(tst, "Cp"+msg, 1e-12, res.Props.Cp, mix.Cp)
			chk.Float64(tst, "Cv"+msg, 1e-12, res.Props.Cv, mix.Cv)
			chk.Float64(tst, "γ "+msg, 1e-12, res.Props.Gamma, mix.Gamma)
			chk.Float64(tst, "h "+msg, 1e-9, res.Props.H, mix.H)
			chk.Float64(tst, "S "+msg, 1e-12, res.Props.S, mix.S)
			chk.Float64(tst, "ρ "+msg, 1e-12, res.Props.Rho, mix.Rho)
		}
	}

	// isentropic compression
	err = mix.Init(tbl, []float64{1}, 300, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "P2/P1", 1e-12, mix.IsentropicRatio(300, 600), math.Pow(2, mix.Gamma/(mix.Gamma-1)))
}

func Test_frozen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frozen02. carbon dioxide at low temperature")

	tbl, err := thermo.GetDb("co2_co_o2")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	be, err := cea.New("cea", tbl, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	var mix FrozenMixture
	err = mix.Init(tbl, []float64{0, 1, 0}, 300, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	b0, _ := tbl.B0(map[string]float64{"CO2": 1})
	res, err := be.Calc(b0, 300, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("frozen: Cp=%g γ=%g\n", mix.Cp, mix.Gamma)
	io.Pforan("equil.: Cp=%g γ=%g\n", res.Props.Cp, res.Props.Gamma)
	chk.Float64(tst, "Cp ", 1e-4, res.Props.Cp, mix.Cp)
	chk.Float64(tst, "γ  ", 1e-4, res.Props.Gamma, mix.Gamma)
	chk.Float64(tst, "h  ", 1e-3, res.Props.H, mix.H)
	chk.Float64(tst, "Cpf", 1e-6, res.Props.CpFrozen, mix.Cp)

	// errors
	if err = mix.Init(tbl, []float64{1, 1}, 300, 1); err == nil {
		tst.Errorf("wrong number of amounts should have failed\n")
		return
	}
	if err = mix.Init(tbl, []float64{0, 0, 0}, 300, 1); err == nil {
		tst.Errorf("zero mass should have failed\n")
		return
	}
	if err = mix.Init(tbl, []float64{0, 1, 0}, 100, 1); err == nil {
		tst.Errorf("temperature outside table should have failed\n")
	}
}
