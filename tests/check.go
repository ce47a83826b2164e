// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to compare backends with reference results
package tests

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/cpmech/gocea/cea"
	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Results holds reference results at one point
type Results struct {
	Note   string             `json:"note"`   // note about the reference
	Db     string             `json:"db"`     // name of species database
	B0     []float64          `json:"b0"`     // element amounts [kmol/kg]
	T      float64            `json:"T"`      // temperature [K]
	P      float64            `json:"P"`      // pressure [bar]
	Nit    int                `json:"nit"`    // number of iterations; 0 means not checked
	N      []float64          `json:"n"`      // [nspecies] amounts [kmol/kg]; may be empty
	X      []float64          `json:"x"`      // [nspecies] mole fractions; may be empty
	Nmoles float64            `json:"nmoles"` // total amount [kmol/kg]; 0 means not checked
	Pi     []float64          `json:"pi"`     // [nelements] Lagrange multipliers; may be empty
	TolPi  float64            `json:"tolpi"`  // tolerance for pi; 0 means tolN
	Props  map[string]float64 `json:"props"`  // properties; e.g. "gamma"
}

// ResultsSet is a set of comparison results
type ResultsSet []*Results

// ReadResults reads a (.cmp) JSON file with reference results
func ReadResults(cmpfname string) (set ResultsSet, err error) {
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		return nil, chk.Err("cannot read comparison file:\n%v", err)
	}
	err = json.Unmarshal(buf, &set)
	if err != nil {
		return nil, chk.Err("cannot unmarshal comparison file %q:\n%v", cmpfname, err)
	}
	return
}

// CompareResults performs comparison of results (backend versus .cmp files)
//  tolN -- tolerance for amounts, mole fractions and multipliers
//  tolP -- tolerance for properties
func CompareResults(tst *testing.T, cmpfname, backend string, prms dbf.Params, tolN, tolP float64, verbose bool) {

	// read file with comparison results
	set, err := ReadResults(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: %v\n", err)
		return
	}

	// backends for each database
	backends := make(map[string]cea.Backend)

	// run comparisons
	for idx, cmp := range set {

		// backend
		be, ok := backends[cmp.Db]
		if !ok {
			tbl, err := thermo.GetDb(cmp.Db)
			if err != nil {
				tst.Errorf("CompareResults: %v\n", err)
				return
			}
			be, err = cea.New(backend, tbl, prms)
			if err != nil {
				tst.Errorf("CompareResults: %v\n", err)
				return
			}
			backends[cmp.Db] = be
		}
		if verbose {
			io.PfYel("\n\nidx = %d: %s @ T=%g P=%g . . . . . . . . . . . . . . . . . . . . . . . . .\n", idx, cmp.Db, cmp.T, cmp.P)
			if cmp.Note != "" {
				io.Pfyel("%s\n", cmp.Note)
			}
		}

		// compute
		res, err := be.Calc(cmp.B0, cmp.T, cmp.P)
		if err != nil {
			tst.Errorf("CompareResults: Calc failed @ idx=%d:\n%v\n", idx, err)
			return
		}

		// check state
		if verbose {
			io.Pfgreen(". . . checking state . . .\n")
		}
		st := res.State
		if cmp.Nit > 0 {
			chk.Int(tst, "Nit", st.Nit, cmp.Nit)
		}
		if len(cmp.N) > 0 {
			chk.Array(tst, "n", tolN, st.N, cmp.N)
		}
		if len(cmp.X) > 0 {
			chk.Array(tst, "x", tolN, st.X(), cmp.X)
		}
		if cmp.Nmoles > 0 {
			chk.AnaNum(tst, "nmoles", tolN, st.Nmoles, cmp.Nmoles, verbose)
		}
		if len(cmp.Pi) > 0 {
			tol := cmp.TolPi
			if tol == 0 {
				tol = tolN
			}
			chk.Array(tst, "pi", tol, st.Pi, cmp.Pi)
		}

		// check properties
		if verbose {
			io.Pfgreen(". . . checking properties . . .\n")
		}
		for _, key := range sortedKeys(cmp.Props) {
			val, err := getProp(res, key)
			if err != nil {
				tst.Errorf("CompareResults: %v\n", err)
				return
			}
			chk.AnaNum(tst, io.Sf("%-8s", key), tolP, val, cmp.Props[key], verbose)
		}
	}
}
