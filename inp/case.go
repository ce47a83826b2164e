// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.case) JSON files and (.ini) configuration files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// RangeData defines npts equally spaced values in [min, max]
type RangeData struct {
	Min  float64 `json:"min"`  // first value
	Max  float64 `json:"max"`  // last value
	Npts int     `json:"npts"` // number of values
}

// Values returns the values in the range
func (o *RangeData) Values() ([]float64, error) {
	if o.Npts < 1 {
		return nil, chk.Err("range must have at least one point. npts=%d is invalid", o.Npts)
	}
	if o.Npts == 1 {
		return []float64{o.Min}, nil
	}
	return utl.LinSpace(o.Min, o.Max, o.Npts), nil
}

// Case holds the data of one computation: mixture and grid of temperatures and pressures
type Case struct {

	// input
	Desc      string             `json:"desc"`      // description
	Data      string             `json:"data"`      // name of built-in species database; e.g. "co2_co_o2"
	DataFile  string             `json:"datafile"`  // species file (.thr) relative to the case file; overrides Data
	Backend   string             `json:"backend"`   // name of backend; default is "cea"
	Reactants map[string]float64 `json:"reactants"` // moles of reactant species; e.g. {"CO2":1}
	B0        []float64          `json:"b0"`        // element amounts [kmol/kg]; overrides Reactants
	T         []float64          `json:"T"`         // temperatures [K]
	Trange    *RangeData         `json:"trange"`    // temperatures [K] as a range; overrides T
	P         []float64          `json:"P"`         // pressures [bar]
	Prange    *RangeData         `json:"prange"`    // pressures [bar] as a range; overrides P
	Solver    dbf.Params         `json:"solver"`    // solver parameters; e.g. [{"n":"NmaxIt", "v":50}]

	// derived
	Key   string        // filename key; e.g. "co2" from "co2.case"
	Dir   string        // directory of case file
	Table *thermo.Table // species table
}

// ReadCase reads a (.case) JSON file
func ReadCase(casefilepath string) (o *Case, err error) {

	// read file
	b, err := os.ReadFile(casefilepath)
	if err != nil {
		return nil, chk.Err("cannot read case file %q:\n%v", casefilepath, err)
	}

	// decode
	o = new(Case)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal case file %q:\n%v", casefilepath, err)
	}
	o.Dir = os.ExpandEnv(filepath.Dir(casefilepath))
	o.Key = io.FnKey(filepath.Base(casefilepath))
	err = o.PostProcess()
	return
}

// PostProcess sets default values, loads the species table and computes derived data
func (o *Case) PostProcess() (err error) {

	// backend
	if o.Backend == "" {
		o.Backend = "cea"
	}

	// species table
	switch {
	case o.DataFile != "":
		o.Table, err = thermo.ReadTable(o.Dir, o.DataFile)
	case o.Data != "":
		o.Table, err = thermo.GetDb(o.Data)
	default:
		err = chk.Err("either 'data' or 'datafile' must be given")
	}
	if err != nil {
		return
	}

	// composition
	if len(o.B0) == 0 {
		if len(o.Reactants) == 0 {
			return chk.Err("either 'b0' or 'reactants' must be given")
		}
		o.B0, err = o.Table.B0(o.Reactants)
		if err != nil {
			return
		}
	}
	if len(o.B0) != o.Table.Ne() {
		return chk.Err("'b0' must have %d values corresponding to elements %v", o.Table.Ne(), o.Table.Elements)
	}

	// grid
	if o.Trange != nil {
		if o.T, err = o.Trange.Values(); err != nil {
			return
		}
	}
	if o.Prange != nil {
		if o.P, err = o.Prange.Values(); err != nil {
			return
		}
	}
	if len(o.T) == 0 || len(o.P) == 0 {
		return chk.Err("at least one temperature and one pressure must be given")
	}
	return
}
