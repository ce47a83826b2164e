// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of sweeps: series of results, tables and plots
package out

import (
	"github.com/cpmech/gocea/cea"
	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
)

// Results holds the points of a sweep over the grid Ps × Ts
type Results struct {
	Ts      []float64    // temperatures [K]
	Ps      []float64    // pressures [bar]
	Species []string     // names of species
	Pts     []*cea.Point // [len(Ps)*len(Ts)] points with T varying fastest
}

// NewResults collects the points returned by cea.Sweep
func NewResults(pts []*cea.Point, Ts, Ps []float64, tbl *thermo.Table) (o *Results, err error) {
	if len(pts) != len(Ts)*len(Ps) {
		return nil, chk.Err("number of points (%d) must be equal to %d×%d", len(pts), len(Ps), len(Ts))
	}
	for k, p := range pts {
		if p == nil || p.Result == nil {
			return nil, chk.Err("point %d has no results", k)
		}
	}
	o = &Results{Ts: Ts, Ps: Ps, Pts: pts}
	for _, sp := range tbl.Species {
		o.Species = append(o.Species, sp.Name)
	}
	return
}

// At returns the point at (Ts[iT], Ps[iP])
func (o *Results) At(iT, iP int) *cea.Point {
	return o.Pts[iP*len(o.Ts)+iT]
}

// Keys returns the keys of properties available to GetRes. Species names give mole fractions
func (o *Results) Keys() (keys []string) {
	keys = []string{"T", "P", "h", "S", "Cp", "Cv", "gamma", "rho", "R", "Cpf", "gammaf", "dlnVdlnT", "dlnVdlnP", "nmoles", "Nit"}
	return append(keys, o.Species...)
}

// GetRes returns the series of values along the temperatures at pressure Ps[iP]
func (o *Results) GetRes(key string, iP int) (res []float64, err error) {
	if iP < 0 || iP >= len(o.Ps) {
		return nil, chk.Err("index of pressure %d is out of range", iP)
	}
	get, err := o.getter(key)
	if err != nil {
		return
	}
	res = make([]float64, len(o.Ts))
	for i := range o.Ts {
		res[i] = get(o.At(i, iP))
	}
	return
}

// getter returns a function that extracts one value from a point
func (o *Results) getter(key string) (func(p *cea.Point) float64, error) {
	switch key {
	case "T":
		return func(p *cea.Point) float64 { return p.T }, nil
	case "P":
		return func(p *cea.Point) float64 { return p.P }, nil
	case "h":
		return func(p *cea.Point) float64 { return p.Props.H }, nil
	case "S":
		return func(p *cea.Point) float64 { return p.Props.S }, nil
	case "Cp":
		return func(p *cea.Point) float64 { return p.Props.Cp }, nil
	case "Cv":
		return func(p *cea.Point) float64 { return p.Props.Cv }, nil
	case "gamma":
		return func(p *cea.Point) float64 { return p.Props.Gamma }, nil
	case "rho":
		return func(p *cea.Point) float64 { return p.Props.Rho }, nil
	case "R":
		return func(p *cea.Point) float64 { return p.Props.R }, nil
	case "Cpf":
		return func(p *cea.Point) float64 { return p.Props.CpFrozen }, nil
	case "gammaf":
		return func(p *cea.Point) float64 { return p.Props.GammaFrozen() }, nil
	case "dlnVdlnT":
		return func(p *cea.Point) float64 { return p.Props.DlnVdlnT }, nil
	case "dlnVdlnP":
		return func(p *cea.Point) float64 { return p.Props.DlnVdlnP }, nil
	case "nmoles":
		return func(p *cea.Point) float64 { return p.State.Nmoles }, nil
	case "Nit":
		return func(p *cea.Point) float64 { return float64(p.State.Nit) }, nil
	}
	for j, name := range o.Species {
		if name == key {
			return func(p *cea.Point) float64 { return p.State.N[j] / p.State.Nmoles }, nil
		}
	}
	return nil, chk.Err("key %q is not available. keys = %v", key, o.Keys())
}
