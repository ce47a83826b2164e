// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// DefaultPlotKeys holds the properties plotted by Draw when none are given
var DefaultPlotKeys = []string{"gamma", "Cp", "h", "rho"}

// Draw saves one figure with mole fractions and one figure with properties versus temperature
//  dirout -- directory to save figures
//  fnkey  -- key of filenames; e.g. "co2" gives co2_x and co2_props
//  keys   -- properties to plot; nil means DefaultPlotKeys
func (o *Results) Draw(dirout, fnkey string, keys []string) (err error) {

	// styles
	if len(keys) == 0 {
		keys = DefaultPlotKeys
	}
	sty := GetDefaultStyles(o.Ps)
	T, err := o.GetRes("T", 0)
	if err != nil {
		return
	}

	// mole fractions
	plt.Reset(false, nil)
	nr, nc := utl.BestSquare(len(o.Ps))
	for i, P := range o.Ps {
		plt.Subplot(nr, nc, i+1)
		for j, name := range o.Species {
			x, err := o.GetRes(name, i)
			if err != nil {
				return err
			}
			plt.Plot(T, x, &plt.A{C: colors[j%len(colors)], M: markers[j%len(markers)], Ls: "-", L: name})
		}
		plt.Gll(GetTexLabel("T", GetUnit("T")), io.Sf("$x$ @ $P=%g$", P), nil)
	}
	plt.Save(dirout, fnkey+"_x")

	// properties
	plt.Reset(false, nil)
	nr, nc = utl.BestSquare(len(keys))
	for k, key := range keys {
		plt.Subplot(nr, nc, k+1)
		for i := range o.Ps {
			y, err := o.GetRes(key, i)
			if err != nil {
				return err
			}
			plt.Plot(T, y, &sty[i])
		}
		plt.Gll(GetTexLabel("T", GetUnit("T")), GetTexLabel(key, GetUnit(key)), nil)
	}
	plt.Save(dirout, fnkey+"_props")
	return
}
