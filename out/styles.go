// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []plt.A

var (
	colors  = []string{"k", "r", "b", "g", "m", "c", "#ff7f00", "#984ea3"}
	markers = []string{"o", "s", "^", "v", "d", "*", "+", "x"}
)

// GetDefaultStyles returns one style per pressure
func GetDefaultStyles(Ps []float64) Styles {
	sty := make([]plt.A, len(Ps))
	for i, P := range Ps {
		sty[i].C = colors[i%len(colors)]
		sty[i].M = markers[i%len(markers)]
		sty[i].Ls = "-"
		sty[i].L = io.Sf("P=%g", P)
	}
	return sty
}

// GetTexLabel returns the label of a property key in TeX notation
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "h":
		l += "h"
	case "S":
		l += "S"
	case "Cp":
		l += "c_p"
	case "Cv":
		l += "c_v"
	case "Cpf":
		l += "c_{p,f}"
	case "gamma":
		l += "\\gamma_s"
	case "gammaf":
		l += "\\gamma_f"
	case "rho":
		l += "\\rho"
	case "dlnVdlnT":
		l += "(\\partial\\ln V/\\partial\\ln T)_P"
	case "dlnVdlnP":
		l += "(\\partial\\ln V/\\partial\\ln P)_T"
	case "nmoles":
		l += "n"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}

// GetUnit returns the unit of a property key in TeX notation
func GetUnit(key string) string {
	switch key {
	case "T":
		return "[K]"
	case "P":
		return "[bar]"
	case "h":
		return "[kJ/kg]"
	case "S", "Cp", "Cv", "Cpf", "R":
		return "[kJ/(kg\\,K)]"
	case "rho":
		return "[kg/m^3]"
	case "nmoles":
		return "[kmol/kg]"
	}
	return ""
}
