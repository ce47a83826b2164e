// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
)

// Table returns a table with properties and mole fractions of all points
func (o *Results) Table() string {

	// header
	nsp := len(o.Species)
	width := 45 + (6+nsp)*14
	l := strings.Repeat("=", width) + "\n"
	l += io.Sf("%9s%9s%9s%5s%13s", "T", "P", "Nit", "", "nmoles")
	l += io.Sf("%14s%14s%14s%14s%14s%14s", "h", "S", "Cp", "gamma", "rho", "R")
	for _, name := range o.Species {
		l += io.Sf("%14s", "x("+name+")")
	}
	l += "\n" + strings.Repeat("-", width) + "\n"

	// rows
	for _, p := range o.Pts {
		s, q := p.State, p.Props
		l += io.Sf("%9g%9g%9d%5s%13.6e", p.T, p.P, s.Nit, "", s.Nmoles)
		l += io.Sf("%14.6e%14.6e%14.6e%14.8f%14.6e%14.6e", q.H, q.S, q.Cp, q.Gamma, q.Rho, q.R)
		for j := 0; j < nsp; j++ {
			l += io.Sf("%14.6e", s.N[j]/s.Nmoles)
		}
		l += "\n"
	}
	l += strings.Repeat("=", width) + "\n"
	return l
}
