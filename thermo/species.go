// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements NASA 9-coefficient species thermodynamic data
package thermo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
const (
	Ru   = 8.314462618 // universal gas constant [kJ/(kmol K)]
	Pref = 1.01325     // reference pressure of the polynomials [bar]
)

// Segment holds the polynomial coefficients valid within [Tmin, Tmax]
//  Cp/R = a1/T² + a2/T + a3 + a4 T + a5 T² + a6 T³ + a7 T⁴
//  H/RT = -a1/T² + a2 ln(T)/T + a3 + a4 T/2 + a5 T²/3 + a6 T³/4 + a7 T⁴/5 + b1/T
//  S/R  = -a1/(2T²) - a2/T + a3 ln(T) + a4 T + a5 T²/2 + a6 T³/3 + a7 T⁴/4 + b2
type Segment struct {
	Tmin   float64    `json:"tmin"`   // lower temperature limit [K]
	Tmax   float64    `json:"tmax"`   // upper temperature limit [K]
	Coeffs [9]float64 `json:"coeffs"` // a1..a7, b1, b2
}

// Cp returns Cp/R
func (o *Segment) Cp(T float64) float64 {
	a := &o.Coeffs
	return a[0]/(T*T) + a[1]/T + a[2] + T*(a[3]+T*(a[4]+T*(a[5]+T*a[6])))
}

// H returns H/(RT)
func (o *Segment) H(T float64) float64 {
	a := &o.Coeffs
	return -a[0]/(T*T) + a[1]*math.Log(T)/T + a[2] + T*(a[3]/2.0+T*(a[4]/3.0+T*(a[5]/4.0+T*a[6]/5.0))) + a[7]/T
}

// S returns S/R
func (o *Segment) S(T float64) float64 {
	a := &o.Coeffs
	return -a[0]/(2.0*T*T) - a[1]/T + a[2]*math.Log(T) + T*(a[3]+T*(a[4]/2.0+T*(a[5]/3.0+T*a[6]/4.0))) + a[8]
}

// Species holds the data of one gaseous species
type Species struct {
	Name     string             `json:"name"`     // e.g. "CO2"
	Wt       float64            `json:"wt"`       // molecular weight [kg/kmol]
	Atoms    map[string]float64 `json:"atoms"`    // number of atoms of each element; e.g. {"C":1, "O":2}
	Segments []*Segment         `json:"segments"` // temperature segments in increasing order
}

// OutOfRangeError indicates that T is not covered by any segment of a species
type OutOfRangeError struct {
	Species    string
	T          float64
	Tmin, Tmax float64
}

func (o *OutOfRangeError) Error() string {
	return io.Sf("temperature T=%g is outside the range [%g, %g] of species %q", o.T, o.Tmin, o.Tmax, o.Species)
}

// Segment finds the segment containing T; shared boundaries belong to the lower segment
func (o *Species) Segment(T float64) (*Segment, error) {
	for _, s := range o.Segments {
		if T >= s.Tmin && T <= s.Tmax {
			return s, nil
		}
	}
	return nil, &OutOfRangeError{o.Name, T, o.Tmin(), o.Tmax()}
}

// Tmin returns the lowest temperature covered by the data
func (o *Species) Tmin() float64 {
	if len(o.Segments) == 0 {
		return math.NaN()
	}
	return o.Segments[0].Tmin
}

// Tmax returns the highest temperature covered by the data
func (o *Species) Tmax() float64 {
	if len(o.Segments) == 0 {
		return math.NaN()
	}
	return o.Segments[len(o.Segments)-1].Tmax
}

// Eval computes Cp/R, H/RT and S/R at T
func (o *Species) Eval(T float64) (cp, h, s float64, err error) {
	seg, err := o.Segment(T)
	if err != nil {
		return
	}
	return seg.Cp(T), seg.H(T), seg.S(T), nil
}

// check validates the species data
func (o *Species) check() error {
	if o.Name == "" {
		return chk.Err("species name must not be empty")
	}
	if o.Wt <= 0 {
		return chk.Err("molecular weight of %q must be positive. Wt=%g is invalid", o.Name, o.Wt)
	}
	if len(o.Atoms) == 0 {
		return chk.Err("species %q must contain at least one element", o.Name)
	}
	for el, a := range o.Atoms {
		if a < 0 {
			return chk.Err("number of %q atoms in species %q must not be negative", el, o.Name)
		}
	}
	if len(o.Segments) == 0 {
		return chk.Err("species %q has no temperature segments", o.Name)
	}
	for i, s := range o.Segments {
		if s.Tmin <= 0 || s.Tmax <= s.Tmin {
			return chk.Err("segment %d of species %q has invalid range [%g, %g]", i, o.Name, s.Tmin, s.Tmax)
		}
		if i > 0 && s.Tmin != o.Segments[i-1].Tmax {
			return chk.Err("segments of species %q are not contiguous: %g != %g", o.Name, s.Tmin, o.Segments[i-1].Tmax)
		}
	}
	return nil
}
