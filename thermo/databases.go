// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "github.com/cpmech/gosl/chk"

// GetDb returns a new table from the built-in databases
//  Note: a fresh table is allocated at each call
func GetDb(name string) (*Table, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("database %q is not available in 'thermo' package", name)
	}
	return allocator()
}

// DbNames returns the names of the built-in databases
func DbNames() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all available databases
var allocators = map[string]func() (*Table, error){
	"co2_co_o2": func() (*Table, error) { return NewTable([]*Species{spCO(), spCO2(), spO2()}) },
	"o2_o":      func() (*Table, error) { return NewTable([]*Species{spO2(), spO()}) },
	"n2":        func() (*Table, error) { return NewTable([]*Species{spN2()}) },
}

// NASA Glenn coefficients (McBride, Zehe and Gordon, NASA/TP-2002-211556)

func spCO() *Species {
	return &Species{
		Name:  "CO",
		Wt:    28.0101,
		Atoms: map[string]float64{"C": 1, "O": 1},
		Segments: []*Segment{
			{200, 1000, [9]float64{1.489045326e+04, -2.922285939e+02, 5.724527170e+00, -8.176235030e-03, 1.456903469e-05, -1.087746302e-08, 3.027941827e-12, -1.303131878e+04, -7.859241350e+00}},
			{1000, 6000, [9]float64{4.619197250e+05, -1.944704863e+03, 5.916714180e+00, -5.664282830e-04, 1.398814540e-07, -1.787680361e-11, 9.620935570e-16, -2.466261084e+03, -1.387413108e+01}},
			{6000, 20000, [9]float64{8.868662960e+08, -7.500377840e+05, 2.495474979e+02, -3.956351100e-02, 3.297772080e-06, -1.318409933e-10, 1.998937948e-15, 5.701421130e+06, -2.060704786e+03}},
		},
	}
}

func spCO2() *Species {
	return &Species{
		Name:  "CO2",
		Wt:    44.0095,
		Atoms: map[string]float64{"C": 1, "O": 2},
		Segments: []*Segment{
			{200, 1000, [9]float64{4.943650540e+04, -6.264116010e+02, 5.301725240e+00, 2.503813816e-03, -2.127308728e-07, -7.689988780e-10, 2.849677801e-13, -4.528198460e+04, -7.048279440e+00}},
			{1000, 6000, [9]float64{1.176962419e+05, -1.788791477e+03, 8.291523190e+00, -9.223156780e-05, 4.863676880e-09, -1.891053312e-12, 6.330036590e-16, -3.908350590e+04, -2.652669281e+01}},
			{6000, 20000, [9]float64{-1.544423287e+09, 1.016847056e+06, -2.561405230e+02, 3.369401080e-02, -2.181184337e-06, 6.991420840e-11, -8.842351500e-16, -8.043214510e+06, 2.254177493e+03}},
		},
	}
}

func spO2() *Species {
	return &Species{
		Name:  "O2",
		Wt:    31.9988,
		Atoms: map[string]float64{"O": 2},
		Segments: []*Segment{
			{200, 1000, [9]float64{-3.425563420e+04, 4.847000970e+02, 1.119010961e+00, 4.293889240e-03, -6.836300520e-07, -2.023372700e-09, 1.039040018e-12, -3.391454870e+03, 1.849699470e+01}},
			{1000, 6000, [9]float64{-1.037939022e+06, 2.344830282e+03, 1.819732036e+00, 1.267847582e-03, -2.188067988e-07, 2.053719572e-11, -8.193467050e-16, -1.689010929e+04, 1.738716506e+01}},
			{6000, 20000, [9]float64{4.975294300e+08, -2.866106874e+05, 6.690352250e+01, -6.169959020e-03, 3.016396027e-07, -4.213860080e-12, -3.343520030e-17, 2.293986780e+06, -5.530621610e+02}},
		},
	}
}

func spO() *Species {
	return &Species{
		Name:  "O",
		Wt:    15.9994,
		Atoms: map[string]float64{"O": 1},
		Segments: []*Segment{
			{200, 1000, [9]float64{-7.953611300e+03, 1.607177787e+02, 1.966226438e+00, 1.013670310e-03, -1.110415423e-06, 6.517507500e-10, -1.584779251e-13, 2.840362437e+04, 8.404241820e+00}},
			{1000, 6000, [9]float64{2.619020262e+05, -7.298722030e+02, 3.317177270e+00, -4.281334360e-04, 1.036104594e-07, -9.438304330e-12, 2.725038297e-16, 3.392428060e+04, -6.679585350e-01}},
		},
	}
}

func spN2() *Species {
	return &Species{
		Name:  "N2",
		Wt:    28.0134,
		Atoms: map[string]float64{"N": 2},
		Segments: []*Segment{
			{200, 1000, [9]float64{2.210371497e+04, -3.818461820e+02, 6.082738360e+00, -8.530914410e-03, 1.384646189e-05, -9.625793620e-09, 2.519705809e-12, 7.108460860e+02, -1.076003744e+01}},
			{1000, 6000, [9]float64{5.877124060e+05, -2.239249073e+03, 6.066949220e+00, -6.139685500e-04, 1.491806679e-07, -1.923105485e-11, 1.061954386e-15, 1.283210415e+04, -1.586640027e+01}},
		},
	}
}
