// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Table holds a read-only set of species and the elements they are made of
type Table struct {
	Elements []string       // element names sorted alphabetically
	Species  []*Species     // all species
	Aij      [][]float64    // [nelements][nspecies] number of atoms of element i in species j
	Wt       []float64      // [nspecies] molecular weights
	eidx     map[string]int // element name => index
	sidx     map[string]int // species name => index
}

// NewTable allocates a table. Elements are collected from the species when none are given
func NewTable(species []*Species, elements ...string) (o *Table, err error) {
	if len(species) == 0 {
		return nil, chk.Err("table needs at least one species")
	}
	o = new(Table)
	o.Species = species
	o.sidx = make(map[string]int)
	for j, sp := range species {
		if err = sp.check(); err != nil {
			return nil, err
		}
		if _, ok := o.sidx[sp.Name]; ok {
			return nil, chk.Err("species %q is repeated", sp.Name)
		}
		o.sidx[sp.Name] = j
	}

	// elements
	if len(elements) == 0 {
		seen := make(map[string]bool)
		for _, sp := range species {
			for el := range sp.Atoms {
				if !seen[el] {
					seen[el] = true
					elements = append(elements, el)
				}
			}
		}
	}
	o.Elements = make([]string, len(elements))
	copy(o.Elements, elements)
	sort.Strings(o.Elements)
	o.eidx = make(map[string]int)
	for i, el := range o.Elements {
		if _, ok := o.eidx[el]; ok {
			return nil, chk.Err("element %q is repeated", el)
		}
		o.eidx[el] = i
	}

	// stoichiometry
	o.Aij = make([][]float64, len(o.Elements))
	for i := range o.Aij {
		o.Aij[i] = make([]float64, len(species))
	}
	o.Wt = make([]float64, len(species))
	for j, sp := range species {
		o.Wt[j] = sp.Wt
		for el, a := range sp.Atoms {
			i, ok := o.eidx[el]
			if !ok {
				return nil, chk.Err("element %q of species %q is not in the list of elements %v", el, sp.Name, o.Elements)
			}
			o.Aij[i][j] = a
		}
	}
	return
}

// Ne returns the number of elements
func (o *Table) Ne() int { return len(o.Elements) }

// Ns returns the number of species
func (o *Table) Ns() int { return len(o.Species) }

// ElementIndex returns the index of an element or -1
func (o *Table) ElementIndex(name string) int {
	if i, ok := o.eidx[name]; ok {
		return i
	}
	return -1
}

// SpeciesIndex returns the index of a species or -1
func (o *Table) SpeciesIndex(name string) int {
	if j, ok := o.sidx[name]; ok {
		return j
	}
	return -1
}

// Eval computes Cp/R, H/RT and S/R of all species at T.
// Species flagged in skip are not evaluated and get NaN
func (o *Table) Eval(T float64, skip []bool) (cp, h, s []float64, err error) {
	ns := len(o.Species)
	cp, h, s = make([]float64, ns), make([]float64, ns), make([]float64, ns)
	for j, sp := range o.Species {
		if skip != nil && skip[j] {
			cp[j], h[j], s[j] = math.NaN(), math.NaN(), math.NaN()
			continue
		}
		cp[j], h[j], s[j], err = sp.Eval(T)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return
}

// Cp0 returns Cp/R of all species
func (o *Table) Cp0(T float64) ([]float64, error) {
	cp, _, _, err := o.Eval(T, nil)
	return cp, err
}

// H0 returns H/RT of all species
func (o *Table) H0(T float64) ([]float64, error) {
	_, h, _, err := o.Eval(T, nil)
	return h, err
}

// S0 returns S/R of all species
func (o *Table) S0(T float64) ([]float64, error) {
	_, _, s, err := o.Eval(T, nil)
	return s, err
}

// B0 computes the element amounts [kmol/kg] of a mixture of reactants given in moles
func (o *Table) B0(reactants map[string]float64) (b0 []float64, err error) {
	n := make([]float64, len(o.Species))
	for name, nj := range reactants {
		j := o.SpeciesIndex(name)
		if j < 0 {
			return nil, chk.Err("reactant %q is not in the table", name)
		}
		if nj < 0 || math.IsNaN(nj) {
			return nil, chk.Err("amount of reactant %q is invalid: %g", name, nj)
		}
		n[j] = nj
	}
	mass := floats.Dot(n, o.Wt)
	if mass <= 0 {
		return nil, chk.Err("reactants must have a positive mass")
	}
	b0 = make([]float64, len(o.Elements))
	for i := range o.Elements {
		b0[i] = floats.Dot(o.Aij[i], n) / mass
	}
	return
}

// MixtureWt returns the molecular weight [kg/kmol] of a mixture with amounts n
func (o *Table) MixtureWt(n []float64) float64 {
	return floats.Dot(n, o.Wt) / floats.Sum(n)
}
