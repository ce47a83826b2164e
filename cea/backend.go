// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cea assembles the equilibrium solver, the sensitivity system and the property
// calculator into backends that compute the properties of reacting gas mixtures
package cea

import (
	"sort"

	"github.com/cpmech/gocea/chemeq"
	"github.com/cpmech/gocea/props"
	"github.com/cpmech/gocea/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Result holds the equilibrium state and the properties at (b0, T, P)
type Result struct {
	State *chemeq.State // composition
	Props *props.Props  // properties
}

// Backend defines the interface of property backends
type Backend interface {
	Calc(b0 []float64, T, P float64) (*Result, error) // computes the state and properties at (b0, T, P)
	Table() *thermo.Table                             // returns the species table
}

// New returns a new backend
func New(name string, tbl *thermo.Table, prms dbf.Params) (Backend, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("backend %q is not available in 'cea' database", name)
	}
	if tbl == nil {
		return nil, chk.Err("backend %q needs a species table", name)
	}
	return allocator(tbl, prms)
}

// Names returns the names of the available backends
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available backends
var allocators = map[string]func(tbl *thermo.Table, prms dbf.Params) (Backend, error){}
