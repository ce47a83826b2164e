// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gopkg.in/ini.v1"
)

// Config holds the configuration of runs read from an (.ini) file
//  [solver]  overrides of solver parameters; e.g. NmaxIt = 100
//  [output]  dirout, plot, table
//  [run]     workers, verbose
type Config struct {
	Solver   dbf.Params // solver parameters from [solver]
	DirOut   string     // directory for output
	Plot     bool       // generate figures
	Table    bool       // print table of results
	Nworkers int        // number of goroutines in sweeps; 0 means one per CPU
	Verbose  bool       // show messages
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.Solver = nil
	o.DirOut = "/tmp/gocea"
	o.Plot = false
	o.Table = true
	o.Nworkers = 0
	o.Verbose = true
}

// ReadConfig reads a configuration file. An empty filename gives the default configuration
func ReadConfig(fn string) (o *Config, err error) {
	o = new(Config)
	o.SetDefault()
	if fn == "" {
		return
	}
	file, err := ini.Load(fn)
	if err != nil {
		return nil, chk.Err("cannot load configuration file %q:\n%v", fn, err)
	}

	// solver
	for _, key := range file.Section("solver").Keys() {
		v, err := key.Float64()
		if err != nil {
			return nil, chk.Err("value of solver parameter %q is invalid:\n%v", key.Name(), err)
		}
		o.Solver = append(o.Solver, &dbf.P{N: key.Name(), V: v})
	}

	// output and run
	out := file.Section("output")
	o.DirOut = out.Key("dirout").MustString(o.DirOut)
	o.Plot = out.Key("plot").MustBool(o.Plot)
	o.Table = out.Key("table").MustBool(o.Table)
	run := file.Section("run")
	o.Nworkers = run.Key("workers").MustInt(o.Nworkers)
	o.Verbose = run.Key("verbose").MustBool(o.Verbose)
	return
}

// MergeSolver returns the case parameters with the overrides of this configuration
func (o *Config) MergeSolver(prms dbf.Params) (res dbf.Params) {
	idx := make(map[string]int)
	for _, p := range prms {
		idx[p.N] = len(res)
		res = append(res, &dbf.P{N: p.N, V: p.V})
	}
	for _, p := range o.Solver {
		if i, ok := idx[p.N]; ok {
			res[i].V = p.V
			continue
		}
		idx[p.N] = len(res)
		res = append(res, &dbf.P{N: p.N, V: p.V})
	}
	return
}
