// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"time"

	"github.com/cpmech/gocea/cea"
	"github.com/cpmech/gocea/inp"
	"github.com/cpmech/gocea/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	log "github.com/sirupsen/logrus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".case", true)
	inifn := io.ArgToString(1, "")
	doprof := io.ArgToInt(2, 0)

	// configuration
	cfg, err := inp.ReadConfig(inifn)
	if err != nil {
		chk.Panic("%v", err)
	}
	if !cfg.Verbose {
		log.SetLevel(log.WarnLevel)
	}

	// message
	if cfg.Verbose {
		io.PfWhite("\nGocea -- chemical equilibrium and properties of reacting gas mixtures\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"case filename path", "fnamepath", fnamepath,
			"configuration file", "inifn", inifn,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// case data
	cas, err := inp.ReadCase(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	prms := cfg.MergeSolver(cas.Solver)
	log.WithFields(log.Fields{
		"case":     cas.Key,
		"backend":  cas.Backend,
		"elements": cas.Table.Elements,
		"b0":       cas.B0,
		"nT":       len(cas.T),
		"nP":       len(cas.P),
	}).Info("case loaded")

	// backend
	be, err := cea.New(cas.Backend, cas.Table, prms)
	if err != nil {
		chk.Panic("%v", err)
	}

	// run sweep
	start := time.Now()
	pts, err := cea.Sweep(context.Background(), be, cas.B0, cas.T, cas.P, cfg.Nworkers)
	if err != nil {
		chk.Panic("sweep failed:\n%v", err)
	}
	res, err := out.NewResults(pts, cas.T, cas.P, cas.Table)
	if err != nil {
		chk.Panic("%v", err)
	}
	maxit := 0
	for _, p := range pts {
		maxit = utl.Imax(maxit, p.State.Nit)
	}
	log.WithFields(log.Fields{
		"npoints":  len(pts),
		"maxNit":   maxit,
		"nworkers": cfg.Nworkers,
		"elapsed":  time.Since(start),
	}).Info("sweep finished")

	// output
	if cfg.Table {
		io.Pf("\n%s", res.Table())
	}
	if cfg.Plot {
		err = res.Draw(cfg.DirOut, cas.Key, nil)
		if err != nil {
			chk.Panic("cannot draw figures:\n%v", err)
		}
		log.WithFields(log.Fields{"dirout": cfg.DirOut, "key": cas.Key}).Info("figures saved")
	}
}
