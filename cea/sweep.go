// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cea

import (
	"context"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/io"
)

// Point holds the result at one (T, P) point of a sweep
type Point struct {
	T, P float64 // temperature [K] and pressure [bar]
	*Result
}

// SweepError indicates the first point of a sweep that failed
type SweepError struct {
	T, P float64 // failed point
	Err  error   // cause
}

func (o *SweepError) Error() string {
	return io.Sf("sweep failed at T=%g, P=%g:\n%v", o.T, o.P, o.Err)
}

// Unwrap returns the cause
func (o *SweepError) Unwrap() error { return o.Err }

// Sweep evaluates a backend on the grid Ps × Ts using nworkers goroutines.
// Points are returned with T varying fastest; nworkers ≤ 0 means one per CPU
func Sweep(ctx context.Context, be Backend, b0, Ts, Ps []float64, nworkers int) (pts []*Point, err error) {

	// grid
	npts := len(Ts) * len(Ps)
	pts = make([]*Point, npts)
	for i, P := range Ps {
		for j, T := range Ts {
			pts[i*len(Ts)+j] = &Point{T: T, P: P}
		}
	}
	if npts == 0 {
		return
	}

	// workers
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}
	if nworkers > npts {
		nworkers = npts
	}
	var wg sync.WaitGroup
	errs := make([]error, npts)
	jobs := make(chan int)
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				pts[k].Result, errs[k] = be.Calc(b0, pts[k].T, pts[k].P)
			}
		}()
	}

	// dispatch
	var cerr error
dispatch:
	for k := 0; k < npts; k++ {
		if cerr = ctx.Err(); cerr != nil {
			break
		}
		select {
		case <-ctx.Done():
			cerr = ctx.Err()
			break dispatch
		case jobs <- k:
		}
	}
	close(jobs)
	wg.Wait()

	// first failure in grid order
	if cerr != nil {
		return nil, cerr
	}
	for k, e := range errs {
		if e != nil {
			return nil, &SweepError{pts[k].T, pts[k].P, e}
		}
	}
	return
}
