// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"sort"

	"github.com/cpmech/gocea/cea"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func sortedKeys(m map[string]float64) (keys []string) {
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

func getProp(res *cea.Result, key string) (float64, error) {
	p := res.Props
	switch key {
	case "h":
		return p.H, nil
	case "S":
		return p.S, nil
	case "Cp":
		return p.Cp, nil
	case "Cv":
		return p.Cv, nil
	case "gamma":
		return p.Gamma, nil
	case "rho":
		return p.Rho, nil
	case "R":
		return p.R, nil
	case "Cpf":
		return p.CpFrozen, nil
	case "dlnVdlnT":
		return p.DlnVdlnT, nil
	case "dlnVdlnP":
		return p.DlnVdlnP, nil
	}
	return 0, chk.Err("property %q is not available", key)
}
