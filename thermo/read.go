// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// TableData holds the contents of a .thr (JSON) species file
type TableData struct {
	Elements []string   `json:"elements"` // optional list of elements
	Species  []*Species `json:"species"`  // species data
}

// ReadTable reads a species table from a .thr JSON file
func ReadTable(dir, fn string) (tbl *Table, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read species file %q:\n%v", fn, err)
	}
	return DecodeTable(b)
}

// DecodeTable decodes species data in JSON format
func DecodeTable(b []byte) (tbl *Table, err error) {
	var dat TableData
	err = json.Unmarshal(b, &dat)
	if err != nil {
		return nil, chk.Err("cannot unmarshal species data:\n%v", err)
	}
	return NewTable(dat.Species, dat.Elements...)
}
