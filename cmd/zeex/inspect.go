// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/rodaine/table"

	"github.com/ianlewis/go-zeex"
)

// inspect implements the "i" CLI verb: print header and index stats for
// a zeex file without decompressing it.
type inspect struct {
	path string
}

func (i *inspect) Run() error {
	f, err := os.Open(i.path)
	if err != nil {
		return fmt.Errorf("%w: opening file: %w", ErrZeex, err)
	}
	defer f.Close()

	z, err := zeex.NewReader(f)
	if err != nil {
		return fmt.Errorf("%w: reading archive: %w", ErrZeex, err)
	}
	defer z.Close()

	fInfo, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat: %w", ErrZeex, err)
	}

	var ratio float64
	if z.DataLength() > 0 {
		ratio = (1 - float64(z.CompressedLength())/float64(z.DataLength())) * 100
	}

	tbl := table.New("type", "blocks", "block size", "size", "compressed", "ratio", "file size")
	tbl.AddRow(
		"zeex",
		z.BlockCount(),
		z.BlockSize(),
		z.DataLength(),
		z.CompressedLength(),
		fmt.Sprintf("%.1f%%", ratio),
		fInfo.Size(),
	)
	tbl.Print()

	return nil
}
