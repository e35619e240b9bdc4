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
	"io"
	"os"

	"github.com/ianlewis/go-zeex"
)

// decompress implements the "d" CLI verb: decompress a whole zeex file
// to outPath, or to stdout if outPath is empty.
type decompress struct {
	inPath  string
	outPath string
	force   bool
}

func (d *decompress) Run() error {
	from, err := os.Open(d.inPath)
	if err != nil {
		return fmt.Errorf("%w: opening input: %w", ErrZeex, err)
	}
	defer from.Close()

	var to io.Writer
	if d.outPath == "" {
		to = os.Stdout
	} else {
		flags := os.O_CREATE | os.O_WRONLY
		if !d.force {
			flags |= os.O_EXCL
		}
		dst, err := os.OpenFile(d.outPath, flags, 0o644)
		if err != nil {
			return fmt.Errorf("%w: opening output: %w", ErrZeex, err)
		}
		defer dst.Close()
		to = dst
	}

	z, err := zeex.NewReader(from)
	if err != nil {
		return fmt.Errorf("%w: reading archive: %w", ErrZeex, err)
	}
	defer z.Close()

	return copyRange(to, z, 0, z.DataLength())
}

// copyRange writes [start, end) of z to w, reading in blockSize-sized
// steps so each Read returns at most one block's worth of bytes.
func copyRange(w io.Writer, z *zeex.Reader, start, end int64) error {
	if start == end {
		return nil
	}

	if err := z.Seek(start); err != nil {
		return fmt.Errorf("%w: seeking: %w", ErrZeex, err)
	}

	blockSize := z.BlockSize()
	total := start
	for total < end {
		step := blockSize
		if end-total < step {
			step = end - total
		}

		data, err := z.Read(step)
		if err != nil {
			return fmt.Errorf("%w: reading: %w", ErrZeex, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%w: writing output: %w", ErrZeex, err)
		}

		total += step
	}

	return nil
}
