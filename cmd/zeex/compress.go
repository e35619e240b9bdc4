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

// compress implements the "c" CLI verb: read input in chunks of
// blockSize and feed them to a [zeex.Writer].
type compress struct {
	inPath    string
	outPath   string
	blockSize int64
	force     bool
}

func (c *compress) Run() error {
	var from io.Reader
	if c.inPath == "-" {
		from = os.Stdin
	} else {
		f, err := os.Open(c.inPath)
		if err != nil {
			return fmt.Errorf("%w: opening input: %w", ErrZeex, err)
		}
		defer f.Close()
		from = f
	}

	flags := os.O_CREATE | os.O_WRONLY
	if !c.force {
		flags |= os.O_EXCL
	}
	dst, err := os.OpenFile(c.outPath, flags, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening output: %w", ErrZeex, err)
	}
	defer dst.Close()

	w, err := zeex.NewWriterSize(dst, c.blockSize)
	if err != nil {
		return fmt.Errorf("%w: creating writer: %w", ErrZeex, err)
	}

	buf := make([]byte, c.blockSize)
	for {
		n, rerr := from.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return fmt.Errorf("%w: compressing: %w", ErrZeex, err)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("%w: reading input: %w", ErrZeex, rerr)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: finalizing: %w", ErrZeex, err)
	}

	return nil
}
