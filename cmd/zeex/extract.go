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

	"github.com/ianlewis/go-zeex"
)

// extract implements the "x" CLI verb: like decompress, but bounded by
// [start, end) and always written to stdout.
type extract struct {
	inPath string
	start  int64
	end    int64
}

func (x *extract) Run() error {
	if x.end < x.start {
		return fmt.Errorf("%w: end %d is before start %d", ErrFlagParse, x.end, x.start)
	}

	from, err := os.Open(x.inPath)
	if err != nil {
		return fmt.Errorf("%w: opening input: %w", ErrZeex, err)
	}
	defer from.Close()

	z, err := zeex.NewReader(from)
	if err != nil {
		return fmt.Errorf("%w: reading archive: %w", ErrZeex, err)
	}
	defer z.Close()

	return copyRange(os.Stdout, z, x.start, x.end)
}
