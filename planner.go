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

package zeex

// section describes a contiguous slice of one block: read length bytes
// starting at offset within block blockIndex.
type section struct {
	blockIndex int64
	offset     int64
	length     int64
}

// planSections splits the absolute range [pos, pos+length) into an
// ordered sequence of per-block sections. It is a pure function: it
// never consults data_length or the index, so it cannot itself detect
// an out-of-range read; that is the block fetcher's job.
//
// Each section runs to the end of its block before advancing to the
// next block's start, `(block+1)*blockSize`.
func planSections(pos, length, blockSize int64) []section {
	if length <= 0 {
		return nil
	}

	var sections []section
	tpos := pos
	var total int64
	for total < length {
		block := tpos / blockSize
		offset := tpos % blockSize
		sectionSize := blockSize - offset
		if total+sectionSize > length {
			sectionSize = length - total
		}

		sections = append(sections, section{
			blockIndex: block,
			offset:     offset,
			length:     sectionSize,
		})

		total += sectionSize
		tpos = (block + 1) * blockSize
	}

	return sections
}
