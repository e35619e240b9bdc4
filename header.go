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

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the fixed on-disk size of a zeex header, in bytes.
const headerSize = 4 + 2 + 8 + 8 + 8

var (
	// magicFinalized marks a header written by a Writer that completed
	// Close successfully.
	magicFinalized = [4]byte{'Z', 'E', 'E', 'X'}

	// magicUnfinished marks the placeholder header a Writer writes at
	// construction time, before any sizes are known.
	magicUnfinished = [4]byte{'Z', 'Z', 'X', 'X'}
)

// headerState classifies a decoded header's magic value.
type headerState int

const (
	// stateForeign means the magic matched neither known value.
	stateForeign headerState = iota
	// stateUnfinished means the writer that produced this file never
	// reached Close.
	stateUnfinished
	// stateFinalized means the header carries authoritative sizes.
	stateFinalized
)

// header is the fixed-layout zeex file header. It is pure data: encoding
// and decoding never perform I/O.
type header struct {
	magic       [4]byte
	version     uint16
	blockSize   uint64
	dataLength  uint64
	cdataLength uint64
}

// state classifies h.magic.
func (h *header) state() headerState {
	switch h.magic {
	case magicFinalized:
		return stateFinalized
	case magicUnfinished:
		return stateUnfinished
	default:
		return stateForeign
	}
}

// encode serializes h into its fixed 30-byte on-disk representation.
func (h *header) encode() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], h.magic[:])
	binary.LittleEndian.PutUint16(buf[4:6], h.version)
	binary.LittleEndian.PutUint64(buf[6:14], h.blockSize)
	binary.LittleEndian.PutUint64(buf[14:22], h.dataLength)
	binary.LittleEndian.PutUint64(buf[22:30], h.cdataLength)
	return buf
}

// decodeHeader parses a fixed 30-byte header. It performs no I/O and
// applies only the constraints the codec can check without access to the
// surrounding file's actual size: a zero block size in a finalized
// header is rejected outright, since block_size must always be > 0 once
// a file is complete. A cdata_length that disagrees with the observed
// file size is the caller's responsibility to check (it requires
// knowing the file size, which this pure decoder does not have).
func decodeHeader(buf []byte) (*header, error) {
	if len(buf) != headerSize {
		return nil, fmt.Errorf("%w: short header: got %d bytes, want %d", errZeex, len(buf), headerSize)
	}

	h := &header{
		version:     binary.LittleEndian.Uint16(buf[4:6]),
		blockSize:   binary.LittleEndian.Uint64(buf[6:14]),
		dataLength:  binary.LittleEndian.Uint64(buf[14:22]),
		cdataLength: binary.LittleEndian.Uint64(buf[22:30]),
	}
	copy(h.magic[:], buf[0:4])

	if h.state() == stateFinalized && h.blockSize == 0 {
		return nil, fmt.Errorf("%w: block size is zero", errZeex)
	}

	return h, nil
}
