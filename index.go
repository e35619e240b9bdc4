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

// indexSizeFieldLen is the width, in bytes, of the leading index_size
// field.
const indexSizeFieldLen = 4

// entryLen is the width, in bytes, of a single index entry.
const entryLen = 8

// encodeIndex serializes entries as index_size (uint32) followed by
// index_size uint64 entries, in order.
func encodeIndex(entries []uint64) ([]byte, error) {
	if len(entries) > int(^uint32(0)) {
		return nil, fmt.Errorf("%w: index too large: %d entries", errZeex, len(entries))
	}

	buf := make([]byte, indexSizeFieldLen+entryLen*len(entries))
	//nolint:gosec // bounded by the check above.
	binary.LittleEndian.PutUint32(buf[0:indexSizeFieldLen], uint32(len(entries)))
	for i, e := range entries {
		off := indexSizeFieldLen + i*entryLen
		binary.LittleEndian.PutUint64(buf[off:off+entryLen], e)
	}
	return buf, nil
}

// decodeIndexSize reads the leading index_size field from buf.
func decodeIndexSize(buf []byte) (uint32, error) {
	if len(buf) != indexSizeFieldLen {
		return 0, fmt.Errorf("%w: short index size: got %d bytes, want %d", ErrMalformedIndex, len(buf), indexSizeFieldLen)
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// decodeIndexEntries parses exactly n uint64 entries from buf and
// validates them: entries[0] == 0, strictly increasing thereafter, and
// every entry <= cdataLength.
func decodeIndexEntries(buf []byte, n uint32, cdataLength uint64) ([]uint64, error) {
	want := int(n) * entryLen
	if len(buf) != want {
		return nil, fmt.Errorf("%w: short index: got %d bytes, want %d", ErrMalformedIndex, len(buf), want)
	}

	entries := make([]uint64, n)
	for i := range entries {
		off := i * entryLen
		entries[i] = binary.LittleEndian.Uint64(buf[off : off+entryLen])
	}

	if err := validateIndex(entries, cdataLength); err != nil {
		return nil, err
	}

	return entries, nil
}

// validateIndex checks that entries[0] == 0, that entries are strictly
// increasing for k >= 1, and that every entry <= cdataLength.
func validateIndex(entries []uint64, cdataLength uint64) error {
	if len(entries) == 0 {
		return nil
	}

	if entries[0] != 0 {
		return fmt.Errorf("%w: entries[0] = %d, want 0", ErrMalformedIndex, entries[0])
	}

	for i := 1; i < len(entries); i++ {
		if entries[i] <= entries[i-1] {
			return fmt.Errorf("%w: entries[%d] = %d is not greater than entries[%d] = %d",
				ErrMalformedIndex, i, entries[i], i-1, entries[i-1])
		}
	}

	for i, e := range entries {
		if e > cdataLength {
			return fmt.Errorf("%w: entries[%d] = %d exceeds cdata_length %d", ErrMalformedIndex, i, e, cdataLength)
		}
	}

	return nil
}
