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
	"fmt"
	"io"
)

// Reader provides random-access reads over a zeex file. It validates the
// header and loads the index eagerly at construction so that random
// access incurs no index I/O afterward.
//
// Reader is not safe for concurrent use; independent Readers over
// independent handles to the same file are safe.
type Reader struct {
	r io.ReadSeeker

	blockSize   int64
	dataLength  int64
	cdataLength int64
	index       []uint64 // len(index) == N, the block count.

	pos   int64
	cache *blockCache

	closed bool
}

// NewReader opens r as a zeex file: it reads and validates the fixed
// header, then seeks to and loads the trailing index.
//
// NewReader rejects a header whose magic is [magicUnfinished] with
// [ErrUnfinished], any other unrecognized magic with [ErrUnknownFormat],
// and a version newer than [CurrentVersion] with [ErrIncompatibleVersion].
func NewReader(r io.ReadSeeker) (*Reader, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seeking to header: %w", errZeex, err)
	}

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", errZeex, err)
	}

	h, err := decodeHeader(buf)
	if err != nil {
		return nil, err
	}

	switch h.state() {
	case stateUnfinished:
		return nil, ErrUnfinished
	case stateForeign:
		return nil, fmt.Errorf("%w: magic %q", ErrUnknownFormat, h.magic[:])
	}

	if h.version > CurrentVersion {
		return nil, fmt.Errorf("%w: file version %d, codec supports up to %d", ErrIncompatibleVersion, h.version, CurrentVersion)
	}

	indexOffset := int64(headerSize) + int64(h.cdataLength)
	if _, err := r.Seek(indexOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seeking to index: %w", errZeex, err)
	}

	sizeBuf := make([]byte, indexSizeFieldLen)
	if _, err := io.ReadFull(r, sizeBuf); err != nil {
		return nil, fmt.Errorf("%w: reading index size: %w", ErrMalformedIndex, err)
	}
	n, err := decodeIndexSize(sizeBuf)
	if err != nil {
		return nil, err
	}

	entryBuf := make([]byte, int(n)*entryLen)
	if _, err := io.ReadFull(r, entryBuf); err != nil {
		return nil, fmt.Errorf("%w: reading index entries: %w", ErrMalformedIndex, err)
	}
	entries, err := decodeIndexEntries(entryBuf, n, h.cdataLength)
	if err != nil {
		return nil, err
	}

	return &Reader{
		r:           r,
		blockSize:   int64(h.blockSize),
		dataLength:  int64(h.dataLength),
		cdataLength: int64(h.cdataLength),
		index:       entries,
		cache:       newBlockCache(maxCachedBlocks),
	}, nil
}

// BlockSize returns the file's uncompressed block size.
func (z *Reader) BlockSize() int64 { return z.blockSize }

// DataLength returns the total uncompressed payload length.
func (z *Reader) DataLength() int64 { return z.dataLength }

// CompressedLength returns the size of the compressed data region.
func (z *Reader) CompressedLength() int64 { return z.cdataLength }

// BlockCount returns N, the number of compressed blocks.
func (z *Reader) BlockCount() int { return len(z.index) }

// Read returns the next length bytes starting at the current cursor and
// advances the cursor by length. length is mandatory: there is no "read
// all" shortcut, since the format targets files where a default full
// read would likely be a bug.
//
// A request that escapes [0, DataLength()) fails with [ErrOutOfBounds];
// use [errors.As] with an [*OutOfBoundsError] to recover the failing
// offset and length.
func (z *Reader) Read(length int64) ([]byte, error) {
	if z.closed {
		return nil, ErrClosed
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: read length must be > 0, got %d", ErrInvalidArgument, length)
	}

	sections := planSections(z.pos, length, z.blockSize)

	out := make([]byte, 0, length)
	for _, s := range sections {
		sectionOffset := s.blockIndex*z.blockSize + s.offset
		block, err := z.fetchBlock(s.blockIndex)
		if err != nil {
			if errIsOutOfBoundsBlock(err) {
				return nil, &OutOfBoundsError{Offset: sectionOffset, Length: s.length}
			}
			return nil, err
		}
		if s.offset+s.length > int64(len(block)) {
			return nil, &OutOfBoundsError{Offset: sectionOffset, Length: s.length}
		}
		out = append(out, block[s.offset:s.offset+s.length]...)
	}

	if int64(len(out)) != length {
		return nil, &OutOfBoundsError{Offset: z.pos, Length: length}
	}

	z.pos += length
	return out, nil
}

// fetchBlock returns the decompressed bytes of block: a cache lookup,
// then locate-seek-read-decompress on a miss.
func (z *Reader) fetchBlock(block int64) ([]byte, error) {
	if data, ok := z.cache.get(block); ok {
		return data, nil
	}

	n := int64(len(z.index))
	if block < 0 || block >= n {
		return nil, errOutOfBoundsBlock
	}

	start := int64(z.index[block])
	var end int64
	if block+1 < n {
		end = int64(z.index[block+1])
	} else {
		end = z.cdataLength
	}

	if _, err := z.r.Seek(int64(headerSize)+start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seeking to block %d: %w", errZeex, block, err)
	}

	compressed := make([]byte, end-start)
	if _, err := io.ReadFull(z.r, compressed); err != nil {
		return nil, fmt.Errorf("%w: reading block %d: %w", errZeex, block, err)
	}

	data, err := decompressBlock(compressed)
	if err != nil {
		return nil, err
	}

	z.cache.put(block, data)
	return data, nil
}

func errIsOutOfBoundsBlock(err error) bool {
	return err == errOutOfBoundsBlock
}

// Seek sets the read cursor to pos. pos must be strictly less than
// DataLength(); pos == DataLength() is not itself seekable, so callers
// detect end-of-file by comparing against DataLength directly.
func (z *Reader) Seek(pos int64) error {
	if z.closed {
		return ErrClosed
	}
	if pos < 0 || pos >= z.dataLength {
		return fmt.Errorf("%w: pos %d, data length %d", ErrIllegalSeek, pos, z.dataLength)
	}
	z.pos = pos
	return nil
}

// Tell returns the current cursor position.
func (z *Reader) Tell() int64 {
	return z.pos
}

// Close releases the Reader. It does not close the underlying
// [io.ReadSeeker].
func (z *Reader) Close() error {
	z.closed = true
	return nil
}
