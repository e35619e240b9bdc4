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

// Writer implements [io.WriteCloser] for writing zeex files. Writer
// accumulates bytes in an internal queue, compresses complete blocks as
// they fill, and writes a placeholder header immediately so that a
// reader opening the file mid-write sees the unfinished-file signal.
//
// [Writer.Close] must be called to produce a readable file: it flushes
// the residual tail block, writes the index, and rewrites the header with
// final sizes. Close is the only backward seek the Writer performs.
type Writer struct {
	w         io.WriteSeeker
	blockSize int64

	// queue holds bytes written but not yet compressed into a full
	// block. Appending to it is amortized O(1).
	queue []byte

	// index holds the running compressed-offset index, starting with
	// the mandatory entries[0] = 0.
	index []uint64

	// lastOffset is the compressed-region-relative offset of the most
	// recently completed block's end, i.e. index[len(index)-1].
	lastOffset uint64

	closed bool
}

// NewWriter initializes a Writer bound to w, using [DefaultBlockSize].
func NewWriter(w io.WriteSeeker) (*Writer, error) {
	return NewWriterSize(w, DefaultBlockSize)
}

// NewWriterSize initializes a Writer bound to w with the given uncompressed
// block size. blockSize must be > 0.
//
// NewWriterSize writes the unfinished placeholder header immediately.
func NewWriterSize(w io.WriteSeeker, blockSize int64) (*Writer, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: block size must be > 0, got %d", ErrInvalidArgument, blockSize)
	}

	z := &Writer{
		w:         w,
		blockSize: blockSize,
		index:     []uint64{0},
	}

	ph := &header{
		magic:   magicUnfinished,
		version: CurrentVersion,
	}
	if _, err := z.w.Write(ph.encode()); err != nil {
		return nil, fmt.Errorf("%w: writing placeholder header: %w", errZeex, err)
	}

	return z, nil
}

// Write appends p to the internal queue and compresses off as many
// complete blocks as the queue now holds. It returns once all
// completable blocks have been emitted.
func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}

	z.queue = append(z.queue, p...)
	for int64(len(z.queue)) >= z.blockSize {
		block := z.queue[:z.blockSize]
		z.queue = z.queue[z.blockSize:]
		if err := z.flushBlock(block); err != nil {
			return len(p), err
		}
	}

	return len(p), nil
}

// flushBlock compresses block, writes the resulting frame, and records the
// new cumulative compressed offset as the next index entry.
func (z *Writer) flushBlock(block []byte) error {
	compressed, err := compressBlock(block)
	if err != nil {
		return err
	}

	if _, err := z.w.Write(compressed); err != nil {
		return fmt.Errorf("%w: writing block: %w", errZeex, err)
	}

	z.lastOffset += uint64(len(compressed))
	z.index = append(z.index, z.lastOffset)
	return nil
}

// Close compresses the residual queue (possibly empty), writes it, writes
// the index, and rewrites the header with final sizes and the finalized
// magic.
//
// Calling Close more than once returns [ErrClosed].
func (z *Writer) Close() error {
	if z.closed {
		return ErrClosed
	}
	z.closed = true

	residual := z.queue
	z.queue = nil

	compressed, err := compressBlock(residual)
	if err != nil {
		return err
	}
	if _, err := z.w.Write(compressed); err != nil {
		return fmt.Errorf("%w: writing final block: %w", errZeex, err)
	}
	cdataLength := z.lastOffset + uint64(len(compressed))

	indexBytes, err := encodeIndex(z.index)
	if err != nil {
		return err
	}
	if _, err := z.w.Write(indexBytes); err != nil {
		return fmt.Errorf("%w: writing index: %w", errZeex, err)
	}

	dataLength := uint64(len(z.index)-1)*uint64(z.blockSize) + uint64(len(residual))

	h := &header{
		magic:       magicFinalized,
		version:     CurrentVersion,
		blockSize:   uint64(z.blockSize),
		dataLength:  dataLength,
		cdataLength: cdataLength,
	}

	if _, err := z.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seeking to header: %w", errZeex, err)
	}
	if _, err := z.w.Write(h.encode()); err != nil {
		return fmt.Errorf("%w: writing final header: %w", errZeex, err)
	}

	return nil
}
