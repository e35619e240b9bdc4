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

// Package zeex implements the zeex write-once/read-many container format.
// Zeex chunks an input byte stream into fixed-size blocks, compresses each
// block independently with LZMA, and appends a trailing index of per-block
// compressed offsets so that random reads can locate and decompress only the
// blocks they touch.
//
// A zeex file cannot be appended to or mutated once written: the header is
// written twice, once as an unfinished placeholder and once, at Close, as
// the authoritative header with final sizes. Readers reject files whose
// header is still in the placeholder state.
//
// Unless otherwise informed clients should not assume implementations in
// this package are safe for parallel execution.
package zeex

import (
	"errors"
	"fmt"
)

// errZeex is the base error for all go-zeex errors.
var errZeex = errors.New("zeex")

// Errors returned by the codec. All are checked with [errors.Is] against
// errZeex or the more specific sentinel below.
var (
	// ErrInvalidArgument indicates the caller violated a precondition,
	// such as a zero block size or an unspecified read length.
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", errZeex)

	// ErrUnknownFormat indicates the header magic is neither the
	// finalized nor the unfinished magic value.
	ErrUnknownFormat = fmt.Errorf("%w: unknown format", errZeex)

	// ErrUnfinished indicates the header magic shows the writer never
	// completed. The file is a partial write and cannot be read.
	ErrUnfinished = fmt.Errorf("%w: file is unfinished", errZeex)

	// ErrIncompatibleVersion indicates the header version exceeds the
	// version this codec implements.
	ErrIncompatibleVersion = fmt.Errorf("%w: incompatible version", errZeex)

	// ErrMalformedIndex indicates the trailing index violates one of its
	// invariants (non-monotonic entries, or an entry beyond the
	// compressed data region).
	ErrMalformedIndex = fmt.Errorf("%w: malformed index", errZeex)

	// ErrOutOfBounds indicates a read request escapes [0, data_length).
	// Use [errors.As] with an [*OutOfBoundsError] to recover the failing
	// offset and length.
	ErrOutOfBounds = fmt.Errorf("%w: out of bounds", errZeex)

	// ErrIllegalSeek indicates a seek target is >= data_length.
	ErrIllegalSeek = fmt.Errorf("%w: illegal seek", errZeex)

	// ErrClosed indicates an operation was attempted on a Writer or
	// Reader that has already been closed.
	ErrClosed = fmt.Errorf("%w: use of closed file", errZeex)

	// errOutOfBoundsBlock is the internal-only counterpart to
	// ErrOutOfBounds, translated to it at the Reader surface. It never
	// escapes this package.
	errOutOfBoundsBlock = fmt.Errorf("%w: block index out of bounds", errZeex)
)

// OutOfBoundsError carries the failing offset and section length for an
// [ErrOutOfBounds] failure. Use [errors.As] to recover it.
type OutOfBoundsError struct {
	// Offset is the absolute data offset of the failing section.
	Offset int64
	// Length is the length, in bytes, of the failing section.
	Length int64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("zeex: out of bounds: offset=%d length=%d", e.Offset, e.Length)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// CurrentVersion is the format version implemented by this codec.
const CurrentVersion uint16 = 1

// DefaultBlockSize is the uncompressed block size used when a [Writer] is
// constructed without specifying one explicitly.
const DefaultBlockSize = 20 * 1024 * 1024

// maxCachedBlocks is the default bound on the number of decompressed
// blocks a [Reader] keeps in memory at once.
const maxCachedBlocks = 5
