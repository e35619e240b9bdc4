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
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// ErrCodec wraps a failure from the underlying LZMA codec.
var ErrCodec = fmt.Errorf("%w: codec error", errZeex)

// compressBlock LZMA-compresses a single block of uncompressed bytes into
// a self-describing LZMA frame. It is the write-side half of the
// external codec seam this package treats as opaque.
func compressBlock(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: creating lzma writer: %w", ErrCodec, err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: compressing block: %w", ErrCodec, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing lzma writer: %w", ErrCodec, err)
	}
	return buf.Bytes(), nil
}

// decompressBlock LZMA-decompresses a single compressed frame back into
// its original block bytes. It is the read-side half of the external
// codec seam.
func decompressBlock(data []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: creating lzma reader: %w", ErrCodec, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing block: %w", ErrCodec, err)
	}
	return out, nil
}
