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
	"strings"
	"testing"
)

func TestCompressDecompressBlockRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "short", data: []byte("hello, zeex")},
		{name: "repeated", data: bytes.Repeat([]byte{0xAA}, 1<<20)},
		{name: "text", data: []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 1000))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			compressed, err := compressBlock(tc.data)
			if err != nil {
				t.Fatalf("compressBlock: %v", err)
			}

			got, err := decompressBlock(compressed)
			if err != nil {
				t.Fatalf("decompressBlock: %v", err)
			}

			if !bytes.Equal(got, tc.data) {
				t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(tc.data))
			}
		})
	}
}

func TestDecompressBlockInvalidFrame(t *testing.T) {
	t.Parallel()

	if _, err := decompressBlock([]byte("not an lzma frame")); err == nil {
		t.Error("decompressBlock(garbage): got nil error, want error")
	}
}
