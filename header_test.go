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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	h := &header{
		magic:       magicFinalized,
		version:     1,
		blockSize:   64,
		dataLength:  128,
		cdataLength: 90,
	}

	got, err := decodeHeader(h.encode())
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}

	if diff := cmp.Diff(h, got, cmpopts.EquateComparable(header{})); diff != "" {
		t.Errorf("decodeHeader (-want, +got):\n%s", diff)
	}
}

func TestHeaderEncodeSize(t *testing.T) {
	t.Parallel()

	h := &header{magic: magicFinalized, version: 1}
	if got, want := len(h.encode()), 30; got != want {
		t.Errorf("len(encode()) = %d, want %d", got, want)
	}
}

func TestHeaderState(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		magic [4]byte
		want  headerState
	}{
		{name: "finalized", magic: magicFinalized, want: stateFinalized},
		{name: "unfinished", magic: magicUnfinished, want: stateUnfinished},
		{name: "foreign", magic: [4]byte{'z', 'i', 'p', '1'}, want: stateForeign},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := &header{magic: tc.magic}
			if got := h.state(); got != tc.want {
				t.Errorf("state() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecodeHeaderShort(t *testing.T) {
	t.Parallel()

	if _, err := decodeHeader(make([]byte, 10)); err == nil {
		t.Error("decodeHeader(short buffer): got nil error, want error")
	}
}

func TestDecodeHeaderFinalizedZeroBlockSize(t *testing.T) {
	t.Parallel()

	h := &header{magic: magicFinalized, version: 1}
	if _, err := decodeHeader(h.encode()); err == nil {
		t.Error("decodeHeader(zero block size): got nil error, want error")
	}
}
