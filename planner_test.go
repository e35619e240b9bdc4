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

func TestPlanSections(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		pos       int64
		length    int64
		blockSize int64
		want      []section
	}{
		{
			name:      "single block, mid read",
			pos:       70,
			length:    10,
			blockSize: 64,
			want: []section{
				{blockIndex: 1, offset: 6, length: 10},
			},
		},
		{
			name:      "spans three blocks",
			pos:       250,
			length:    600,
			blockSize: 300,
			want: []section{
				{blockIndex: 0, offset: 250, length: 50},
				{blockIndex: 1, offset: 0, length: 300},
				{blockIndex: 2, offset: 0, length: 250},
			},
		},
		{
			name:      "exactly one block",
			pos:       0,
			length:    64,
			blockSize: 64,
			want: []section{
				{blockIndex: 0, offset: 0, length: 64},
			},
		},
		{
			name:      "starts exactly at block boundary",
			pos:       128,
			length:    64,
			blockSize: 64,
			want: []section{
				{blockIndex: 2, offset: 0, length: 64},
			},
		},
		{
			name:      "zero length yields no sections",
			pos:       10,
			length:    0,
			blockSize: 64,
			want:      nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := planSections(tc.pos, tc.length, tc.blockSize)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty(), cmp.AllowUnexported(section{})); diff != "" {
				t.Errorf("planSections(%d, %d, %d) (-want, +got):\n%s", tc.pos, tc.length, tc.blockSize, diff)
			}
		})
	}
}

// TestPlanSectionsCoversRange checks that concatenating the planned
// slices over an abstract infinite tiling reproduces the requested byte
// range, and that every slice stays within its block.
func TestPlanSectionsCoversRange(t *testing.T) {
	t.Parallel()

	const blockSize = 17

	for pos := int64(0); pos < 200; pos += 3 {
		for length := int64(1); length < 90; length += 7 {
			sections := planSections(pos, length, blockSize)

			var total int64
			for _, s := range sections {
				if s.offset < 0 || s.offset+s.length > blockSize {
					t.Fatalf("planSections(%d, %d): section %+v escapes block size %d", pos, length, s, blockSize)
				}
				total += s.length
			}
			if total != length {
				t.Fatalf("planSections(%d, %d): total planned length = %d, want %d", pos, length, total, length)
			}
		}
	}
}
