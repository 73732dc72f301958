// Copyright 2026 Ian Lewis
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

package folding

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

// TestNewlineFolder tests NewlineFolder.Transform.
func TestNewlineFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "unix",
			input:    "hoge|1\n-|foo\n",
			expected: "hoge|1\n-|foo\n",
		},
		{
			name:     "windows",
			input:    "hoge|1\r\n-|foo\r\n",
			expected: "hoge|1\n-|foo\n",
		},
		{
			name:     "mac",
			input:    "hoge|1\r-|foo\r",
			expected: "hoge|1\n-|foo\n",
		},
		{
			name:     "mixed",
			input:    "hoge|1\r\n\r-|foo\n\r\n",
			expected: "hoge|1\n\n-|foo\n\n",
		},
		{
			name:     "multi-byte",
			input:    "fotografía|1\r\n-|foto\r\n",
			expected: "fotografía|1\n-|foto\n",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&NewlineFolder{}, test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("transform.String (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestNewlineFolder_shortSrc tests that a trailing '\r' is held until more
// input is available.
func TestNewlineFolder_shortSrc(t *testing.T) {
	t.Parallel()

	var f NewlineFolder
	dst := make([]byte, 16)

	nDst, nSrc, err := f.Transform(dst, []byte("foo\r"), false)
	if !errors.Is(err, transform.ErrShortSrc) {
		t.Fatalf("Transform: want: %v, got: %v", transform.ErrShortSrc, err)
	}
	if nDst != 3 || nSrc != 3 {
		t.Fatalf("Transform: want: (3, 3), got: (%d, %d)", nDst, nSrc)
	}

	nDst, nSrc, err = f.Transform(dst, []byte("\r\nbar"), true)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if diff := cmp.Diff("\nbar", string(dst[:nDst])); diff != "" {
		t.Errorf("Transform (-want, +got):\n%s", diff)
	}
	if nSrc != 5 {
		t.Errorf("Transform: nSrc want: 5, got: %d", nSrc)
	}
}

// TestNewlineFolder_shortDst tests that the folder stops when dst is full.
func TestNewlineFolder_shortDst(t *testing.T) {
	t.Parallel()

	var f NewlineFolder
	dst := make([]byte, 2)

	nDst, nSrc, err := f.Transform(dst, []byte("a\r\nb"), true)
	if !errors.Is(err, transform.ErrShortDst) {
		t.Fatalf("Transform: want: %v, got: %v", transform.ErrShortDst, err)
	}
	if nDst != 2 || nSrc != 3 {
		t.Fatalf("Transform: want: (2, 3), got: (%d, %d)", nDst, nSrc)
	}
}
