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

// Package folding implements text transformers applied to thesaurus data as
// it is loaded.
package folding

import (
	"golang.org/x/text/transform"
)

// NewlineFolder folds line endings in the input. Windows ("\r\n") and classic
// Mac ("\r") line endings are replaced with a single "\n".
type NewlineFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (*NewlineFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		c := src[nSrc]
		nSrc++
		if c == '\r' {
			// The next byte is needed to know if this is a "\r\n" pair.
			if nSrc >= len(src) && !atEOF {
				return nDst, nSrc - 1, transform.ErrShortSrc
			}
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
			c = '\n'
		}

		dst[nDst] = c
		nDst++
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (*NewlineFolder) Reset() {}
