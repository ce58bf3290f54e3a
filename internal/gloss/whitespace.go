// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gloss

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// whitespaceFolder performs whitespace folding on the input. It removes
// spaces from the beginning and end of the input and replaces all internal
// whitespace spans with a single ASCII space rune.
type whitespaceFolder struct {
	// started is true after the first non-whitespace rune.
	started bool

	// pending is true while inside an internal whitespace span.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *whitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			// Leading whitespace is dropped outright. A span after the first
			// rune stays pending; trailing whitespace is never emitted.
			w.pending = w.started
			continue
		}

		if w.pending {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}

		// NOTE: c could be utf8.RuneError in which case size is 1 but the
		// encoded length of utf8.RuneError is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		w.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *whitespaceFolder) Reset() {
	*w = whitespaceFolder{}
}
