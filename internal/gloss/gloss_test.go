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

import "testing"

func TestCleaner(t *testing.T) {
	tests := []struct {
		name     string
		cleaner  *Cleaner
		input    string
		expected string
	}{
		{
			name:     "nil cleaner",
			cleaner:  nil,
			input:    "  a small <i>feline</i>  ",
			expected: "  a small <i>feline</i>  ",
		},
		{
			name:     "zero value is a no-op",
			cleaner:  &Cleaner{},
			input:    "  a small <i>feline</i>  ",
			expected: "  a small <i>feline</i>  ",
		},
		{
			name:     "strip html",
			cleaner:  &Cleaner{StripHTML: true},
			input:    "a small <i>domesticated</i> feline",
			expected: "a small domesticated feline",
		},
		{
			name:     "fold leading and trailing whitespace",
			cleaner:  &Cleaner{FoldWhitespace: true},
			input:    "  a small feline ",
			expected: "a small feline",
		},
		{
			name:     "fold internal whitespace spans",
			cleaner:  &Cleaner{FoldWhitespace: true},
			input:    "a\t\tsmall\n feline",
			expected: "a small feline",
		},
		{
			name:     "fold unicode whitespace",
			cleaner:  &Cleaner{FoldWhitespace: true},
			input:    "a\u00a0small\u2003feline",
			expected: "a small feline",
		},
		{
			name:     "fold preserves non-ascii letters",
			cleaner:  &Cleaner{FoldWhitespace: true},
			input:    " déjà  vu ",
			expected: "déjà vu",
		},
		{
			name:     "fold whitespace only",
			cleaner:  &Cleaner{FoldWhitespace: true},
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "fold empty string",
			cleaner:  &Cleaner{FoldWhitespace: true},
			input:    "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if want, got := test.expected, test.cleaner.Clean(test.input); want != got {
				t.Errorf("unexpected result; want: %q, got: %q", want, got)
			}
		})
	}
}
