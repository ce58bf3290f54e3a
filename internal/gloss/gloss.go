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

// Package gloss implements normalization of gloss text.
package gloss

import (
	"github.com/k3a/html2text"
	"golang.org/x/text/transform"
)

// Cleaner normalizes gloss strings before aggregation. The zero value
// performs no normalization.
type Cleaner struct {
	// StripHTML reduces HTML markup to plain text.
	StripHTML bool

	// FoldWhitespace removes leading and trailing whitespace and replaces
	// internal whitespace spans with a single ASCII space.
	FoldWhitespace bool
}

// Clean returns the normalized form of s.
func (c *Cleaner) Clean(s string) string {
	if c == nil {
		return s
	}
	if c.StripHTML {
		s = html2text.HTML2Text(s)
	}
	if c.FoldWhitespace {
		folded, _, err := transform.String(&whitespaceFolder{}, s)
		if err == nil {
			s = folded
		}
	}
	return s
}
