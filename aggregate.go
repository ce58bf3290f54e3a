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

package wikdefs

import (
	"errors"
	"fmt"

	"github.com/ianlewis/wikdefs/internal/gloss"
)

// ErrEmptyDefinition indicates that a record's definitions resolved to an
// empty string. This is treated as corrupt source data and aborts the whole
// run rather than skipping the record.
var ErrEmptyDefinition = errors.New("empty definition")

// noDefinition is the placeholder definition for records that carry no
// glosses and no etymology text.
const noDefinition = "No definition found"

// AggregatorOptions are options for an Aggregator.
type AggregatorOptions struct {
	// StripHTML reduces HTML markup in glosses to plain text.
	StripHTML bool

	// FoldWhitespace trims glosses and collapses internal whitespace spans to
	// a single space.
	FoldWhitespace bool
}

// Aggregator folds parsed dump records into an in-memory map from word to
// definition entries. It is the only stateful stage of the pipeline; the map
// grows for the duration of a run and entries are never removed.
type Aggregator struct {
	cleaner *gloss.Cleaner

	defs      map[string][]*Entry
	processed int
	skipped   int
}

// NewAggregator returns a new empty Aggregator.
func NewAggregator(options *AggregatorOptions) *Aggregator {
	if options == nil {
		options = &AggregatorOptions{}
	}
	return &Aggregator{
		cleaner: &gloss.Cleaner{
			StripHTML:      options.StripHTML,
			FoldWhitespace: options.FoldWhitespace,
		},
		defs: map[string][]*Entry{},
	}
}

// Add folds one record into the aggregation map and reports whether the
// record was aggregated. Records whose word is not entirely lowercase ASCII
// letters are counted and dropped with no error. A definition that resolves
// to an empty string returns an error wrapping ErrEmptyDefinition; the
// aggregate must be discarded when this happens.
func (a *Aggregator) Add(r *Record) (bool, error) {
	if !isLowerWord(r.Word) {
		a.skipped++
		return false, nil
	}

	defs := a.buildDefs(r)
	for _, d := range defs {
		if d == "" {
			return false, fmt.Errorf("%w: word %q", ErrEmptyDefinition, r.Word)
		}
	}

	a.defs[r.Word] = append(a.defs[r.Word], &Entry{
		Pos:  r.Pos,
		Defs: defs,
	})
	a.processed++

	return true, nil
}

// buildDefs flattens the record's glosses into a single definition list. For
// each sense the raw glosses are preferred over the cleaned glosses. A record
// with no glosses at all falls back to its etymology text, then to the
// noDefinition placeholder.
func (a *Aggregator) buildDefs(r *Record) []string {
	var defs []string
	for _, s := range r.Senses {
		switch {
		case len(s.RawGlosses) > 0:
			defs = append(defs, s.RawGlosses...)
		case len(s.Glosses) > 0:
			defs = append(defs, s.Glosses...)
		}
	}

	if len(defs) == 0 {
		if r.EtymologyText != "" {
			defs = []string{r.EtymologyText}
		} else {
			defs = []string{noDefinition}
		}
	}

	for i, d := range defs {
		defs[i] = a.cleaner.Clean(d)
	}

	return defs
}

// Defs returns the aggregation map. The map is owned by the Aggregator; the
// caller must not modify it.
func (a *Aggregator) Defs() map[string][]*Entry {
	return a.defs
}

// Len returns the number of distinct aggregated words.
func (a *Aggregator) Len() int {
	return len(a.defs)
}

// Processed returns the number of aggregated records.
func (a *Aggregator) Processed() int {
	return a.processed
}

// Skipped returns the number of records dropped by the word filter.
func (a *Aggregator) Skipped() int {
	return a.skipped
}

// isLowerWord reports whether w is non-empty and contains only the lowercase
// ASCII letters 'a' through 'z'. Words with uppercase letters, digits,
// whitespace, punctuation, hyphens and multi-word phrases are all excluded.
func isLowerWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
