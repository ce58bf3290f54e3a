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
	"encoding/json"
	"fmt"
)

// Entry is the definition list produced from one qualifying dump record.
// Defs is never empty.
type Entry struct {
	Pos  string   `json:"pos"`
	Defs []string `json:"defs"`
}

// WordDefs is one defs.json line: a word paired with its entries in dump
// arrival order. It is encoded as a two-element JSON array rather than an
// object so that lines stay compact and order is explicit.
type WordDefs struct {
	Word    string
	Entries []*Entry
}

// MarshalJSON implements [json.Marshaler].
func (w *WordDefs) MarshalJSON() ([]byte, error) {
	entries := w.Entries
	if entries == nil {
		entries = []*Entry{}
	}
	//nolint:wrapcheck // error is returned to the encoder unchanged.
	return json.Marshal([]any{w.Word, entries})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (w *WordDefs) UnmarshalJSON(b []byte) error {
	var line []json.RawMessage
	if err := json.Unmarshal(b, &line); err != nil {
		return fmt.Errorf("parsing defs line: %w", err)
	}
	if len(line) != 2 {
		return fmt.Errorf("parsing defs line: expected 2 elements, got %d", len(line))
	}
	if err := json.Unmarshal(line[0], &w.Word); err != nil {
		return fmt.Errorf("parsing defs line word: %w", err)
	}
	if err := json.Unmarshal(line[1], &w.Entries); err != nil {
		return fmt.Errorf("parsing defs line entries: %w", err)
	}
	return nil
}
