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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// SortWords returns the keys of defs in ascending byte order.
func SortWords(defs map[string][]*Entry) []string {
	words := make([]string, 0, len(defs))
	for word := range defs {
		words = append(words, word)
	}
	slices.Sort(words)
	return words
}

// Write writes one [word, entries] JSON line to w for each word, in the given
// order. Output is buffered one line at a time; the full output is never held
// in memory.
func Write(w io.Writer, words []string, defs map[string][]*Entry) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		line, err := json.Marshal(&WordDefs{
			Word:    word,
			Entries: defs[word],
		})
		if err != nil {
			return fmt.Errorf("encoding %q: %w", word, err)
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("writing %q: %w", word, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing %q: %w", word, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
