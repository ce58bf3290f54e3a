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

// Package defsfile implements reading defs.json files produced by wikdefs.
package defsfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ianlewis/wikdefs"
	"github.com/ianlewis/wikdefs/jsonl"
)

// File is an in-memory defs.json file. Lines are held in file order, which
// is ascending byte order by word for files written by wikdefs; Search relies
// on this.
type File struct {
	words []*wikdefs.WordDefs
}

// Read loads the defs.json file at path into memory.
func Read(path string) (*File, error) {
	r, err := jsonl.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f := &File{}
	s := jsonl.NewScanner[wikdefs.WordDefs](r)
	for s.Scan() {
		line := s.Record()
		f.words = append(f.words, &line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return f, nil
}

// Len returns the number of words in the file.
func (f *File) Len() int {
	return len(f.words)
}

// Words returns the file's lines in file order. The returned slice is owned
// by the File and must not be modified.
func (f *File) Words() []*wikdefs.WordDefs {
	return f.words
}

// Search performs a binary search over the file and returns the line for the
// given word, or nil if the word is not present. Words are unique within a
// file so at most one line matches.
func (f *File) Search(word string) *wikdefs.WordDefs {
	i, found := sort.Find(len(f.words), func(i int) int {
		return strings.Compare(word, f.words[i].Word)
	})
	if !found {
		return nil
	}
	return f.words[i]
}
