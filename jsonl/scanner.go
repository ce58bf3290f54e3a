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

package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// initialBufSize is the scanner's initial line buffer size.
	initialBufSize = 64 * 1024

	// maxLineSize is the maximum supported line length. Wiktextract records
	// for common words can run to hundreds of kilobytes.
	maxLineSize = 16 * 1024 * 1024
)

// Scanner scans a line-delimited JSON stream from start to end, decoding one
// value of type T per line.
type Scanner[T any] struct {
	s *bufio.Scanner

	lines   int
	records int

	raw    []byte
	record T
	err    error
}

// NewScanner returns a new Scanner reading from r. The caller retains
// ownership of r and is responsible for closing it.
func NewScanner[T any](r io.Reader) *Scanner[T] {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Buffer(make([]byte, initialBufSize), maxLineSize)
	return &Scanner[T]{s: s}
}

// Scan advances the scanner to the next record. It returns false when the
// scan stops, either by reaching the end of the input or an error.
func (s *Scanner[T]) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			s.err = fmt.Errorf("scanning line %d: %w", s.lines+1, err)
		}
		return false
	}
	s.lines++

	// The underlying buffer is reused on the next Scan call.
	s.raw = append(s.raw[:0], s.s.Bytes()...)

	var record T
	if err := json.Unmarshal(s.raw, &record); err != nil {
		s.err = fmt.Errorf("parsing line %d: %w", s.lines, err)
		return false
	}
	s.record = record
	s.records++

	return true
}

// Record returns the most recently decoded record.
func (s *Scanner[T]) Record() T {
	return s.record
}

// Raw returns the raw bytes of the most recently scanned line. The returned
// slice is valid until the next Scan call.
func (s *Scanner[T]) Raw() []byte {
	return s.raw
}

// Lines returns the number of lines submitted for parsing so far.
func (s *Scanner[T]) Lines() int {
	return s.lines
}

// Records returns the number of records successfully decoded so far.
func (s *Scanner[T]) Records() int {
	return s.records
}

// Err returns the first error encountered.
func (s *Scanner[T]) Err() error {
	return s.err
}
