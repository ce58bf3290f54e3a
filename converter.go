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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ianlewis/wikdefs/jsonl"
)

// ErrInputNotFound indicates that the input dump does not exist. It is a
// user-facing precondition failure detected before any output is produced.
var ErrInputNotFound = errors.New("input file not found")

// ErrCountMismatch indicates that the ingested, processed and skipped
// counters disagree at the end of a run. It points at an accounting bug, not
// bad input. The output file has already been written when this is detected
// and is kept, but must be treated as suspect.
var ErrCountMismatch = errors.New("record count mismatch")

// DefaultOutput is the conventional output file name. The file contains
// line-delimited JSON despite its name.
const DefaultOutput = "defs.json"

// defaultProgressEvery is the default record interval for progress notices.
const defaultProgressEvery = 5000

// Options are options for Convert.
type Options struct {
	// Input is the path of the Wiktextract dump. Files compressed with gzip
	// (.gz) or dictzip (.dz) are read transparently.
	Input string

	// Output is the path the definitions are written to. Defaults to
	// DefaultOutput in the current directory.
	Output string

	// StripHTML reduces HTML markup in glosses to plain text.
	StripHTML bool

	// FoldWhitespace collapses whitespace spans in glosses.
	FoldWhitespace bool

	// ProgressEvery is the number of processed records between progress
	// notices. Defaults to 5000. Negative values disable progress notices.
	ProgressEvery int

	// Logger is used for progress notices and phase banners. Defaults to a
	// no-op logger.
	Logger *zerolog.Logger
}

// Summary reports the counters of a completed run.
type Summary struct {
	// Ingested is the total number of input lines submitted for parsing.
	Ingested int

	// Processed is the number of records folded into the aggregation map.
	Processed int

	// Skipped is the number of records dropped by the word filter.
	Skipped int

	// Words is the number of distinct words written to the output.
	Words int
}

// Check verifies the run's accounting invariant: every ingested line was
// either processed or skipped.
func (s *Summary) Check() error {
	if s.Processed+s.Skipped != s.Ingested {
		return fmt.Errorf(
			"%w: processed %d + skipped %d != ingested %d",
			ErrCountMismatch, s.Processed, s.Skipped, s.Ingested,
		)
	}
	return nil
}

// Convert runs the full conversion pipeline: it streams the input dump
// record by record, aggregates definitions per word, and writes the sorted
// word list to the output file as line-delimited JSON.
//
// The output is written to a temporary file in the destination directory and
// renamed into place on success, so an interrupted run never leaves a
// truncated output file behind.
//
// On success the returned Summary's counters are internally consistent. A
// non-nil Summary is returned alongside ErrCountMismatch since the output has
// already been written when the mismatch is detected.
func Convert(options *Options) (*Summary, error) {
	logger := zerolog.Nop()
	if options.Logger != nil {
		logger = *options.Logger
	}
	output := options.Output
	if output == "" {
		output = DefaultOutput
	}
	progressEvery := options.ProgressEvery
	if progressEvery == 0 {
		progressEvery = defaultProgressEvery
	}

	if _, err := os.Stat(options.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(
				"%w: %q: download a Wiktextract dump from https://kaikki.org and place it there",
				ErrInputNotFound, options.Input,
			)
		}
		return nil, fmt.Errorf("checking input %q: %w", options.Input, err)
	}

	r, err := jsonl.Open(options.Input)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	agg := NewAggregator(&AggregatorOptions{
		StripHTML:      options.StripHTML,
		FoldWhitespace: options.FoldWhitespace,
	})

	s := jsonl.NewScanner[Record](r)
	for s.Scan() {
		rec := s.Record()
		added, err := agg.Add(&rec)
		if err != nil {
			logger.Error().
				Str("word", rec.Word).
				Str("record", string(s.Raw())).
				Msg("definition resolved to an empty string")
			return nil, err
		}
		if added && progressEvery > 0 && agg.Processed()%progressEvery == 0 {
			logger.Info().
				Int("processed", agg.Processed()).
				Int("skipped", agg.Skipped()).
				Msg("processing records")
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", options.Input, err)
	}

	logger.Info().Int("words", agg.Len()).Msg("sorting words")
	words := SortWords(agg.Defs())

	logger.Info().Str("output", output).Msg("writing JSON lines")
	if err := writeFile(output, words, agg.Defs()); err != nil {
		return nil, err
	}

	summary := &Summary{
		Ingested:  s.Lines(),
		Processed: agg.Processed(),
		Skipped:   agg.Skipped(),
		Words:     len(words),
	}
	if err := summary.Check(); err != nil {
		return summary, err
	}
	return summary, nil
}

// writeFile writes the sorted definitions to path via a temporary file and
// an atomic rename.
func writeFile(path string, words []string, defs map[string][]*Entry) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer os.Remove(f.Name())

	if err := Write(f, words, defs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", f.Name(), err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("renaming %q: %w", f.Name(), err)
	}
	return nil
}
