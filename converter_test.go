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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/wikdefs/internal/testutil"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
		summary  Summary
	}{
		{
			name: "single record",
			lines: []string{
				`{"word":"cat","pos":"noun","senses":[{"glosses":["a small domesticated feline"]}]}`,
			},
			expected: `["cat",[{"pos":"noun","defs":["a small domesticated feline"]}]]` + "\n",
			summary:  Summary{Ingested: 1, Processed: 1, Skipped: 0, Words: 1},
		},
		{
			name: "capitalized word excluded",
			lines: []string{
				`{"word":"cat","pos":"noun","senses":[{"glosses":["a small domesticated feline"]}]}`,
				`{"word":"Dog","pos":"noun","senses":[{"glosses":["a domesticated canine"]}]}`,
			},
			expected: `["cat",[{"pos":"noun","defs":["a small domesticated feline"]}]]` + "\n",
			summary:  Summary{Ingested: 2, Processed: 1, Skipped: 1, Words: 1},
		},
		{
			name: "repeated word keeps input order under one key",
			lines: []string{
				`{"word":"run","pos":"verb","senses":[{"glosses":["to move quickly"]}]}`,
				`{"word":"apple","pos":"noun","senses":[{"glosses":["a pomaceous fruit"]}]}`,
				`{"word":"run","pos":"noun","senses":[{"glosses":["an act of running"]}]}`,
			},
			expected: `["apple",[{"pos":"noun","defs":["a pomaceous fruit"]}]]` + "\n" +
				`["run",[{"pos":"verb","defs":["to move quickly"]},{"pos":"noun","defs":["an act of running"]}]]` + "\n",
			summary: Summary{Ingested: 3, Processed: 3, Skipped: 0, Words: 2},
		},
		{
			name: "no glosses falls back to placeholder",
			lines: []string{
				`{"word":"foo","pos":"noun","senses":[{}]}`,
			},
			expected: `["foo",[{"pos":"noun","defs":["No definition found"]}]]` + "\n",
			summary:  Summary{Ingested: 1, Processed: 1, Skipped: 0, Words: 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			input := testutil.MakeTempDump(t, test.lines, nil)
			output := filepath.Join(t.TempDir(), "defs.json")

			summary, err := Convert(&Options{
				Input:  input,
				Output: output,
			})
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(&test.summary, summary); diff != "" {
				t.Errorf("unexpected summary (-want, +got):\n%s", diff)
			}

			b, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.expected, string(b)); diff != "" {
				t.Errorf("unexpected output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_gzipInput(t *testing.T) {
	input := testutil.MakeTempDump(t, []string{
		`{"word":"cat","pos":"noun","senses":[{"glosses":["a small domesticated feline"]}]}`,
	}, &testutil.MakeDumpOptions{Gzip: true})
	output := filepath.Join(t.TempDir(), "defs.json")

	summary, err := Convert(&Options{
		Input:  input,
		Output: output,
	})
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 1, summary.Words; want != got {
		t.Errorf("unexpected word count; want: %d, got: %d", want, got)
	}
}

func TestConvert_idempotent(t *testing.T) {
	input := testutil.MakeTempDump(t, []string{
		`{"word":"run","pos":"verb","senses":[{"glosses":["to move quickly"]}]}`,
		`{"word":"cat","pos":"noun","senses":[{"glosses":["a small domesticated feline"]}]}`,
	}, nil)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	for _, output := range []string{first, second} {
		if _, err := Convert(&Options{Input: input, Output: output}); err != nil {
			t.Fatal(err)
		}
	}

	b1, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(b1), string(b2)); diff != "" {
		t.Errorf("output is not byte-identical (-first, +second):\n%s", diff)
	}
}

func TestConvert_inputNotFound(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "defs.json")

	_, err := Convert(&Options{
		Input:  filepath.Join(dir, "missing.jsonl"),
		Output: output,
	})
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("unexpected error; want: %v, got: %v", ErrInputNotFound, err)
	}

	// Nothing may be written on a precondition failure.
	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output file, got: %v", err)
	}
}

func TestConvert_emptyDefinition(t *testing.T) {
	input := testutil.MakeTempDump(t, []string{
		`{"word":"cat","pos":"noun","senses":[{"raw_glosses":[""]}]}`,
	}, nil)
	output := filepath.Join(t.TempDir(), "defs.json")

	_, err := Convert(&Options{
		Input:  input,
		Output: output,
	})
	if !errors.Is(err, ErrEmptyDefinition) {
		t.Fatalf("unexpected error; want: %v, got: %v", ErrEmptyDefinition, err)
	}

	// The run halts before anything is published.
	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output file, got: %v", err)
	}
}

func TestConvert_malformedLine(t *testing.T) {
	input := testutil.MakeTempDump(t, []string{
		`{"word":"cat","pos":"noun","senses":[{"glosses":["a small feline"]}]}`,
		`{"word":"dog"`,
	}, nil)
	output := filepath.Join(t.TempDir(), "defs.json")

	if _, err := Convert(&Options{Input: input, Output: output}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSummary_Check(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		wantErr bool
	}{
		{
			name:    "consistent",
			summary: Summary{Ingested: 10, Processed: 7, Skipped: 3, Words: 5},
		},
		{
			name:    "zero",
			summary: Summary{},
		},
		{
			name:    "mismatch",
			summary: Summary{Ingested: 10, Processed: 7, Skipped: 2, Words: 5},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.summary.Check()
			if test.wantErr {
				if !errors.Is(err, ErrCountMismatch) {
					t.Fatalf("unexpected error; want: %v, got: %v", ErrCountMismatch, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}
