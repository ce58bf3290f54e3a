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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/wikdefs/internal/testutil"
)

func TestOpen(t *testing.T) {
	lines := []string{
		`{"word":"cat","pos":"noun"}`,
		`{"word":"run","pos":"verb"}`,
	}
	expected := []testRecord{
		{Word: "cat", Pos: "noun"},
		{Word: "run", Pos: "verb"},
	}

	tests := []struct {
		name string
		opts *testutil.MakeDumpOptions
	}{
		{
			name: "plain",
			opts: nil,
		},
		{
			name: "gzip",
			opts: &testutil.MakeDumpOptions{Gzip: true},
		},
		{
			name: "dictzip",
			opts: &testutil.MakeDumpOptions{DictZip: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := testutil.MakeTempDump(t, lines, test.opts)

			r, err := Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()

			var records []testRecord
			s := NewScanner[testRecord](r)
			for s.Scan() {
				records = append(records, s.Record())
			}
			if err := s.Err(); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(expected, records); diff != "" {
				t.Errorf("unexpected records (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_notFound(t *testing.T) {
	if _, err := Open(t.TempDir() + "/missing.jsonl"); err == nil {
		t.Fatal("expected error")
	}
}
