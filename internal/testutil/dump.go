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

// Package testutil provides test helpers for creating dump files.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDumpOptions are options for MakeTempDump.
type MakeDumpOptions struct {
	// Ext is an optional file extension for the dump file. Defaults to
	// '.jsonl.gz' if Gzip is true, '.jsonl.dz' if DictZip is true, and
	// '.jsonl' otherwise.
	Ext string

	// Gzip indicates that the dump file should be compressed with gzip.
	Gzip bool

	// DictZip indicates that the dump file should be compressed with
	// dictzip.
	DictZip bool
}

func (o *MakeDumpOptions) ext() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.Gzip {
			return ".jsonl.gz"
		}
		if o.DictZip {
			return ".jsonl.dz"
		}
	}
	return ".jsonl"
}

// MakeTempDump writes the given lines to a temporary line-delimited dump
// file and returns its path. The file is removed when the test finishes.
func MakeTempDump(t *testing.T, lines []string, opts *MakeDumpOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dump"+opts.ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	data := []byte(strings.Join(lines, "\n") + "\n")

	switch {
	case opts != nil && opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
