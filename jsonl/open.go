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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// Open opens a line-delimited JSON file for reading. Files compressed with
// gzip (.gz) or dictzip (.dz) are decompressed transparently based on the
// file extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{r: z, closers: []io.Closer{z, f}}, nil
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		return &readCloser{r: z, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// readCloser is a reader that closes a decompressor and its underlying file.
type readCloser struct {
	r       io.Reader
	closers []io.Closer
}

// Read implements [io.Reader].
func (r *readCloser) Read(p []byte) (int, error) {
	//nolint:wrapcheck // error should not be wrapped
	return r.r.Read(p)
}

// Close closes all underlying readers.
func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("closing input: %w", err)
	}
	return nil
}
