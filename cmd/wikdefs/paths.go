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

package main

import (
	"os"
	"path/filepath"
)

// dumpNames are the conventional Wiktextract dump file names used by
// kaikki.org downloads.
var dumpNames = []string{
	"raw-wiktextract-data.jsonl",
	"raw-wiktextract-data.jsonl.gz",
}

// inputLocations returns conventional locations for the Wiktextract dump:
// next to the executable, in the working directory, and in WIKDEFS_DATA_DIR.
func inputLocations() []string {
	var loc []string

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		for _, name := range dumpNames {
			loc = append(loc, filepath.Join(dir, name))
		}
	}

	loc = append(loc, dumpNames...)

	if dataDir := os.Getenv("WIKDEFS_DATA_DIR"); dataDir != "" {
		for _, name := range dumpNames {
			loc = append(loc, filepath.Join(dataDir, name))
		}
	}

	return loc
}

// findInput returns the first conventional dump location that exists. If
// none exists the first candidate is returned so that the converter's
// missing-input error names the expected location.
func findInput() string {
	locations := inputLocations()
	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return locations[0]
}
