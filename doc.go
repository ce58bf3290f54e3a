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

// Package wikdefs converts Wiktextract dictionary dumps into compact
// word-definition files.
//
// A Wiktextract dump (https://kaikki.org) is a line-delimited JSON file with
// one word-sense record per line. The converter makes a single pass over the
// dump:
//
//  1. Each line is parsed as one independent JSON record.
//  2. Records whose headword contains anything other than lowercase ASCII
//     letters are skipped. The rest are reduced to a part-of-speech tag and a
//     flat list of definitions taken from the record's sense glosses.
//  3. The surviving words are sorted in ascending byte order and written to
//     defs.json, one [word, [{pos, defs}, ...]] JSON line per word.
//
// The full aggregation map is held in memory for the duration of a run. This
// is proportional to the number of distinct words and is an accepted tradeoff
// for the simplicity of a single-pass batch conversion.
package wikdefs
