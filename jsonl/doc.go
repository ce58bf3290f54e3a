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

// Package jsonl implements reading line-delimited JSON files.
//
// A line-delimited JSON file contains one complete JSON value per line.
// Parsing is strict: a line that does not contain exactly one well-formed
// JSON value stops the scan with an error rather than being silently
// dropped, so the scanner's line and record counters always agree on a
// successful scan.
package jsonl
