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

// Record is a single word-sense record from a Wiktextract dump. Dump records
// carry many more fields than these; only the fields the converter reads are
// decoded.
type Record struct {
	// Word is the headword as it appears in the source dictionary.
	Word string `json:"word"`

	// Pos is the part-of-speech tag.
	Pos string `json:"pos"`

	// Senses are the record's senses in dump order.
	Senses []Sense `json:"senses"`

	// EtymologyText is a fallback description used when a record carries no
	// glosses at all.
	EtymologyText string `json:"etymology_text"`
}

// Sense is a single sense of a Record. Glosses are ordered.
type Sense struct {
	// RawGlosses are the unprocessed gloss strings. Preferred over Glosses
	// when present.
	RawGlosses []string `json:"raw_glosses"`

	// Glosses are the cleaned gloss strings.
	Glosses []string `json:"glosses"`
}
