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

// Command wikdefs converts Wiktextract dictionary dumps into compact,
// sorted, line-delimited word-definition files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ianlewis/wikdefs"
)

func main() {
	if err := newWikdefsApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the command's exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, wikdefs.ErrInputNotFound):
		return ExitCodeInputNotFound
	case errors.Is(err, wikdefs.ErrEmptyDefinition):
		return ExitCodeEmptyDefinition
	case errors.Is(err, wikdefs.ErrCountMismatch):
		return ExitCodeCountMismatch
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}
