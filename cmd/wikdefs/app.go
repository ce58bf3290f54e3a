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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeInputNotFound is the exit code when the input dump is missing.
	ExitCodeInputNotFound

	// ExitCodeEmptyDefinition is the exit code for a fatal data-integrity
	// failure.
	ExitCodeEmptyDefinition

	// ExitCodeCountMismatch is the exit code for an end-of-run accounting
	// mismatch.
	ExitCodeCountMismatch
)

// ErrWikdefs is a parent error for all command errors.
var ErrWikdefs = errors.New("wikdefs")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWikdefs)

// ErrWordNotFound indicates a lookup word is not in the definitions file.
var ErrWordNotFound = fmt.Errorf("%w: word not found", ErrWikdefs)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `wikdefs --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newLogger returns a console logger for progress notices and phase banners.
func newLogger(c *cli.Context) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	if c.Bool("quiet") {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return logger
}

func newWikdefsApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Build word definition files from Wiktextract dumps.",
		Description: strings.Join([]string{
			"Wiktextract dump converter written in Go.",
			"http://github.com/ianlewis/wikdefs",
		}, "\n"),
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			convertCommand,
			lookupCommand,
		},
	}
}
