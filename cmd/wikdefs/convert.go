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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/wikdefs"
)

var convertCommand = &cli.Command{
	Name:  "convert",
	Usage: "Convert a Wiktextract dump to a definitions file",
	Description: `Convert a Wiktextract dump to a sorted line-delimited definitions file.

The dump is read in a single pass. Words containing anything other than
lowercase ASCII letters are skipped. When no input is given the conventional
dump locations next to the executable and in the working directory are
tried.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Usage:   "read the Wiktextract dump from `FILE`",
			Aliases: []string{"i"},
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write definitions to `FILE`",
			Aliases: []string{"o"},
			Value:   wikdefs.DefaultOutput,
		},
		&cli.BoolFlag{
			Name:  "strip-html",
			Usage: "reduce HTML markup in glosses to plain text",
		},
		&cli.BoolFlag{
			Name:  "fold-whitespace",
			Usage: "collapse whitespace spans in glosses",
		},
		&cli.IntFlag{
			Name:  "progress-every",
			Usage: "log progress every `N` processed records",
			Value: 5000,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Usage:   "only log warnings and errors",
			Aliases: []string{"q"},
		},
	},
	Action: func(c *cli.Context) error {
		logger := newLogger(c)

		input := c.String("input")
		if input == "" {
			input = findInput()
		}

		summary, err := wikdefs.Convert(&wikdefs.Options{
			Input:          input,
			Output:         c.String("output"),
			StripHTML:      c.Bool("strip-html"),
			FoldWhitespace: c.Bool("fold-whitespace"),
			ProgressEvery:  c.Int("progress-every"),
			Logger:         &logger,
		})
		if summary != nil {
			printSummary(summary)
		}
		return err
	},
}

// printSummary prints the run's counters.
func printSummary(summary *wikdefs.Summary) {
	tbl := table.New("Counter", "Value").WithWriter(os.Stdout)
	tbl.AddRow("Lines ingested", summary.Ingested)
	tbl.AddRow("Records processed", summary.Processed)
	tbl.AddRow("Records skipped", summary.Skipped)
	tbl.AddRow("Processed + skipped", summary.Processed+summary.Skipped)
	tbl.AddRow("Distinct words", summary.Words)
	tbl.Print()
}
