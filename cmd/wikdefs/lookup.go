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
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/wikdefs"
	"github.com/ianlewis/wikdefs/defsfile"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up words in a definitions file",
	ArgsUsage: "WORD...",
	Description: `Look up words in a definitions file produced by convert.

Definitions for each given word are printed in a table. Words not present in
the file are reported on stderr and cause a non-zero exit status.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "defs",
			Usage:   "read definitions from `FILE`",
			Aliases: []string{"d"},
			Value:   wikdefs.DefaultOutput,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			check(cli.ShowSubcommandHelp(c))
			return ErrFlagParse
		}

		f, err := defsfile.Read(c.String("defs"))
		if err != nil {
			return err
		}

		var missing int
		tbl := table.New("Word", "POS", "Definition").WithWriter(os.Stdout)
		for _, word := range c.Args().Slice() {
			line := f.Search(word)
			if line == nil {
				fmt.Fprintf(os.Stderr, "%q not found\n", word)
				missing++
				continue
			}
			for _, entry := range line.Entries {
				for _, def := range entry.Defs {
					tbl.AddRow(line.Word, entry.Pos, def)
				}
			}
		}
		tbl.Print()

		if missing > 0 {
			return fmt.Errorf("%w: %d of %d words", ErrWordNotFound, missing, c.NArg())
		}
		return nil
	},
}
