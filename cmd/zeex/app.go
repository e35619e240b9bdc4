// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
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
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-zeex"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = errors.New("parsing flags")

// ErrZeex is the base error for CLI-level failures, distinct from the
// library's own internal base error.
var ErrZeex = errors.New("zeex")

func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands in the way it expects help to.
	//
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
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

// must checks the error and panics if not nil.
func must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func newZeexApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Create and read zeex random-access compressed containers.",
		Description: strings.Join([]string{
			"zeex(1) CLI written in Go.",
			"https://github.com/ianlewis/go-zeex",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "block-size",
				Usage: "uncompressed block size in bytes",
				Value: zeex.DefaultBlockSize,
			},
			&cli.BoolFlag{
				Name:               "force",
				Usage:              "force overwrite of output file",
				Aliases:            []string{"f"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "license",
				Usage:              "display software license and exit",
				DisableDefaultText: true,
			},
		},
		ArgsUsage:       "c|d|x|i [ARGS]...",
		Copyright:       "Google LLC",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}

			if c.Bool("version") {
				return printVersion(c)
			}

			if c.Bool("license") {
				return printLicense(c)
			}

			args := c.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("%w: no action specified", ErrFlagParse)
			}

			blockSize := int64(c.Int("block-size"))
			force := c.Bool("force")

			switch args[0] {
			case "c":
				if len(args) != 3 {
					return fmt.Errorf("%w: usage: c <infile|-> <outfile>", ErrFlagParse)
				}
				cmd := compress{inPath: args[1], outPath: args[2], blockSize: blockSize, force: force}
				return cmd.Run()
			case "d":
				if len(args) < 2 || len(args) > 3 {
					return fmt.Errorf("%w: usage: d <infile> [outfile]", ErrFlagParse)
				}
				outPath := ""
				if len(args) == 3 {
					outPath = args[2]
				}
				cmd := decompress{inPath: args[1], outPath: outPath, force: force}
				return cmd.Run()
			case "x":
				if len(args) != 4 {
					return fmt.Errorf("%w: usage: x <infile> <start> <end>", ErrFlagParse)
				}
				start, err := strconv.ParseInt(args[2], 10, 64)
				if err != nil {
					return fmt.Errorf("%w: start: %w", ErrFlagParse, err)
				}
				end, err := strconv.ParseInt(args[3], 10, 64)
				if err != nil {
					return fmt.Errorf("%w: end: %w", ErrFlagParse, err)
				}
				cmd := extract{inPath: args[1], start: start, end: end}
				return cmd.Run()
			case "i":
				if len(args) != 2 {
					return fmt.Errorf("%w: usage: i <infile>", ErrFlagParse)
				}
				cmd := inspect{path: args[1]}
				return cmd.Run()
			default:
				return fmt.Errorf("%w: unknown action %q", ErrFlagParse, args[0])
			}
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}

			_ = must(fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err))
			if errors.Is(err, ErrFlagParse) {
				cli.OsExiter(ExitCodeFlagParseError)
				return
			}

			cli.OsExiter(ExitCodeUnknownError)
		},
	}
}
