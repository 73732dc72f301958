// Copyright 2026 Ian Lewis
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
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-thesaurus"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrThutil is a parent error for all command errors.
var ErrThutil = errors.New("thutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrThutil)

// demoTerms are the terms looked up when the command is run.
var demoTerms = []string{"mesa"}

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
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

// defaultDictPath returns the first existing thesaurus data file in the
// default locations. If none exist the first location is returned.
func defaultDictPath() string {
	locs := dictLocations()
	for _, path := range locs {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return locs[0]
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s`, c.App.Name, versionInfo.GitVersion, c.App.Copyright, versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrThutil, err)
	}
	return nil
}

// printSynonyms looks up each term and writes the synonym list and the
// longest synonym.
func printSynonyms(c *cli.Context, th *thesaurus.Thesaurus, terms []string) error {
	for _, term := range terms {
		if _, err := fmt.Fprintf(c.App.Writer, "%q\n", th.FindSynonyms(term)); err != nil {
			return fmt.Errorf("%w: %w", ErrThutil, err)
		}

		longest := "<none>"
		if w, ok := th.LongestSynonym(term); ok {
			longest = fmt.Sprintf("%q", w)
		}
		if _, err := fmt.Fprintln(c.App.Writer, longest); err != nil {
			return fmt.Errorf("%w: %w", ErrThutil, err)
		}
	}
	return nil
}

func newThesaurusApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up synonyms in a thesaurus data file.",
		Description: strings.Join([]string{
			"Thesaurus utility written in Go.",
			"http://github.com/ianlewis/go-thesaurus",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "read thesaurus data from `FILE`",
				Aliases: []string{"d"},
				EnvVars: []string{"THESAURUS_DICT"},
				Value:   defaultDictPath(),
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "decode thesaurus data as `ENCODING` instead of the declared encoding",
			},

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
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}

			if c.Bool("version") {
				return printVersion(c)
			}

			th, err := thesaurus.Open(c.String("dict"), &thesaurus.Options{
				Encoding: c.String("encoding"),
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrThutil, err)
			}

			return printSynonyms(c, th, demoTerms)
		},
	}
}
