// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cliparse

import (
	"bytes"
	"errors"
	"testing"

	"github.com/DavidGamba/go-cliparse/option"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// selected - Simplified view of a selection for comparisons.
type selected struct {
	Key      string
	Values   []string
	Fallback bool
}

func selectionsOf(cl *CommandLine) []selected {
	out := []selected{}
	for _, s := range cl.Selections() {
		out = append(out, selected{Key: s.Option.Key(), Values: s.Values, Fallback: s.Fallback})
	}
	return out
}

// sample - Option set used across parser tests.
//
//	-a, -b             no argument
//	-c, --cfile        exactly one
//	-e, --enable-debug no argument
//	-f, --file         exactly one
//	-n, --number       exactly one
//	-o, --optional     optional one
//	-l, --list         unbounded
//	-z, --zero         any number
//	-D                 exactly two, separator '='
//	-J                 exactly two, separator '='
//	--version          no argument
//	--verbose          no argument
//	--help             no argument
func sample() *Options {
	return NewOptions().Add(
		option.New("a", ""),
		option.New("b", ""),
		option.New("c", "cfile", option.Arg(option.Exactly(1))),
		option.New("e", "enable-debug"),
		option.New("f", "file", option.Arg(option.Exactly(1))),
		option.New("n", "number", option.Arg(option.Exactly(1))),
		option.New("o", "optional", option.Arg(option.OptionalExactly(1))),
		option.New("l", "list", option.Arg(option.Unbounded())),
		option.New("z", "zero", option.Arg(option.OptionalUnbounded())),
		option.New("D", "", option.Arg(option.Exactly(2)), option.Separator('=')),
		option.New("J", "", option.Arg(option.Exactly(2)), option.Separator('=')),
		option.New("", "version"),
		option.New("", "verbose"),
		option.New("", "help"),
	)
}
