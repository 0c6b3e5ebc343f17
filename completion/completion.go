// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package completion - Completion candidates for a partially typed command line.
package completion

import (
	"strings"

	"github.com/DavidGamba/go-cliparse"
	"github.com/DavidGamba/go-cliparse/option"
)

// Options - Option names, with dashes, starting with word.
func Options(opts *cliparse.Options, word string) []string {
	list := []string{}
	for _, opt := range opts.List() {
		for _, name := range opt.Names() {
			if strings.HasPrefix(name, word) {
				list = append(list, name)
			}
		}
	}
	sortForCompletion(list)
	return list
}

// Complete - Candidates for the last element of args.
//
// When the previous element is an option that takes a value, the value is completed:
// files for options with the `file` converter and nothing otherwise.
// Words starting with '-' and empty words complete option names.
func Complete(opts *cliparse.Options, args []string) []string {
	word := ""
	if len(args) > 0 {
		word = args[len(args)-1]
	}
	if len(args) > 1 && !strings.HasPrefix(word, "-") {
		if opt := resolve(opts, args[len(args)-2]); opt != nil && opt.HasArg() {
			if opt.Converter() != "file" {
				return []string{}
			}
			files, err := Files(word)
			if err != nil {
				return []string{}
			}
			return files
		}
	}
	if word == "" || strings.HasPrefix(word, "-") {
		return Options(opts, word)
	}
	return []string{}
}

// resolve - The option named by an option token without an inline value.
func resolve(opts *cliparse.Options, token string) *option.Option {
	if !strings.HasPrefix(token, "-") || strings.Contains(token, "=") {
		return nil
	}
	if strings.HasPrefix(token, "--") {
		return opts.ResolveLong(strings.TrimPrefix(token, "--"), true).Option()
	}
	opt, ok := opts.Option(token)
	if !ok {
		return nil
	}
	return opt
}
