// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cliparse

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-cliparse/convert"
	"github.com/DavidGamba/go-cliparse/option"
)

// Selection - One occurrence of an option and the values it took.
type Selection struct {
	Option *option.Option
	Values []string
	// Fallback indicates the selection came from the fallback source rather than the command line.
	Fallback bool
}

// CommandLine - Result of a parse.
//
// Selections are kept in encounter order, an option given twice has two selections.
type CommandLine struct {
	selections []Selection
	args       []string
	selected   map[*option.Group]*option.Option
}

func newCommandLine() *CommandLine {
	return &CommandLine{
		selections: []Selection{},
		args:       []string{},
		selected:   map[*option.Group]*option.Option{},
	}
}

func (cl *CommandLine) addArg(arg ...string) {
	cl.args = append(cl.args, arg...)
}

func (cl *CommandLine) addSelection(opt *option.Option, values []string, fallback bool) {
	if values == nil {
		values = []string{}
	}
	cl.selections = append(cl.selections, Selection{Option: opt, Values: values, Fallback: fallback})
}

func (cl *CommandLine) count(opt *option.Option) int {
	n := 0
	for _, s := range cl.selections {
		if s.Option == opt {
			n++
		}
	}
	return n
}

func matchesName(opt *option.Option, name string) bool {
	name = strings.TrimPrefix(strings.TrimPrefix(name, "-"), "-")
	return name != "" && (opt.Short() == name || opt.Long() == name)
}

// Selections - Copy of all selections in encounter order.
func (cl *CommandLine) Selections() []Selection {
	out := make([]Selection, 0, len(cl.selections))
	for _, s := range cl.selections {
		s.Values = append([]string{}, s.Values...)
		out = append(out, s)
	}
	return out
}

// Args - Positional arguments in order.
func (cl *CommandLine) Args() []string {
	return append([]string{}, cl.args...)
}

// Options - Selected options, each once, in first encounter order.
func (cl *CommandLine) Options() []*option.Option {
	out := []*option.Option{}
	seen := map[*option.Option]bool{}
	for _, s := range cl.selections {
		if !seen[s.Option] {
			seen[s.Option] = true
			out = append(out, s.Option)
		}
	}
	return out
}

// Has - Indicates if the option was given.
// name can be the short or long name, with or without dashes.
func (cl *CommandLine) Has(name string) bool {
	return cl.Count(name) > 0
}

// Count - Number of times the option was given.
func (cl *CommandLine) Count(name string) int {
	n := 0
	for _, s := range cl.selections {
		if matchesName(s.Option, name) {
			n++
		}
	}
	return n
}

// Values - Values of every occurrence of the option, in order.
// Returns nil if the option wasn't given.
func (cl *CommandLine) Values(name string) []string {
	var out []string
	for _, s := range cl.selections {
		if matchesName(s.Option, name) {
			if out == nil {
				out = []string{}
			}
			out = append(out, s.Values...)
		}
	}
	return out
}

// Value - First value of the option.
func (cl *CommandLine) Value(name string) (string, bool) {
	values := cl.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// ValueOr - First value of the option or def.
func (cl *CommandLine) ValueOr(name, def string) string {
	if v, ok := cl.Value(name); ok {
		return v
	}
	return def
}

// Properties - Key value pairs from the values of every occurrence of the option.
// Values are taken in pairs, a key without a value maps to "true".
// Useful for `-Dkey=value` style options with a '=' separator.
// Returns an empty map if the option wasn't given.
func (cl *CommandLine) Properties(name string) map[string]string {
	props := map[string]string{}
	for _, s := range cl.selections {
		if !matchesName(s.Option, name) {
			continue
		}
		for i := 0; i < len(s.Values); i += 2 {
			if i+1 < len(s.Values) {
				props[s.Values[i]] = s.Values[i+1]
			} else {
				props[s.Values[i]] = "true"
			}
		}
	}
	return props
}

// GroupSelection - The member of g given during the parse, nil if none.
func (cl *CommandLine) GroupSelection(g *option.Group) *option.Option {
	return cl.selected[g]
}

// Object - First value of the option converted by its converter tag.
// Returns nil without error when the option wasn't given or has no values.
func (cl *CommandLine) Object(name string) (interface{}, error) {
	for _, s := range cl.selections {
		if matchesName(s.Option, name) && len(s.Values) > 0 {
			return convert.Convert(s.Option.Converter(), s.Option.Key(), s.Values[0])
		}
	}
	return nil, nil
}

// String - Human readable result.
func (cl *CommandLine) String() string {
	parts := []string{}
	for _, s := range cl.selections {
		parts = append(parts, fmt.Sprintf("%s=%q", s.Option.Key(), s.Values))
	}
	return fmt.Sprintf("[ CommandLine: [ options: %s ] [ args: %q ] ]", strings.Join(parts, " "), cl.args)
}
