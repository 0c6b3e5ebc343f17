// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - Option and option group declarations.
//
// Declarations are built once, before parsing, and are never modified by the
// parser.
package option

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option - Declaration of a single option.
type Option struct {
	short       string
	long        string
	arity       Arity
	required    bool
	separator   rune
	converter   string
	description string
	argName     string
	deprecated  *Deprecation
}

// Attr - Sets an attribute of an option at declaration time.
type Attr func(*Option)

// Arg - Sets the option arity.
func Arg(a Arity) Attr {
	return func(o *Option) { o.arity = a }
}

// Required - Marks the option as required.
func Required() Attr {
	return func(o *Option) { o.required = true }
}

// Separator - Splits a single value token into multiple values at r.
// For example, with '=' the token `key=value` results in two values.
func Separator(r rune) Attr {
	return func(o *Option) { o.separator = r }
}

// Converter - Tag used to find the converter for the option values.
// The parser only carries it, see the convert package.
func Converter(tag string) Attr {
	return func(o *Option) { o.converter = tag }
}

// Description - Optional description used for help.
func Description(s string) Attr {
	return func(o *Option) { o.description = s }
}

// ArgName - Optional arg name used for help.
func ArgName(s string) Attr {
	return func(o *Option) { o.argName = s }
}

// New - Returns a new option declaration.
// Either short or long can be empty, but not both.
//
// New will *panic* if the declaration is invalid.
// This is not an error because the programmer has to fix this!
func New(short, long string, attrs ...Attr) *Option {
	opt := &Option{
		short:   short,
		long:    long,
		argName: "arg",
	}
	for _, fn := range attrs {
		fn(opt)
	}
	if err := opt.validate(); err != nil {
		panic(fmt.Sprintf("option definition error: %s", err))
	}
	return opt
}

func (opt *Option) validate() error {
	if err := Validate(opt.short, opt.long); err != nil {
		return err
	}
	if err := opt.arity.Validate(); err != nil {
		return fmt.Errorf("%s: %w", opt.Key(), err)
	}
	if opt.separator != 0 && !opt.arity.TakesValue() {
		return fmt.Errorf("%s: value separator set on an option without arguments", opt.Key())
	}
	return nil
}

// Short - Single character name, empty if long only.
func (opt *Option) Short() string { return opt.short }

// Long - Long name, empty if short only.
func (opt *Option) Long() string { return opt.long }

// Key - Short name if set, otherwise the long name.
func (opt *Option) Key() string {
	if opt.short != "" {
		return opt.short
	}
	return opt.long
}

// Arity - How many values the option takes.
func (opt *Option) Arity() Arity { return opt.arity }

// HasArg - Indicates if the option accepts values.
func (opt *Option) HasArg() bool { return opt.arity.TakesValue() }

// IsRequired - Indicates if the option must be present.
func (opt *Option) IsRequired() bool { return opt.required }

// Separator - Value separator, 0 when not set.
func (opt *Option) Separator() rune { return opt.separator }

// Converter - Conversion tag.
func (opt *Option) Converter() string { return opt.converter }

// Description - Help description.
func (opt *Option) Description() string { return opt.description }

// ArgName - Help arg name.
func (opt *Option) ArgName() string { return opt.argName }

// Names - The names the option can be called with, including dashes.
func (opt *Option) Names() []string {
	names := []string{}
	if opt.short != "" {
		names = append(names, "-"+opt.short)
	}
	if opt.long != "" {
		names = append(names, "--"+opt.long)
	}
	return names
}

// String - `-s|--long`
func (opt *Option) String() string {
	return strings.Join(opt.Names(), "|")
}

// SplitValue - Splits v at the value separator into at most n values, the last one keeps the rest of v.
// n < 0 splits at every separator. Without a separator, or when n is 1, v is returned as is.
func (opt *Option) SplitValue(v string, n int) []string {
	if opt.separator == 0 || n == 0 || n == 1 {
		return []string{v}
	}
	return strings.SplitN(v, string(opt.separator), n)
}

// Validate - Checks option names.
//
// The short name must be a single character that is not whitespace, a quote, '-' or '='.
// The long name can't contain whitespace, quotes or '=' and can't start with '-'.
func Validate(short, long string) error {
	if short == "" && long == "" {
		return fmt.Errorf("option needs a short or a long name")
	}
	if short != "" {
		if utf8.RuneCountInString(short) != 1 {
			return fmt.Errorf("short name '%s' should be a single character", short)
		}
		r, _ := utf8.DecodeRuneInString(short)
		if !validShort(r) {
			return fmt.Errorf("illegal option value '%c'", r)
		}
	}
	if long != "" {
		if utf8.RuneCountInString(long) < 2 {
			return fmt.Errorf("long name '%s' should have more than one character", long)
		}
		if strings.HasPrefix(long, "-") {
			return fmt.Errorf("long name '%s' can't start with '-'", long)
		}
		for _, r := range long {
			if !validLong(r) {
				return fmt.Errorf("long name '%s' contains illegal character value '%c'", long, r)
			}
		}
	}
	return nil
}

func validShort(r rune) bool {
	return r != '-' && validLong(r)
}

func validLong(r rune) bool {
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return false
	}
	switch r {
	case '"', '\'', '`', '=':
		return false
	}
	return true
}

// Sort - Sorts by key.
func Sort(list []*Option) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Key() < list[j].Key()
	})
}
