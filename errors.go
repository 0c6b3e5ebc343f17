// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cliparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DavidGamba/go-cliparse/option"
	"github.com/DavidGamba/go-cliparse/text"
)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every error returned by Parse matches it with errors.Is.
var ErrorParsing = errors.New("")

// UnrecognizedOptionError - The token didn't resolve to any declared option.
type UnrecognizedOptionError struct {
	Token string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf(text.ErrorUnrecognizedOption, e.Token)
}

func (e *UnrecognizedOptionError) Is(target error) bool { return target == ErrorParsing }

// AmbiguousOptionError - The abbreviation matched more than one long option.
type AmbiguousOptionError struct {
	Token      string
	Candidates []*option.Option
}

func (e *AmbiguousOptionError) Error() string {
	names := []string{}
	for _, c := range e.Candidates {
		names = append(names, "'"+c.Long()+"'")
	}
	return fmt.Sprintf(text.ErrorAmbiguousOption, e.Token, strings.Join(names, ", "))
}

func (e *AmbiguousOptionError) Is(target error) bool { return target == ErrorParsing }

// MissingArgumentError - The option requires values that weren't given.
type MissingArgumentError struct {
	Option *option.Option
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf(text.ErrorMissingArgument, e.Option.Key())
}

func (e *MissingArgumentError) Is(target error) bool { return target == ErrorParsing }

// AlreadySelectedError - Two different members of an exclusive group were given.
type AlreadySelectedError struct {
	Group    *option.Group
	Previous *option.Option
	Option   *option.Option
}

func (e *AlreadySelectedError) Error() string {
	return fmt.Sprintf(text.ErrorAlreadySelected, e.Option.Key(), e.Group, e.Previous.Key())
}

func (e *AlreadySelectedError) Is(target error) bool { return target == ErrorParsing }

// MissingRequiredError - Required options or groups weren't given.
// Both lists are in declaration order.
type MissingRequiredError struct {
	Options []*option.Option
	Groups  []*option.Group
}

func (e *MissingRequiredError) Error() string {
	missing := []string{}
	for _, opt := range e.Options {
		missing = append(missing, opt.Key())
	}
	for _, g := range e.Groups {
		missing = append(missing, g.String())
	}
	if len(missing) == 1 {
		return fmt.Sprintf(text.ErrorMissingRequiredOption, missing[0])
	}
	return fmt.Sprintf(text.ErrorMissingRequiredOptions, strings.Join(missing, ", "))
}

func (e *MissingRequiredError) Is(target error) bool { return target == ErrorParsing }
