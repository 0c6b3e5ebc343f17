// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cliparse - Declarative command line option parser.

Options are declared up front with the option package, registered in an
Options collection and matched against the argument list by a Parser. The
result is a CommandLine with the selected options, their values and the
positional arguments.

	opts := cliparse.NewOptions().Add(
		option.New("v", "verbose"),
		option.New("f", "file", option.Arg(option.Exactly(1)), option.Required()),
	)
	cl, err := cliparse.Parse(opts, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	file, _ := cl.Value("file")

# Features

• Long options `--name`, `--name value` and `--name=value`.

• Long option abbreviations: `--verb` for `--verbose`, ambiguous abbreviations are an error.
Exact matches always win.

• Short options `-f value`, `-fvalue` and `-f=value`.

• Short option clusters `-abc` in Bundling mode (default).
The first option taking a value absorbs the rest of the cluster: `-vffile`.

• SingleDash mode for Java style `-Dkey=value` and Normal mode where `-name` is one option.

• Single dash long options: `-file` when no `f` short option exists.

• Options taking exactly N, at least one, an optional one or any number of values.

• Value separators: `-Dkey=value` split into `key` and `value`, the last value keeps any further separators.
Read them back as a map with `CommandLine.Properties`.

• Deprecated options reported through `SetDeprecatedHandler`.

• Negative numbers as values: `--offset -5`.

• `--` stops option parsing.

• Stop at the first positional argument with `SetStopAtNonOption`, useful for subcommands.

• Required options and exclusive option groups.

• Fallback values for options not given, see the defaults package.

• Unknown options can fail, warn or pass through to the positional arguments.

# Errors

Every error returned by Parse matches ErrorParsing with errors.Is.
The concrete types carry the details: UnrecognizedOptionError,
AmbiguousOptionError, MissingArgumentError, AlreadySelectedError and
MissingRequiredError.

Message texts live in the text package and can be overridden.
*/
package cliparse
