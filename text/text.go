// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// They are variables so they can be overridden by the caller.
package text

// ErrorUnrecognizedOption holds the text for an unknown option.
// It has a string placeholder '%s' for the token as it was passed.
var ErrorUnrecognizedOption = "Unrecognized option: %s"

// ErrorAmbiguousOption holds the text for an abbreviation that matches more than one option.
// It has a string placeholder '%s' for the token and a second one for the quoted candidate list.
var ErrorAmbiguousOption = "Ambiguous option: '%s'  (could be: %s)"

// ErrorMissingArgument holds the text for missing argument error.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorMissingArgument = "Missing argument for option: %s"

// ErrorAlreadySelected holds the text for a group exclusivity conflict.
// Placeholders: conflicting option, group, previously selected option.
var ErrorAlreadySelected = "The option '%s' was specified but an option from this group %s has already been selected: '%s'"

// ErrorMissingRequiredOption holds the text for a single missing required option or group.
var ErrorMissingRequiredOption = "Missing required option: %s"

// ErrorMissingRequiredOptions holds the text for multiple missing required options or groups.
var ErrorMissingRequiredOptions = "Missing required options: %s"

// ErrorConvertToInt holds the text for Int Coversion argument error.
// It has two string placeholders ('%s'). The first one for the name of the option with the wrong argument and the second one for the argument that could not be converted.
var ErrorConvertToInt = "Argument error for option '%s': Can't convert string to int: '%s'"

// ErrorConvertToFloat64 holds the text for Float64 Coversion argument error.
// It has two string placeholders ('%s'). The first one for the name of the option with the wrong argument and the second one for the argument that could not be converted.
var ErrorConvertToFloat64 = "Argument error for option '%s': Can't convert string to float64: '%s'"

// ErrorConvertToBool holds the text for bool conversion argument error.
var ErrorConvertToBool = "Argument error for option '%s': Can't convert string to bool: '%s'"

// ErrorConvertToDuration holds the text for duration conversion argument error.
var ErrorConvertToDuration = "Argument error for option '%s': Can't convert string to duration: '%s'"

// ErrorConvertToURL holds the text for URL conversion argument error.
var ErrorConvertToURL = "Argument error for option '%s': Can't convert string to URL: '%s'"

// ErrorConvertToFile holds the text for file conversion argument error.
var ErrorConvertToFile = "Argument error for option '%s': File not found: '%s'"

// ErrorArgumentIsNotKeyValue holds the text for Map type options where the argument is not of key=value type.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorArgumentIsNotKeyValue = "Argument error for option '%s': Should be of type 'key=value'!"

// ErrorUnknownConverter holds the text for a converter tag without a registered converter.
var ErrorUnknownConverter = "Unknown converter '%s' for option '%s'"

// WarningUnknownOption holds the text for the unknown option message used when warning about an unknown option.
var WarningUnknownOption = "WARNING: Unrecognized option: %s"

// WarningDeprecatedOption holds the text used when a deprecated option is given.
// Placeholders: option key, deprecation details.
var WarningDeprecatedOption = "Option '%s': %s"

// HelpDeprecatedPrefix holds the text prepended to the description of deprecated options.
var HelpDeprecatedPrefix = "[Deprecated] "

// HelpNameHeader holds the header text for the command name
var HelpNameHeader = "NAME"

// HelpSynopsisHeader holds the header text for the synopsis
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader holds the header text for the option list
var HelpOptionsHeader = "OPTIONS"

// HelpRequiredOptionsHeader holds the header text for the required parameters
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"

// HelpGroupsHeader holds the header text for the mutually exclusive groups
var HelpGroupsHeader = "EXCLUSIVE GROUPS"
