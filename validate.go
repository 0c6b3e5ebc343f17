// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cliparse

import (
	"github.com/DavidGamba/go-cliparse/option"
)

// validate - Checks required options and required groups against the result.
func validate(opts *Options, cl *CommandLine) error {
	missingOpts := []*option.Option{}
	for _, opt := range opts.RequiredOptions() {
		if cl.count(opt) == 0 {
			missingOpts = append(missingOpts, opt)
		}
	}
	missingGroups := []*option.Group{}
	for _, g := range opts.Groups() {
		if g.IsRequired() && cl.GroupSelection(g) == nil {
			missingGroups = append(missingGroups, g)
		}
	}
	if len(missingOpts) == 0 && len(missingGroups) == 0 {
		return nil
	}
	Logger.Printf("validate missing: %v %v\n", missingOpts, missingGroups)
	return &MissingRequiredError{Options: missingOpts, Groups: missingGroups}
}
