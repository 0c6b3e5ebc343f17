// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-cliparse/text"
)

// Deprecation - Deprecation details of an option.
type Deprecation struct {
	Description string
	Since       string
	ForRemoval  bool
}

// String - `Deprecated for removal since 2.0: Use X.`
func (d Deprecation) String() string {
	var b strings.Builder
	b.WriteString("Deprecated")
	if d.ForRemoval {
		b.WriteString(" for removal")
	}
	if d.Since != "" {
		b.WriteString(" since " + d.Since)
	}
	if d.Description != "" {
		b.WriteString(": " + d.Description)
	}
	return b.String()
}

// Deprecated - Marks the option as deprecated.
func Deprecated(d Deprecation) Attr {
	return func(o *Option) { o.deprecated = &d }
}

// IsDeprecated - Indicates if the option is deprecated.
func (opt *Option) IsDeprecated() bool { return opt.deprecated != nil }

// Deprecation - Deprecation details, the zero value when the option isn't deprecated.
func (opt *Option) Deprecation() Deprecation {
	if opt.deprecated == nil {
		return Deprecation{}
	}
	return *opt.deprecated
}

// DeprecatedString - `Option 'key': Deprecated ...`, empty when the option isn't deprecated.
func (opt *Option) DeprecatedString() string {
	if opt.deprecated == nil {
		return ""
	}
	return fmt.Sprintf(text.WarningDeprecatedOption, opt.Key(), opt.deprecated)
}
