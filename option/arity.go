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
	"strconv"
	"strings"
)

// ArityKind - Indicates how an option consumes values.
type ArityKind int

// Arity kinds
const (
	// NoArg options never take a value.
	NoArg ArityKind = iota
	// ExactlyArgs options require N values.
	ExactlyArgs
	// UnboundedArgs options require at least one value and take as many as available.
	UnboundedArgs
	// OptionalExactlyArgs options take up to N values, zero is fine.
	OptionalExactlyArgs
	// OptionalUnboundedArgs options take any number of values, zero is fine.
	OptionalUnboundedArgs
)

// Arity - How many value tokens an option consumes.
//
// The zero value is an option without arguments.
type Arity struct {
	Kind ArityKind
	N    int
}

// None - The option never takes a value.
func None() Arity { return Arity{Kind: NoArg} }

// Exactly - The option requires n values.
// n must be > 0.
func Exactly(n int) Arity { return Arity{Kind: ExactlyArgs, N: n} }

// Unbounded - The option requires at least one value and consumes values until the next known option.
func Unbounded() Arity { return Arity{Kind: UnboundedArgs} }

// OptionalExactly - The option takes up to n values.
// OptionalExactly(0) only honors inline values, for example `--opt=value`.
func OptionalExactly(n int) Arity { return Arity{Kind: OptionalExactlyArgs, N: n} }

// OptionalUnbounded - The option takes any number of values.
func OptionalUnbounded() Arity { return Arity{Kind: OptionalUnboundedArgs} }

// TakesValue - Indicates if the option accepts a value at all, even an inline one.
func (a Arity) TakesValue() bool {
	return a.Kind != NoArg
}

// IsOptional - Indicates that zero values is acceptable.
func (a Arity) IsOptional() bool {
	return a.Kind == NoArg || a.Kind == OptionalExactlyArgs || a.Kind == OptionalUnboundedArgs
}

// IsUnbounded - Indicates that value consumption stops only at a known option or at the end of input.
func (a Arity) IsUnbounded() bool {
	return a.Kind == UnboundedArgs || a.Kind == OptionalUnboundedArgs
}

// Min - Minimum number of values required.
func (a Arity) Min() int {
	switch a.Kind {
	case ExactlyArgs:
		return a.N
	case UnboundedArgs:
		return 1
	default:
		return 0
	}
}

// Max - Maximum number of values accepted, -1 when unbounded.
func (a Arity) Max() int {
	switch a.Kind {
	case ExactlyArgs, OptionalExactlyArgs:
		return a.N
	case UnboundedArgs, OptionalUnboundedArgs:
		return -1
	default:
		return 0
	}
}

// Validate - Returns an error when the arity can't be satisfied.
func (a Arity) Validate() error {
	switch a.Kind {
	case NoArg, UnboundedArgs, OptionalUnboundedArgs:
		return nil
	case ExactlyArgs:
		if a.N <= 0 {
			return fmt.Errorf("exact arity should be > 0, got %d", a.N)
		}
		return nil
	case OptionalExactlyArgs:
		if a.N < 0 {
			return fmt.Errorf("optional arity should be >= 0, got %d", a.N)
		}
		return nil
	}
	return fmt.Errorf("unknown arity kind %d", a.Kind)
}

// String - Short notation understood by ParseArity.
func (a Arity) String() string {
	switch a.Kind {
	case ExactlyArgs:
		return strconv.Itoa(a.N)
	case UnboundedArgs:
		return "+"
	case OptionalExactlyArgs:
		if a.N == 1 {
			return "?"
		}
		return "?" + strconv.Itoa(a.N)
	case OptionalUnboundedArgs:
		return "*"
	default:
		return "0"
	}
}

// ParseArity - Reads the short arity notation:
//
//	""  or "0"   none
//	"N"          exactly N
//	"+"          unbounded
//	"?"          optional, at most one
//	"?N"         optional, at most N
//	"*"          optional, unbounded
func ParseArity(s string) (Arity, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "0":
		return None(), nil
	case "+":
		return Unbounded(), nil
	case "*":
		return OptionalUnbounded(), nil
	case "?":
		return OptionalExactly(1), nil
	}
	a := Arity{Kind: ExactlyArgs}
	if strings.HasPrefix(s, "?") {
		a.Kind = OptionalExactlyArgs
		s = s[1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return None(), fmt.Errorf("invalid arity '%s'", s)
	}
	a.N = n
	if err := a.Validate(); err != nil {
		return None(), err
	}
	return a, nil
}
