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
)

// Group - Set of mutually exclusive options.
//
// At most one member can be given per parse.
// Which member was selected is tracked by the parser for each parse, not by the group.
type Group struct {
	members  []*Option
	required bool
}

// NewGroup - Returns a group with the given members in declaration order.
//
// NewGroup will *panic* if a member is repeated or nil.
func NewGroup(members ...*Option) *Group {
	g := &Group{}
	for _, m := range members {
		if m == nil {
			panic("option group definition error: nil member")
		}
		if g.Contains(m) {
			panic(fmt.Sprintf("option group definition error: '%s' is already a member", m.Key()))
		}
		g.members = append(g.members, m)
	}
	return g
}

// NewRequiredGroup - Returns a group where one of the members must be given.
func NewRequiredGroup(members ...*Option) *Group {
	g := NewGroup(members...)
	g.required = true
	return g
}

// Members - Group members in declaration order.
func (g *Group) Members() []*Option {
	return append([]*Option{}, g.members...)
}

// IsRequired - Indicates if one of the members must be given.
func (g *Group) IsRequired() bool { return g.required }

// Contains - Indicates if opt is a member of the group.
func (g *Group) Contains(opt *Option) bool {
	for _, m := range g.members {
		if m == opt {
			return true
		}
	}
	return false
}

// String - `[a, b]` using member keys.
func (g *Group) String() string {
	keys := make([]string, 0, len(g.members))
	for _, m := range g.members {
		keys = append(keys, m.Key())
	}
	return "[" + strings.Join(keys, ", ") + "]"
}
