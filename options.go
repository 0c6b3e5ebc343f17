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

	"github.com/DavidGamba/go-cliparse/option"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Options - Ordered collection of option declarations and exclusive groups.
//
// Options is read only while parsing, the selection state of groups is kept by each parse.
type Options struct {
	list    []*option.Option
	short   *orderedmap.OrderedMap[string, *option.Option]
	long    *orderedmap.OrderedMap[string, *option.Option]
	groups  []*option.Group
	groupOf map[*option.Option]*option.Group
}

// NewOptions - Returns an empty registry.
func NewOptions() *Options {
	return &Options{
		short:   orderedmap.New[string, *option.Option](),
		long:    orderedmap.New[string, *option.Option](),
		groupOf: map[*option.Option]*option.Group{},
	}
}

// Add - Registers options.
// Adding the same option twice is a no-op.
//
// Add will *panic* if a short or long name is already used by a different option.
func (o *Options) Add(opts ...*option.Option) *Options {
	for _, opt := range opts {
		if opt == nil {
			panic("Option can't be nil")
		}
		if o.contains(opt) {
			continue
		}
		if opt.Short() != "" {
			if v, ok := o.short.Get(opt.Short()); ok {
				panic(fmt.Sprintf("Option '-%s' is already defined in option '%s'", opt.Short(), v))
			}
		}
		if opt.Long() != "" {
			if v, ok := o.long.Get(opt.Long()); ok {
				panic(fmt.Sprintf("Option '--%s' is already defined in option '%s'", opt.Long(), v))
			}
		}
		if opt.Short() != "" {
			o.short.Set(opt.Short(), opt)
		}
		if opt.Long() != "" {
			o.long.Set(opt.Long(), opt)
		}
		o.list = append(o.list, opt)
	}
	return o
}

// AddGroup - Registers an exclusive group and its members.
//
// AddGroup will *panic* if a member already belongs to a different group.
func (o *Options) AddGroup(g *option.Group) *Options {
	for _, m := range g.Members() {
		if v, ok := o.groupOf[m]; ok && v != g {
			panic(fmt.Sprintf("Option '%s' already belongs to group %s", m.Key(), v))
		}
	}
	for _, m := range g.Members() {
		o.Add(m)
		o.groupOf[m] = g
	}
	for _, e := range o.groups {
		if e == g {
			return o
		}
	}
	o.groups = append(o.groups, g)
	return o
}

func (o *Options) contains(opt *option.Option) bool {
	for _, e := range o.list {
		if e == opt {
			return true
		}
	}
	return false
}

// List - Options in declaration order.
func (o *Options) List() []*option.Option {
	return append([]*option.Option{}, o.list...)
}

// Groups - Groups in declaration order.
func (o *Options) Groups() []*option.Group {
	return append([]*option.Group{}, o.groups...)
}

// GroupOf - The group opt belongs to or nil.
func (o *Options) GroupOf(opt *option.Option) *option.Group {
	return o.groupOf[opt]
}

// RequiredOptions - Required options in declaration order.
func (o *Options) RequiredOptions() []*option.Option {
	req := []*option.Option{}
	for _, opt := range o.list {
		if opt.IsRequired() {
			req = append(req, opt)
		}
	}
	return req
}

// ShortOption - Exact lookup by short name.
func (o *Options) ShortOption(name string) (*option.Option, bool) {
	return o.short.Get(name)
}

// LongOption - Exact lookup by long name.
func (o *Options) LongOption(name string) (*option.Option, bool) {
	return o.long.Get(name)
}

// Option - Exact lookup by name, with or without leading dashes.
// Short names are checked first.
func (o *Options) Option(name string) (*option.Option, bool) {
	name = strings.TrimPrefix(strings.TrimPrefix(name, "-"), "-")
	if opt, ok := o.short.Get(name); ok {
		return opt, true
	}
	return o.long.Get(name)
}

// IsKnownOption - Indicates if token is an option token naming a declared option when parsing in mode.
// Long names are resolved as ResolveLong does, ambiguous abbreviations count as known.
func (o *Options) IsKnownOption(token string, mode Mode, partial bool) bool {
	t := &tokenizer{options: o}
	return o.isKnown(t.classify(token), mode, partial)
}

// isKnown - A single dash token is known by its first character, or by its whole name as a long option.
// In Normal mode a token longer than one character only matches a long option.
func (o *Options) isKnown(tok Token, mode Mode, partial bool) bool {
	switch tok.Kind {
	case LongToken:
		return o.ResolveLong(tok.Name, partial).Kind != NoMatch
	case ShortToken:
		runes := []rune(tok.Name)
		if mode != Normal || len(runes) == 1 {
			if _, ok := o.short.Get(string(runes[0])); ok {
				return true
			}
		}
		_, ok := o.long.Get(tok.Name)
		return ok
	}
	return false
}

// MatchKind - Result kind of a long name resolution.
type MatchKind int

// Match kinds
const (
	NoMatch MatchKind = iota
	ExactMatch
	UniqueMatch
	AmbiguousMatch
)

func (k MatchKind) String() string {
	switch k {
	case ExactMatch:
		return "exact"
	case UniqueMatch:
		return "unique"
	case AmbiguousMatch:
		return "ambiguous"
	default:
		return "none"
	}
}

// Resolution - Result of ResolveLong.
// Candidates are in declaration order.
type Resolution struct {
	Kind       MatchKind
	Candidates []*option.Option
}

// Option - The resolved option for exact and unique matches, nil otherwise.
func (r Resolution) Option() *option.Option {
	if r.Kind == ExactMatch || r.Kind == UniqueMatch {
		return r.Candidates[0]
	}
	return nil
}

// ResolveLong - Resolves a long name without leading dashes.
//
// An exact match always wins.
// When partial is true, a non empty prefix of exactly one long name is a unique match and a prefix of more than one is ambiguous.
func (o *Options) ResolveLong(name string, partial bool) Resolution {
	if opt, ok := o.long.Get(name); ok {
		return Resolution{Kind: ExactMatch, Candidates: []*option.Option{opt}}
	}
	if !partial || name == "" {
		return Resolution{Kind: NoMatch}
	}
	matches := []*option.Option{}
	for pair := o.long.Oldest(); pair != nil; pair = pair.Next() {
		if strings.HasPrefix(pair.Key, name) {
			matches = append(matches, pair.Value)
		}
	}
	Logger.Printf("ResolveLong %q matches: %v\n", name, matches)
	switch len(matches) {
	case 0:
		return Resolution{Kind: NoMatch}
	case 1:
		return Resolution{Kind: UniqueMatch, Candidates: matches}
	default:
		return Resolution{Kind: AmbiguousMatch, Candidates: matches}
	}
}

// String - Human readable dump of the registry.
func (o *Options) String() string {
	out := "Options: ["
	for i, opt := range o.list {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s(%s)", opt, opt.Arity())
	}
	out += "]"
	for _, g := range o.groups {
		out += " Group: " + g.String()
	}
	return out
}
