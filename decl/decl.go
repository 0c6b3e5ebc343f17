// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package decl - Option declarations from YAML or TOML documents.

	options:
	  - short: f
	    long: file
	    arity: "1"
	    required: true
	    converter: file
	    description: Input file.
	    arg_name: path
	  - short: D
	    arity: "2"
	    separator: "="
	  - short: d
	    long: directory
	    deprecated:
	      since: "2.0"
	      for_removal: true
	      description: Use --file.
	groups:
	  - required: false
	    members: [f, d]

Arity uses the option.ParseArity text form: "0", "N", "+", "?", "?N" and "*".
Group members are referenced by short or long name.
An empty `deprecated: {}` mapping marks the option deprecated without details.
*/
package decl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/DavidGamba/go-cliparse"
	"github.com/DavidGamba/go-cliparse/option"
	"gopkg.in/yaml.v3"
)

// Document - Declaration document.
type Document struct {
	Options []Option `yaml:"options" toml:"options"`
	Groups  []Group  `yaml:"groups" toml:"groups"`
}

// Option - Declaration of a single option.
type Option struct {
	Short       string       `yaml:"short" toml:"short"`
	Long        string       `yaml:"long" toml:"long"`
	Arity       string       `yaml:"arity" toml:"arity"`
	Required    bool         `yaml:"required" toml:"required"`
	Separator   string       `yaml:"separator" toml:"separator"`
	Converter   string       `yaml:"converter" toml:"converter"`
	Description string       `yaml:"description" toml:"description"`
	ArgName     string       `yaml:"arg_name" toml:"arg_name"`
	Deprecated  *Deprecation `yaml:"deprecated" toml:"deprecated"`
}

// Deprecation - Deprecation details of an option.
type Deprecation struct {
	Since       string `yaml:"since" toml:"since"`
	ForRemoval  bool   `yaml:"for_removal" toml:"for_removal"`
	Description string `yaml:"description" toml:"description"`
}

// Group - Declaration of an exclusive group.
type Group struct {
	Required bool     `yaml:"required" toml:"required"`
	Members  []string `yaml:"members" toml:"members"`
}

// FromYAML - Reads a YAML declaration document.
func FromYAML(r io.Reader) (*cliparse.Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml declaration: %w", err)
	}
	return doc.Build()
}

// FromTOML - Reads a TOML declaration document with [[options]] and [[groups]] tables.
func FromTOML(r io.Reader) (*cliparse.Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := Document{}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse toml declaration: %w", err)
	}
	return doc.Build()
}

// Load - Reads a declaration file by extension: .yaml, .yml or .toml.
func Load(path string) (*cliparse.Options, error) {
	var fn func(io.Reader) (*cliparse.Options, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		fn = FromYAML
	case ".toml":
		fn = FromTOML
	default:
		return nil, fmt.Errorf("unsupported declaration file extension: '%s'", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open declaration file: %w", err)
	}
	defer f.Close()
	return fn(f)
}

// Build - Validates the document and returns the registry.
// Errors name the index of the offending entry.
func (d *Document) Build() (*cliparse.Options, error) {
	opts := cliparse.NewOptions()
	for i, o := range d.Options {
		opt, err := o.build()
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i, err)
		}
		if existing, ok := opts.ShortOption(opt.Short()); ok && opt.Short() != "" {
			return nil, fmt.Errorf("option %d: '-%s' is already defined in option '%s'", i, opt.Short(), existing)
		}
		if existing, ok := opts.LongOption(opt.Long()); ok && opt.Long() != "" {
			return nil, fmt.Errorf("option %d: '--%s' is already defined in option '%s'", i, opt.Long(), existing)
		}
		opts.Add(opt)
	}
	for i, g := range d.Groups {
		group, err := g.build(opts)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		opts.AddGroup(group)
	}
	return opts, nil
}

func (o Option) build() (*option.Option, error) {
	if err := option.Validate(o.Short, o.Long); err != nil {
		return nil, err
	}
	arity, err := option.ParseArity(o.Arity)
	if err != nil {
		return nil, err
	}
	if err := arity.Validate(); err != nil {
		return nil, err
	}
	attrs := []option.Attr{option.Arg(arity)}
	if o.Separator != "" {
		if utf8.RuneCountInString(o.Separator) != 1 {
			return nil, fmt.Errorf("separator '%s' should be a single character", o.Separator)
		}
		if !arity.TakesValue() {
			return nil, fmt.Errorf("separator set on an option without arguments")
		}
		r, _ := utf8.DecodeRuneInString(o.Separator)
		attrs = append(attrs, option.Separator(r))
	}
	if o.Required {
		attrs = append(attrs, option.Required())
	}
	if o.Converter != "" {
		attrs = append(attrs, option.Converter(o.Converter))
	}
	if o.Description != "" {
		attrs = append(attrs, option.Description(o.Description))
	}
	if o.ArgName != "" {
		attrs = append(attrs, option.ArgName(o.ArgName))
	}
	if o.Deprecated != nil {
		attrs = append(attrs, option.Deprecated(option.Deprecation{
			Description: o.Deprecated.Description,
			Since:       o.Deprecated.Since,
			ForRemoval:  o.Deprecated.ForRemoval,
		}))
	}
	return option.New(o.Short, o.Long, attrs...), nil
}

func (g Group) build(opts *cliparse.Options) (*option.Group, error) {
	if len(g.Members) == 0 {
		return nil, fmt.Errorf("group has no members")
	}
	members := []*option.Option{}
	seen := map[*option.Option]bool{}
	for _, name := range g.Members {
		opt, ok := opts.Option(name)
		if !ok {
			return nil, fmt.Errorf("unknown member '%s'", name)
		}
		if seen[opt] {
			return nil, fmt.Errorf("member '%s' is repeated", name)
		}
		if other := opts.GroupOf(opt); other != nil {
			return nil, fmt.Errorf("member '%s' already belongs to group %s", name, other)
		}
		seen[opt] = true
		members = append(members, opt)
	}
	if g.Required {
		return option.NewRequiredGroup(members...), nil
	}
	return option.NewGroup(members...), nil
}
