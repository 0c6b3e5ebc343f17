// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Usage text for a set of option declarations.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-cliparse"
	"github.com/DavidGamba/go-cliparse/option"
	"github.com/DavidGamba/go-cliparse/text"
)

// Padding - Indentation of every section entry.
var Padding = 4

// Width - Default line width used by Help.
var Width = 80

// HelpName -
func HelpName(scriptName, description string) string {
	out := scriptName
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// argSynopsis - `<arg>`, `<arg> <arg>`, `<arg>...`, `[<arg>]` or `[<arg>...]` depending on the arity.
func argSynopsis(opt *option.Option) string {
	arg := "<" + opt.ArgName() + ">"
	a := opt.Arity()
	switch a.Kind {
	case option.ExactlyArgs:
		parts := make([]string, a.N)
		for i := range parts {
			parts[i] = arg
		}
		return " " + strings.Join(parts, " ")
	case option.UnboundedArgs:
		return " " + arg + "..."
	case option.OptionalExactlyArgs:
		if a.N > 1 {
			return " [" + arg + "...]"
		}
		return " [" + arg + "]"
	case option.OptionalUnboundedArgs:
		return " [" + arg + "...]"
	}
	return ""
}

func optSynopsis(opt *option.Option) string {
	return opt.String() + argSynopsis(opt)
}

func groupSynopsis(g *option.Group) string {
	members := []string{}
	for _, m := range g.Members() {
		members = append(members, optSynopsis(m))
	}
	return strings.Join(members, " | ")
}

func split(options []*option.Option, skip map[*option.Option]bool) (required, normal []*option.Option) {
	for _, opt := range options {
		if skip[opt] {
			continue
		}
		if opt.IsRequired() {
			required = append(required, opt)
		} else {
			normal = append(normal, opt)
		}
	}
	option.Sort(required)
	option.Sort(normal)
	return required, normal
}

// HelpSynopsis - Return a default synopsis.
// Required options go first, group members are listed together as `(-a | -b)` for
// required groups and `[-a | -b]` otherwise.
func HelpSynopsis(scriptName string, options []*option.Option, groups []*option.Group, width int) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	inGroup := map[*option.Option]bool{}
	for _, g := range groups {
		for _, m := range g.Members() {
			inGroup[m] = true
		}
	}
	required, normal := split(options, inGroup)

	entries := []string{}
	for _, opt := range required {
		entries = append(entries, optSynopsis(opt))
	}
	for _, g := range groups {
		if g.IsRequired() {
			entries = append(entries, "("+groupSynopsis(g)+")")
		}
	}
	for _, opt := range normal {
		entries = append(entries, "["+optSynopsis(opt)+"]")
	}
	for _, g := range groups {
		if !g.IsRequired() {
			entries = append(entries, "["+groupSynopsis(g)+"]")
		}
	}

	var out string
	line := scriptName
	for _, syn := range entries {
		if len(line)+1+len(syn) > width && line != scriptName && strings.TrimSpace(line) != "" {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// longestStringLen - Given a slice of strings it returns the length of the longest string in the slice
func longestStringLen(s []string) int {
	i := 0
	for _, e := range s {
		if len(e) > i {
			i = len(e)
		}
	}
	return i
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// wrap - Word wraps s to fit in width when indented by indent.
// Continuation lines are indented.
func wrap(s string, indent, width int) string {
	avail := width - indent
	if avail < 20 {
		avail = 20
	}
	lines := []string{}
	for _, paragraph := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			if line != "" && len(line)+1+len(word) > avail {
				lines = append(lines, line)
				line = word
				continue
			}
			if line != "" {
				line += " "
			}
			line += word
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"+strings.Repeat(" ", indent))
}

// HelpOptionList - Return a formatted list of options and their descriptions.
func HelpOptionList(options []*option.Option, width int) string {
	synopsis := []string{}
	for _, opt := range options {
		synopsis = append(synopsis, optSynopsis(opt))
	}
	factor := longestStringLen(synopsis) + Padding
	required, normal := split(options, nil)
	helpString := func(opt *option.Option) string {
		txt := strings.Repeat(" ", Padding) + pad(optSynopsis(opt), factor)
		description := opt.Description()
		if opt.IsDeprecated() {
			description = text.HelpDeprecatedPrefix + description
		}
		if description != "" {
			txt += wrap(description, Padding+factor, width)
		}
		return strings.TrimRight(txt, " ") + "\n\n"
	}
	out := ""
	if len(required) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpRequiredOptionsHeader)
		for _, opt := range required {
			out += helpString(opt)
		}
	}
	if len(normal) > 0 {
		out += fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
		for _, opt := range normal {
			out += helpString(opt)
		}
	}
	return out
}

// HelpGroupList - Return the list of exclusive groups.
func HelpGroupList(groups []*option.Group) string {
	if len(groups) == 0 {
		return ""
	}
	out := fmt.Sprintf("%s:\n", text.HelpGroupsHeader)
	for _, g := range groups {
		out += strings.Repeat(" ", Padding) + groupSynopsis(g)
		if g.IsRequired() {
			out += " (required)"
		}
		out += "\n\n"
	}
	return out
}

// Help - Full help text for the registry: name, synopsis, options and groups.
func Help(scriptName, description string, opts *cliparse.Options) string {
	out := HelpName(scriptName, description) + "\n"
	out += HelpSynopsis(scriptName, opts.List(), opts.Groups(), Width) + "\n"
	out += HelpOptionList(opts.List(), Width)
	out += HelpGroupList(opts.Groups())
	return out
}
