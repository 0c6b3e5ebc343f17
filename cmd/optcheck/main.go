// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
optcheck - Parses an argument list against an option declaration file and prints the result.

	optcheck --decl options.yaml [--defaults defaults.toml] -- -vf input.txt rest
	optcheck --decl options.yaml --complete -- -vf inp

Exit status is 0 on success, 1 when the arguments don't match the declaration
and 2 on usage errors.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DavidGamba/go-cliparse"
	"github.com/DavidGamba/go-cliparse/completion"
	"github.com/DavidGamba/go-cliparse/decl"
	"github.com/DavidGamba/go-cliparse/defaults"
	"github.com/DavidGamba/go-cliparse/help"
	"github.com/DavidGamba/go-cliparse/option"
	"github.com/DavidGamba/go-cliparse/text"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func main() {
	os.Exit(program(os.Args, os.Stdout, os.Stderr))
}

var modes = map[string]cliparse.Mode{
	"bundling":   cliparse.Bundling,
	"singledash": cliparse.SingleDash,
	"normal":     cliparse.Normal,
}

func options() *cliparse.Options {
	pass := option.New("", "pass", option.Description("Leave unknown options in the positional arguments."))
	warn := option.New("", "warn", option.Description("Warn about unknown options and leave them in the positional arguments."))
	return cliparse.NewOptions().Add(
		option.New("h", "help", option.Description("Show this help.")),
		option.New("", "debug", option.Description("Print parser debug output to stderr.")),
		option.New("d", "decl", option.Arg(option.Exactly(1)), option.ArgName("file"),
			option.Description("Option declaration file (.yaml, .yml or .toml).")),
		option.New("", "defaults", option.Arg(option.Exactly(1)), option.ArgName("file"),
			option.Description("Fallback values file (.toml, .yaml, .yml or .properties).")),
		option.New("e", "env", option.Arg(option.Exactly(1)), option.ArgName("prefix"),
			option.Description("Read fallback values from PREFIX_NAME environment variables.")),
		option.New("m", "mode", option.Arg(option.Exactly(1)), option.ArgName("mode"),
			option.Description("Single dash mode: bundling, singledash or normal.")),
		option.New("", "no-partial", option.Description("Disable long option abbreviations.")),
		option.New("", "keep-quotes", option.Description("Keep surrounding double quotes in values.")),
		option.New("", "stop", option.Description("Stop parsing options at the first positional argument.")),
		option.New("", "complete", option.Description("Print completion candidates for the last argument instead of parsing.")),
		option.New("o", "output", option.Arg(option.Exactly(1)), option.ArgName("format"),
			option.Description("Output format: text or yaml.")),
	).AddGroup(option.NewGroup(pass, warn))
}

func program(args []string, stdout, stderr io.Writer) int {
	setupColor(stderr)
	red := color.New(color.FgRed)
	opts := options()
	cl, err := cliparse.Parse(opts, args[1:])
	if err != nil {
		red.Fprintf(stderr, "ERROR: %s\n", err)
		fmt.Fprint(stderr, "\n"+help.HelpSynopsis("optcheck", opts.List(), opts.Groups(), help.Width))
		return 2
	}
	if cl.Has("help") {
		fmt.Fprint(stdout, help.Help("optcheck", "check arguments against an option declaration", opts))
		return 0
	}
	if cl.Has("debug") {
		cliparse.Logger.SetOutput(stderr)
		defaults.Logger.SetOutput(stderr)
	}

	declFile, ok := cl.Value("decl")
	if !ok {
		red.Fprintf(stderr, "ERROR: "+text.ErrorMissingRequiredOption+"\n", "decl")
		return 2
	}
	target, err := decl.Load(declFile)
	if err != nil {
		red.Fprintf(stderr, "ERROR: %s\n", err)
		return 2
	}

	if cl.Has("complete") {
		for _, c := range completion.Complete(target, cl.Args()) {
			fmt.Fprintln(stdout, c)
		}
		return 0
	}

	p := cliparse.New()
	p.Writer = stderr
	if m, ok := cl.Value("mode"); ok {
		mode, ok := modes[strings.ToLower(m)]
		if !ok {
			red.Fprintf(stderr, "ERROR: unknown mode '%s'\n", m)
			return 2
		}
		p.SetMode(mode)
	}
	switch {
	case cl.Has("pass"):
		p.SetUnknownMode(cliparse.Pass)
	case cl.Has("warn"):
		p.SetUnknownMode(cliparse.Warn)
	}
	p.SetPartialMatching(!cl.Has("no-partial"))
	p.SetStripQuotes(!cl.Has("keep-quotes"))
	p.SetStopAtNonOption(cl.Has("stop"))

	var fallback cliparse.Chain
	if prefix, ok := cl.Value("env"); ok {
		fallback = append(fallback, defaults.Env(prefix))
	}
	if file, ok := cl.Value("defaults"); ok {
		src, err := defaults.Load(file)
		if err != nil {
			red.Fprintf(stderr, "ERROR: %s\n", err)
			return 2
		}
		fallback = append(fallback, src)
	}

	format := cl.ValueOr("output", "text")
	if format != "text" && format != "yaml" {
		red.Fprintf(stderr, "ERROR: unknown output format '%s'\n", format)
		return 2
	}

	var src cliparse.Source
	if len(fallback) > 0 {
		src = fallback
	}
	result, err := p.Parse(target, cl.Args(), src)
	if err != nil {
		red.Fprintf(stderr, "ERROR: %s\n", err)
		if errors.Is(err, cliparse.ErrorParsing) {
			fmt.Fprint(stderr, "\n"+help.HelpSynopsis("<program>", target.List(), target.Groups(), help.Width))
		}
		return 1
	}

	switch format {
	case "yaml":
		if err := writeYAML(stdout, result); err != nil {
			red.Fprintf(stderr, "ERROR: %s\n", err)
			return 1
		}
	default:
		writeText(stdout, result)
	}
	return 0
}

// setupColor - Disables color and picks the help width depending on the terminal.
func setupColor(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
		return
	}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		help.Width = cols
	}
}

type yamlSelection struct {
	Option   string   `yaml:"option"`
	Values   []string `yaml:"values,flow"`
	Fallback bool     `yaml:"fallback,omitempty"`
}

type yamlResult struct {
	Options []yamlSelection `yaml:"options"`
	Args    []string        `yaml:"args,flow"`
}

func writeYAML(w io.Writer, cl *cliparse.CommandLine) error {
	r := yamlResult{Options: []yamlSelection{}, Args: cl.Args()}
	for _, s := range cl.Selections() {
		r.Options = append(r.Options, yamlSelection{Option: s.Option.Key(), Values: s.Values, Fallback: s.Fallback})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, cl *cliparse.CommandLine) {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "options:")
	for _, s := range cl.Selections() {
		from := ""
		if s.Fallback {
			from = " (fallback)"
		}
		fmt.Fprintf(w, "  %s: %q%s\n", s.Option.Key(), s.Values, from)
	}
	bold.Fprintln(w, "args:")
	for _, a := range cl.Args() {
		fmt.Fprintf(w, "  %q\n", a)
	}
}
