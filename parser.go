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
	"io"
	"log"
	"os"

	"github.com/DavidGamba/go-cliparse/internal/sliceiterator"
	"github.com/DavidGamba/go-cliparse/option"
	"github.com/DavidGamba/go-cliparse/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Mode - Operation mode for tokens starting with a single dash.
type Mode int

// Operation modes
const (
	// Bundling - `-abc` is `-a -b -c`, the first option taking a value absorbs the rest: `-ofile`.
	Bundling Mode = iota
	// SingleDash - The first character is the option and the rest is its value: `-Dkey=value`.
	SingleDash
	// Normal - The whole token is one name, either a short name or a long name: `-a`, `-file`.
	Normal
)

func (m Mode) String() string {
	switch m {
	case SingleDash:
		return "singleDash"
	case Normal:
		return "normal"
	default:
		return "bundling"
	}
}

// UnknownMode - Unknown option mode
type UnknownMode int

// Unknown option modes - Action taken when an unknown option is encountered.
const (
	Fail UnknownMode = iota
	Warn
	Pass
)

// Parser - Parse configuration.
// A Parser keeps no state between calls to Parse.
type Parser struct {
	Writer io.Writer // io.Writer to write warnings to. Defaults to os.Stderr.

	mode            Mode
	unknownMode     UnknownMode
	partial         bool
	stripQuotes     bool
	stopAtNonOption bool

	deprecatedHandler func(opt *option.Option)
}

// New - Returns a Parser with the default configuration:
// bundling mode, partial long matching, quote stripping and failing on unknown options.
func New() *Parser {
	return &Parser{
		Writer:      os.Stderr,
		partial:     true,
		stripQuotes: true,
	}
}

// Parse - Parses args with the default configuration.
func Parse(opts *Options, args []string) (*CommandLine, error) {
	return New().Parse(opts, args, nil)
}

// SetMode - Sets the Operation Mode.
// The operation mode only affects tokens starting with a single dash '-'.
//
// The following table shows the different operation modes given the string "-opt=arg"
// when o, p and t are options without arguments:
//
//	.Operation Modes for string "-opt=arg"
//	|===
//	|Mode             |Description
//
//	|bundling         |option: o
//	                   option: p
//	                   option: t
//	                   argument: arg, error unless t takes a value
//
//	|singleDash       |option: o
//	                   argument: pt=arg, error unless o takes a value
//
//	|normal           |option: opt
//	                   argument: arg
//	|===
func (p *Parser) SetMode(mode Mode) *Parser {
	p.mode = mode
	return p
}

// SetUnknownMode - Determines how to behave when encountering an unknown option.
//
// • 'fail' (default) will make 'Parse' return an error with the unknown option information.
//
// • 'warn' will make 'Parse' print a user warning indicating there was an unknown option.
// The unknown option will be left in the positional arguments.
//
// • 'pass' will make 'Parse' ignore any unknown options and they will be passed onto the positional arguments.
func (p *Parser) SetUnknownMode(mode UnknownMode) *Parser {
	p.unknownMode = mode
	return p
}

// SetPartialMatching - Allows long options to be abbreviated, for example `--ver` for `--version`.
// Enabled by default.
func (p *Parser) SetPartialMatching(b bool) *Parser {
	p.partial = b
	return p
}

// SetStripQuotes - Removes surrounding double quotes from option values.
// Enabled by default.
func (p *Parser) SetStripQuotes(b bool) *Parser {
	p.stripQuotes = b
	return p
}

// SetStopAtNonOption - Stop parsing options at the first positional argument or unknown option.
// Every argument from there on is left in the positional arguments.
func (p *Parser) SetStopAtNonOption(b bool) *Parser {
	p.stopAtNonOption = b
	return p
}

// SetDeprecatedHandler - Called each time a deprecated option is given on the command line.
// By default a warning is written to Writer.
func (p *Parser) SetDeprecatedHandler(fn func(opt *option.Option)) *Parser {
	p.deprecatedHandler = fn
	return p
}

// Parse - Parses args against the declared options.
//
// fallback, when not nil, provides values for options not given in args.
// Required options and groups are checked after the fallback values are applied.
func (p *Parser) Parse(opts *Options, args []string, fallback Source) (*CommandLine, error) {
	if opts == nil {
		opts = NewOptions()
	}
	Logger.Printf("Parse args: %v(%d), mode: %s\n", args, len(args), p.mode)
	s := &session{
		Parser:  p,
		options: opts,
		cl:      newCommandLine(),
	}
	t := &tokenizer{options: opts}
	s.tokens = sliceiterator.New(t.tokenize(args))
	if err := s.run(); err != nil {
		Logger.Printf("return %v\n", err)
		return nil, err
	}
	if fallback != nil {
		s.applyFallback(fallback)
	}
	if err := validate(opts, s.cl); err != nil {
		s.state = failed
		return nil, err
	}
	s.state = done
	Logger.Printf("return %s\n", s.cl)
	return s.cl, nil
}

type parseState int

const (
	scanning parseState = iota
	terminated
	failed
	done
)

// session - State of a single parse.
type session struct {
	*Parser
	options *Options
	tokens  *sliceiterator.Iterator[Token]
	cl      *CommandLine
	state   parseState
}

func (s *session) run() error {
	for s.tokens.Next() {
		t := s.tokens.Value()
		Logger.Printf("token: %s %q\n", t.Kind, t.Raw)
		var err error
		switch t.Kind {
		case TerminatorToken:
			s.state = terminated
		case PositionalToken:
			s.cl.addArg(t.Raw)
			if s.stopAtNonOption {
				s.state = terminated
			}
		case LongToken:
			err = s.handleLong(t)
		case ShortToken:
			err = s.handleShort(t)
		}
		if err != nil {
			s.state = failed
			return err
		}
		if s.state == terminated {
			for _, rest := range s.tokens.Rest() {
				s.cl.addArg(rest.Raw)
			}
		}
	}
	return nil
}

func (s *session) handleLong(t Token) error {
	res := s.options.ResolveLong(t.Name, s.partial)
	switch res.Kind {
	case AmbiguousMatch:
		return &AmbiguousOptionError{Token: "--" + t.Name, Candidates: res.Candidates}
	case NoMatch:
		return s.unknown(t.Raw)
	}
	return s.attach(res.Option(), t)
}

// attach - Handles an option where the whole token is the option name and an optional '=' value.
func (s *session) attach(opt *option.Option, t Token) error {
	if t.HasValue && !opt.HasArg() {
		return s.unknown(t.Raw)
	}
	return s.handleOption(opt, t.Value, t.HasValue)
}

func (s *session) handleShort(t Token) error {
	runes := []rune(t.Name)
	short, hasShort := s.options.ShortOption(string(runes[0]))

	if s.mode == Normal {
		if len(runes) == 1 && hasShort {
			return s.attach(short, t)
		}
		if opt, ok := s.options.LongOption(t.Name); ok {
			return s.attach(opt, t)
		}
		return s.unknown(t.Raw)
	}

	if !hasShort {
		// Single dash long option: -file
		if opt, ok := s.options.LongOption(t.Name); ok {
			Logger.Printf("single dash long option: %s\n", t.Raw)
			return s.attach(opt, t)
		}
		return s.unknown(t.Raw)
	}

	if s.mode == SingleDash {
		if short.HasArg() {
			value, has := inlineValue(string(runes[1:]), t)
			return s.handleOption(short, value, has)
		}
		if len(runes) > 1 || t.HasValue {
			return s.unknown(t.Raw)
		}
		return s.handleOption(short, "", false)
	}
	return s.burst(t, runes)
}

// burst - Handles a cluster of short options.
// Options without arguments are resolved one character at a time until one takes a value,
// that one absorbs the rest of the token.
// Nothing is recorded unless the whole cluster is valid.
func (s *session) burst(t Token, runes []rune) error {
	flags := []*option.Option{}
	commit := func() error {
		for _, f := range flags {
			if err := s.handleOption(f, "", false); err != nil {
				return err
			}
		}
		return nil
	}
	for i, r := range runes {
		opt, ok := s.options.ShortOption(string(r))
		if !ok {
			if s.stopAtNonOption {
				if err := commit(); err != nil {
					return err
				}
				rest := "-" + string(runes[i:])
				if t.HasValue {
					rest += "=" + t.Value
				}
				Logger.Printf("stop at non option in cluster %s: %s\n", t.Raw, rest)
				s.cl.addArg(rest)
				s.state = terminated
				return nil
			}
			return s.unknown(t.Raw)
		}
		if opt.HasArg() {
			if err := commit(); err != nil {
				return err
			}
			value, has := inlineValue(string(runes[i+1:]), t)
			return s.handleOption(opt, value, has)
		}
		flags = append(flags, opt)
	}
	if t.HasValue {
		// -ab=value where no option takes a value.
		return s.unknown(t.Raw)
	}
	return commit()
}

// inlineValue - Joins the rest of a short token with its '=' value.
func inlineValue(rest string, t Token) (string, bool) {
	switch {
	case rest != "" && t.HasValue:
		return rest + "=" + t.Value, true
	case rest != "":
		return rest, true
	case t.HasValue:
		return t.Value, true
	}
	return "", false
}

// handleOption - Collects the option values and records the selection.
func (s *session) handleOption(opt *option.Option, inline string, hasInline bool) error {
	arity := opt.Arity()
	values := []string{}
	if hasInline {
		values = append(values, s.splitValue(opt, inline, 0)...)
	}

	for arity.Max() < 0 || len(values) < arity.Max() {
		next, ok := s.tokens.PeekNextValue()
		if !ok || s.stopsConsumption(opt, next) {
			break
		}
		s.tokens.Next()
		values = append(values, s.splitValue(opt, next.Raw, len(values))...)
	}

	if len(values) < arity.Min() {
		return &MissingArgumentError{Option: opt}
	}

	if g := s.options.GroupOf(opt); g != nil {
		if prev, ok := s.cl.selected[g]; ok && prev != opt {
			return &AlreadySelectedError{Group: g, Previous: prev, Option: opt}
		}
		s.cl.selected[g] = opt
	}
	if opt.IsDeprecated() {
		s.deprecated(opt)
	}
	Logger.Printf("option %s values: %q\n", opt, values)
	s.cl.addSelection(opt, values, false)
	return nil
}

// stopsConsumption - Indicates if the next token ends the values of opt.
//
// Only the terminator and tokens resolving to a known option stop it.
// Negative numbers are always values.
func (s *session) stopsConsumption(opt *option.Option, next Token) bool {
	switch next.Kind {
	case TerminatorToken:
		return true
	case PositionalToken:
		return false
	}
	if isNumeric(next.Raw) {
		return false
	}
	if s.options.isKnown(next, s.mode, s.partial) {
		return true
	}
	return s.stopAtNonOption && opt.Arity().IsUnbounded()
}

func (s *session) value(v string) string {
	if s.stripQuotes {
		return stripQuotes(v)
	}
	return v
}

// splitValue - Splits v into at most the number of values opt still takes, the last one keeps the rest of v.
func (s *session) splitValue(opt *option.Option, v string, have int) []string {
	n := -1
	if m := opt.Arity().Max(); m > 0 {
		n = m - have
	}
	return opt.SplitValue(s.value(v), n)
}

func (s *session) deprecated(opt *option.Option) {
	if s.deprecatedHandler != nil {
		s.deprecatedHandler(opt)
		return
	}
	if s.Writer != nil {
		fmt.Fprintln(s.Writer, opt.DeprecatedString())
	}
}

// unknown - Applies the unknown option mode to raw.
func (s *session) unknown(raw string) error {
	if s.stopAtNonOption {
		Logger.Printf("stop at non option: %s\n", raw)
		s.cl.addArg(raw)
		s.state = terminated
		return nil
	}
	switch s.unknownMode {
	case Warn:
		if s.Writer != nil {
			fmt.Fprintf(s.Writer, text.WarningUnknownOption+"\n", raw)
		}
		s.cl.addArg(raw)
		return nil
	case Pass:
		s.cl.addArg(raw)
		return nil
	}
	return &UnrecognizedOptionError{Token: raw}
}

// applyFallback - Adds selections from src for options that weren't given.
//
// Options without arguments are selected when the value is "true", "yes" or "1".
// Options with arguments take the value verbatim.
// A group member already selected on the command line keeps the others out.
func (s *session) applyFallback(src Source) {
	for _, opt := range s.options.List() {
		if s.cl.count(opt) > 0 {
			continue
		}
		value, ok := lookupFallback(src, opt)
		if !ok {
			continue
		}
		g := s.options.GroupOf(opt)
		if g != nil {
			if prev, ok := s.cl.selected[g]; ok && prev != opt {
				Logger.Printf("fallback %s skipped, group selection: %s\n", opt, prev)
				continue
			}
		}
		switch {
		case opt.HasArg():
			s.cl.addSelection(opt, []string{value}, true)
		case isTruthy(value):
			s.cl.addSelection(opt, nil, true)
		default:
			continue
		}
		if g != nil {
			s.cl.selected[g] = opt
		}
		Logger.Printf("fallback %s: %q\n", opt, value)
	}
}
