// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cliparse

import (
	"regexp"
	"strings"
)

// TokenKind - Classification of a raw argument.
type TokenKind int

// Token kinds
const (
	PositionalToken TokenKind = iota
	LongToken
	ShortToken
	TerminatorToken
)

func (k TokenKind) String() string {
	switch k {
	case LongToken:
		return "long"
	case ShortToken:
		return "short"
	case TerminatorToken:
		return "terminator"
	default:
		return "positional"
	}
}

// Token - A classified raw argument.
//
// For long tokens Name is the option name without dashes.
// For short tokens Name holds the characters after the dash, which can be a cluster of options.
// Value holds the text after the first '=' when HasValue is set.
type Token struct {
	Kind     TokenKind
	Raw      string
	Name     string
	Value    string
	HasValue bool
}

// 1: leading dashes
// 2: option
// 3: =arg
var isOptionRegex = regexp.MustCompile(`(?s)^(--?)([^=]*)(=.*)?$`)

// tokenizer - classifies raw arguments.
// The registry is only consulted to allow numeric short options, for example `-1`.
type tokenizer struct {
	options *Options
}

/*
classify - Checks if the given string is an option.

  - "" and "-" are positionals, a lone dash is usually stdin.
  - "--" is the terminator.
  - "--name" and "--name=value" are long options.
  - "-xyz" and "-xyz=value" are short options, possibly clustered.
  - "-5" is a positional, a negative number, unless there is a "5" short option.
*/
func (t *tokenizer) classify(s string) Token {
	switch s {
	case "", "-":
		return Token{Kind: PositionalToken, Raw: s}
	case "--":
		return Token{Kind: TerminatorToken, Raw: s}
	}
	match := isOptionRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		return Token{Kind: PositionalToken, Raw: s}
	}
	tok := Token{Raw: s, Name: match[2]}
	if match[3] != "" {
		tok.HasValue = true
		tok.Value = strings.TrimPrefix(match[3], "=")
	}
	if match[1] == "--" {
		tok.Kind = LongToken
		return tok
	}
	if tok.Name == "" {
		// -=value
		return Token{Kind: PositionalToken, Raw: s}
	}
	if isDigit(tok.Name[0]) {
		if t.options == nil {
			return Token{Kind: PositionalToken, Raw: s}
		}
		if _, ok := t.options.ShortOption(tok.Name[:1]); !ok {
			return Token{Kind: PositionalToken, Raw: s}
		}
	}
	tok.Kind = ShortToken
	return tok
}

// tokenize - classifies every raw argument.
// Everything after the terminator is a positional.
func (t *tokenizer) tokenize(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	terminated := false
	for _, arg := range args {
		if terminated {
			tokens = append(tokens, Token{Kind: PositionalToken, Raw: arg})
			continue
		}
		tok := t.classify(arg)
		if tok.Kind == TerminatorToken {
			terminated = true
		}
		tokens = append(tokens, tok)
	}
	Logger.Printf("tokenize: %v\n", tokens)
	return tokens
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isNumeric - Indicates if s looks like a negative number.
func isNumeric(s string) bool {
	return len(s) > 1 && s[0] == '-' && isDigit(s[1])
}

// stripQuotes - Removes a leading and trailing double quote.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
