// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	opt := New("b", "bfile", Arg(Exactly(1)), Required(), Converter("file"), Description("input file"), ArgName("file"))
	if opt.Short() != "b" || opt.Long() != "bfile" || opt.Key() != "b" {
		t.Errorf("wrong names: %q %q %q", opt.Short(), opt.Long(), opt.Key())
	}
	if !opt.IsRequired() || !opt.HasArg() || opt.Arity() != Exactly(1) {
		t.Errorf("wrong attributes: %v %v %v", opt.IsRequired(), opt.HasArg(), opt.Arity())
	}
	if opt.Converter() != "file" || opt.Description() != "input file" || opt.ArgName() != "file" {
		t.Errorf("wrong help attributes: %q %q %q", opt.Converter(), opt.Description(), opt.ArgName())
	}
	if opt.String() != "-b|--bfile" {
		t.Errorf("wrong string: %s", opt.String())
	}

	long := New("", "version")
	if long.Key() != "version" || long.HasArg() || long.IsRequired() {
		t.Errorf("wrong long only option: %s", long)
	}
	if !reflect.DeepEqual(long.Names(), []string{"--version"}) {
		t.Errorf("wrong names: %v", long.Names())
	}
}

func TestNewPanics(t *testing.T) {
	tests := []struct {
		name  string
		short string
		long  string
		attrs []Attr
	}{
		{"no names", "", "", nil},
		{"long short", "ab", "", nil},
		{"space", " ", "", nil},
		{"quote", "\"", "", nil},
		{"single quote", "'", "", nil},
		{"dash", "-", "", nil},
		{"equals", "=", "", nil},
		{"long with equals", "", "a=b", nil},
		{"long with space", "", "a b", nil},
		{"long with dash prefix", "", "-ab", nil},
		{"long single char", "", "a", nil},
		{"exactly zero", "a", "", []Attr{Arg(Exactly(0))}},
		{"negative optional", "a", "", []Attr{Arg(OptionalExactly(-1))}},
		{"separator without arg", "a", "", []Attr{Separator(',')}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("definition didn't panic")
				}
			}()
			New(tt.short, tt.long, tt.attrs...)
		})
	}
}

func TestValidate(t *testing.T) {
	for _, s := range []string{"a", "Z", "1", "?", "@", "ñ"} {
		if err := Validate(s, ""); err != nil {
			t.Errorf("unexpected error for %q: %s", s, err)
		}
	}
	for _, l := range []string{"bfile", "dry-run", "a_b", "x.y"} {
		if err := Validate("", l); err != nil {
			t.Errorf("unexpected error for %q: %s", l, err)
		}
	}
}

func TestSplitValue(t *testing.T) {
	opt := New("J", "", Arg(Exactly(2)), Separator('='))
	plain := New("j", "", Arg(Exactly(1)))
	tests := []struct {
		name     string
		opt      *Option
		value    string
		n        int
		expected []string
	}{
		{"split", opt, "source=1.5", 2, []string{"source", "1.5"}},
		{"rest kept", opt, "url=http://h/?a=b", 2, []string{"url", "http://h/?a=b"}},
		{"unlimited", opt, "a=b=c", -1, []string{"a", "b", "c"}},
		{"one", opt, "a=b", 1, []string{"a=b"}},
		{"zero", opt, "a=b", 0, []string{"a=b"}},
		{"no separator", plain, "source=1.5", 2, []string{"source=1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.SplitValue(tt.value, tt.n); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitValue(%q, %d) = %q, want %q", tt.value, tt.n, got, tt.expected)
			}
		})
	}
}

func TestArity(t *testing.T) {
	tests := []struct {
		in         string
		arity      Arity
		min, max   int
		optional   bool
		takesValue bool
	}{
		{"", None(), 0, 0, true, false},
		{"0", None(), 0, 0, true, false},
		{"1", Exactly(1), 1, 1, false, true},
		{"3", Exactly(3), 3, 3, false, true},
		{"+", Unbounded(), 1, -1, false, true},
		{"?", OptionalExactly(1), 0, 1, true, true},
		{"?0", OptionalExactly(0), 0, 0, true, true},
		{"?2", OptionalExactly(2), 0, 2, true, true},
		{"*", OptionalUnbounded(), 0, -1, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := ParseArity(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if a != tt.arity {
				t.Errorf("ParseArity(%q) = %v, want %v", tt.in, a, tt.arity)
			}
			if a.Min() != tt.min || a.Max() != tt.max {
				t.Errorf("min/max = %d/%d, want %d/%d", a.Min(), a.Max(), tt.min, tt.max)
			}
			if a.IsOptional() != tt.optional || a.TakesValue() != tt.takesValue {
				t.Errorf("optional/takes = %v/%v, want %v/%v", a.IsOptional(), a.TakesValue(), tt.optional, tt.takesValue)
			}
		})
	}
	if OptionalExactly(0) == None() {
		t.Errorf("OptionalExactly(0) and None should be distinct")
	}
	for _, in := range []string{"x", "-1", "?x", "??"} {
		if _, err := ParseArity(in); err == nil {
			t.Errorf("ParseArity(%q) expected error", in)
		}
	}
	for _, a := range []Arity{None(), Exactly(2), Unbounded(), OptionalExactly(1), OptionalExactly(3), OptionalUnbounded()} {
		b, err := ParseArity(a.String())
		if err != nil || a != b {
			t.Errorf("arity %v doesn't survive String: %v, %v", a, b, err)
		}
	}
}

func TestGroup(t *testing.T) {
	file := New("f", "file")
	dir := New("d", "directory")
	other := New("o", "other")
	g := NewGroup(file, dir)
	if g.IsRequired() {
		t.Errorf("group shouldn't be required")
	}
	if !g.Contains(file) || !g.Contains(dir) || g.Contains(other) {
		t.Errorf("wrong membership")
	}
	if !reflect.DeepEqual(g.Members(), []*Option{file, dir}) {
		t.Errorf("wrong members: %v", g.Members())
	}
	if g.String() != "[f, d]" {
		t.Errorf("wrong string: %s", g.String())
	}
	if !NewRequiredGroup(file, dir).IsRequired() {
		t.Errorf("group should be required")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("repeated member didn't panic")
		}
	}()
	NewGroup(file, file)
}

func TestDeprecation(t *testing.T) {
	tests := []struct {
		name     string
		opt      *Option
		expected string
	}{
		{"not deprecated", New("a", ""), ""},
		{"bare", New("b", "", Deprecated(Deprecation{})), "Option 'b': Deprecated"},
		{"since", New("", "cc", Deprecated(Deprecation{Since: "1.5"})), "Option 'cc': Deprecated since 1.5"},
		{"full", New("c", "", Deprecated(Deprecation{Since: "2.0", ForRemoval: true, Description: "Use X."})),
			"Option 'c': Deprecated for removal since 2.0: Use X."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.DeprecatedString(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
			if tt.opt.IsDeprecated() != (tt.expected != "") {
				t.Errorf("wrong IsDeprecated: %v", tt.opt.IsDeprecated())
			}
		})
	}
}
