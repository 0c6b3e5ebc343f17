// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package defaults

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DavidGamba/go-cliparse"
	"github.com/DavidGamba/go-cliparse/option"
	"github.com/google/go-cmp/cmp"
)

func TestReaders(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) (cliparse.MapSource, error)
		input    string
		expected cliparse.MapSource
	}{
		{
			"toml",
			func(s string) (cliparse.MapSource, error) { return FromTOML(strings.NewReader(s)) },
			`
file = "input.txt"
verbose = true
count = 3
tags = ["a", "b"]

[log]
level = "debug"
`,
			cliparse.MapSource{"file": "input.txt", "verbose": "true", "count": "3", "tags": "a,b", "log.level": "debug"},
		},
		{
			"yaml",
			func(s string) (cliparse.MapSource, error) { return FromYAML(strings.NewReader(s)) },
			`
file: input.txt
verbose: true
count: 3
empty:
tags: [a, b]
log:
  level: debug
`,
			cliparse.MapSource{"file": "input.txt", "verbose": "true", "count": "3", "empty": "", "tags": "a,b", "log.level": "debug"},
		},
		{
			"yaml empty",
			func(s string) (cliparse.MapSource, error) { return FromYAML(strings.NewReader(s)) },
			``,
			cliparse.MapSource{},
		},
		{
			"properties",
			func(s string) (cliparse.MapSource, error) { return FromProperties(strings.NewReader(s)) },
			`
# comment
file = input.txt
verbose=true
log.level: debug
`,
			cliparse.MapSource{"file": "input.txt", "verbose": "true", "log.level": "debug"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReaderErrors(t *testing.T) {
	if _, err := FromTOML(strings.NewReader("file = ")); err == nil {
		t.Errorf("expected toml error")
	}
	if _, err := FromYAML(strings.NewReader("- a\n- b\n")); err == nil {
		t.Errorf("expected yaml error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	for _, path := range []string{
		write("a.toml", `file = "x"`),
		write("a.yaml", `file: x`),
		write("a.YML", `file: x`),
		write("a.properties", `file=x`),
	} {
		m, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error for %s: %s", path, err)
		}
		if diff := cmp.Diff(cliparse.MapSource{"file": "x"}, m); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
		}
	}
	if _, err := Load(write("a.ini", "file=x")); err == nil {
		t.Errorf("expected unsupported extension error")
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("expected missing file error")
	}
}

func TestEnv(t *testing.T) {
	t.Setenv("MYAPP_DRY_RUN", "yes")
	t.Setenv("MYAPP_F", "from-env")
	src := Env("myapp")
	if v, ok := src.Lookup("dry-run"); !ok || v != "yes" {
		t.Errorf("wrong lookup: %q %v", v, ok)
	}
	if _, ok := src.Lookup("missing"); ok {
		t.Errorf("unexpected lookup")
	}

	opts := cliparse.NewOptions().Add(
		option.New("", "dry-run"),
		option.New("f", "file", option.Arg(option.Exactly(1))),
	)
	cl, err := cliparse.New().Parse(opts, []string{}, src)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !cl.Has("dry-run") || cl.ValueOr("f", "") != "from-env" {
		t.Errorf("wrong result: %s", cl)
	}
}

func TestParseWithFileDefaults(t *testing.T) {
	src, err := FromTOML(strings.NewReader(`
bfile = "from-file"
verbose = "no"
`))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	opts := cliparse.NewOptions().Add(
		option.New("b", "bfile", option.Arg(option.Exactly(1)), option.Required()),
		option.New("", "verbose"),
	)
	cl, err := cliparse.New().Parse(opts, []string{}, cliparse.Chain{Env("nope_prefix"), src})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cl.ValueOr("bfile", "") != "from-file" || cl.Has("verbose") {
		t.Errorf("wrong result: %s", cl)
	}
}
