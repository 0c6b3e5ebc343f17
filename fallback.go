// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cliparse

import (
	"os"
	"strings"

	"github.com/DavidGamba/go-cliparse/option"
)

// Source - Fallback values for options not given on the command line.
// See the defaults package for file and environment sources.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource - Source backed by a map.
type MapSource map[string]string

// Lookup - implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// SourceFunc - Adapter to use a function as a Source.
type SourceFunc func(key string) (string, bool)

// Lookup - implements Source.
func (fn SourceFunc) Lookup(key string) (string, bool) {
	return fn(key)
}

// Chain - Looks up each source in order and returns the first hit.
type Chain []Source

// Lookup - implements Source.
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// EnvSource - Source backed by environment variables.
// The key `dry-run` with prefix `APP` is looked up as `APP_DRY_RUN`.
type EnvSource struct {
	Prefix string
}

// Lookup - implements Source.
func (e EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(EnvName(e.Prefix, key))
}

// EnvName - Environment variable name for key.
func EnvName(prefix, key string) string {
	name := strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}

// lookupFallback - Looks up the long name first and then the short name.
func lookupFallback(src Source, opt *option.Option) (string, bool) {
	if opt.Long() != "" {
		if v, ok := src.Lookup(opt.Long()); ok {
			return v, true
		}
	}
	if opt.Short() != "" {
		return src.Lookup(opt.Short())
	}
	return "", false
}

// isTruthy - "true", "yes" and "1" in any case.
func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true
	}
	return false
}
