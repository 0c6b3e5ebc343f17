// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package defaults - Fallback value sources for cliparse.

Files are read into a flat key to value map, keys match the long or short
option names:

	# defaults.toml
	file = "input.txt"
	verbose = true

	[log]
	level = "debug" # key: log.level

Nested tables are flattened with '.' and lists are joined with ','.
*/
package defaults

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/DavidGamba/go-cliparse"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// FromTOML - Reads a TOML document.
func FromTOML(r io.Reader) (cliparse.MapSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := map[string]interface{}{}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse toml defaults: %w", err)
	}
	return flatten(doc), nil
}

// FromYAML - Reads a YAML document with a mapping at the top level.
func FromYAML(r io.Reader) (cliparse.MapSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml defaults: %w", err)
	}
	return flatten(doc), nil
}

// FromProperties - Reads a Java properties document.
// Variable expansion `${key}` is done by the properties library.
func FromProperties(r io.Reader) (cliparse.MapSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties defaults: %w", err)
	}
	m := cliparse.MapSource{}
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		m[k] = v
	}
	Logger.Printf("properties defaults: %v\n", m)
	return m, nil
}

// Load - Reads a defaults file by extension: .toml, .yaml, .yml or .properties.
func Load(path string) (cliparse.MapSource, error) {
	var fn func(io.Reader) (cliparse.MapSource, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		fn = FromTOML
	case ".yaml", ".yml":
		fn = FromYAML
	case ".properties":
		fn = FromProperties
	default:
		return nil, fmt.Errorf("unsupported defaults file extension: '%s'", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open defaults file: %w", err)
	}
	defer f.Close()
	Logger.Printf("loading defaults: %s\n", path)
	return fn(f)
}

// Env - Source reading `PREFIX_NAME` environment variables.
// The option `dry-run` with prefix `app` reads `APP_DRY_RUN`.
func Env(prefix string) cliparse.Source {
	return cliparse.EnvSource{Prefix: prefix}
}

func flatten(doc map[string]interface{}) cliparse.MapSource {
	m := cliparse.MapSource{}
	flattenInto(m, "", doc)
	Logger.Printf("defaults: %v\n", m)
	return m
}

func flattenInto(m cliparse.MapSource, prefix string, v interface{}) {
	key := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch t := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(m, key(k), t[k])
		}
	case map[interface{}]interface{}:
		for k, e := range t {
			flattenInto(m, key(fmt.Sprint(k)), e)
		}
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, scalar(e))
		}
		m[prefix] = strings.Join(parts, ",")
	default:
		m[prefix] = scalar(t)
	}
}

func scalar(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
