// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package convert - Converts option values into typed values.

The parser only carries the converter tag of an option, values are converted
after parsing by looking the tag up here.

	|===
	|Tag       |Result
	|string    |string (also the empty tag)
	|int       |int
	|float64   |float64
	|bool      |bool
	|int-range |[]int, `1..3` expands to 1, 2, 3 and `1,4` to 1, 4
	|key=value |map[string]string
	|duration  |time.Duration
	|url       |*url.URL
	|file      |string, the path must exist
	|===
*/
package convert

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/DavidGamba/go-cliparse/text"
)

// Func - Converts the value of the option name.
type Func func(name, value string) (interface{}, error)

// Error - Conversion failure.
type Error struct {
	Tag   string
	Name  string
	Value string
	Err   error
	msg   string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.Err }

func newError(tag, name, value string, err error, format string, a ...interface{}) *Error {
	return &Error{Tag: tag, Name: name, Value: value, Err: err, msg: fmt.Sprintf(format, a...)}
}

var (
	mu         sync.RWMutex
	converters = map[string]Func{}
)

func init() {
	Register("string", toString)
	Register("int", toInt)
	Register("float64", toFloat64)
	Register("bool", toBool)
	Register("int-range", toIntRange)
	Register("key=value", toKeyValue)
	Register("duration", toDuration)
	Register("url", toURL)
	Register("file", toFile)
}

// Register - Sets the converter for tag, replacing any existing one.
func Register(tag string, fn Func) {
	if fn == nil {
		panic(fmt.Sprintf("converter for '%s' can't be nil", tag))
	}
	mu.Lock()
	defer mu.Unlock()
	converters[tag] = fn
}

// Tags - Registered tags, sorted.
func Tags() []string {
	mu.RLock()
	defer mu.RUnlock()
	tags := make([]string, 0, len(converters))
	for k := range converters {
		tags = append(tags, k)
	}
	sort.Strings(tags)
	return tags
}

// Convert - Converts value with the converter registered for tag.
// The empty tag returns value unchanged.
func Convert(tag, name, value string) (interface{}, error) {
	if tag == "" {
		return value, nil
	}
	mu.RLock()
	fn, ok := converters[tag]
	mu.RUnlock()
	if !ok {
		return nil, newError(tag, name, value, nil, text.ErrorUnknownConverter, tag, name)
	}
	return fn(name, value)
}

func toString(name, value string) (interface{}, error) {
	return value, nil
}

func toInt(name, value string) (interface{}, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return nil, newError("int", name, value, err, text.ErrorConvertToInt, name, value)
	}
	return i, nil
}

func toFloat64(name, value string) (interface{}, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, newError("float64", name, value, err, text.ErrorConvertToFloat64, name, value)
	}
	return f, nil
}

func toBool(name, value string) (interface{}, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, newError("bool", name, value, err, text.ErrorConvertToBool, name, value)
	}
	return b, nil
}

// toIntRange - Comma separated list of ints and ranges: `1..3,7`.
func toIntRange(name, value string) (interface{}, error) {
	ii := []int{}
	for _, e := range strings.Split(value, ",") {
		if !strings.Contains(e, "..") {
			i, err := strconv.Atoi(e)
			if err != nil {
				return nil, newError("int-range", name, value, err, text.ErrorConvertToInt, name, e)
			}
			ii = append(ii, i)
			continue
		}
		n := strings.SplitN(e, "..", 2)
		in1, err := strconv.Atoi(n[0])
		if err != nil {
			return nil, newError("int-range", name, value, err, text.ErrorConvertToInt, name, e)
		}
		in2, err := strconv.Atoi(n[1])
		if err != nil {
			return nil, newError("int-range", name, value, err, text.ErrorConvertToInt, name, e)
		}
		if in1 >= in2 {
			return nil, newError("int-range", name, value, nil, text.ErrorConvertToInt, name, e)
		}
		for j := in1; j <= in2; j++ {
			ii = append(ii, j)
		}
	}
	return ii, nil
}

func toKeyValue(name, value string) (interface{}, error) {
	kv := strings.SplitN(value, "=", 2)
	if len(kv) < 2 {
		return nil, newError("key=value", name, value, nil, text.ErrorArgumentIsNotKeyValue, name)
	}
	return map[string]string{kv[0]: kv[1]}, nil
}

func toDuration(name, value string) (interface{}, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return nil, newError("duration", name, value, err, text.ErrorConvertToDuration, name, value)
	}
	return d, nil
}

func toURL(name, value string) (interface{}, error) {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return nil, newError("url", name, value, err, text.ErrorConvertToURL, name, value)
	}
	return u, nil
}

func toFile(name, value string) (interface{}, error) {
	if _, err := os.Stat(value); err != nil {
		return nil, newError("file", name, value, err, text.ErrorConvertToFile, name, value)
	}
	return value, nil
}
