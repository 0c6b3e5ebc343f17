// This file is part of go-cliparse.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// trimLeft - Trims the leading c characters and returns how many were removed.
func trimLeft(s string, c byte) (int, string) {
	count := 0
	for count < len(s) && s[count] == c {
		count++
	}
	return count, s[count:]
}

// sortForCompletion - Places hidden files in the same sort position as their non hidden counterparts.
// Also used for sorting options in the same fashion.
// Example:
//
//	file.txt
//	.file.txt.~
//	.hidden.txt
//	..hidden.txt.~
//
//	-d
//	--debug
//	-h
//	--help
func sortForCompletion(list []string) {
	sort.SliceStable(list,
		func(i, j int) bool {
			an, a := trimLeft(list[i], '.')
			bn, b := trimLeft(list[j], '.')
			if a == b {
				return an < bn
			}
			an, a = trimLeft(a, '-')
			bn, b = trimLeft(b, '-')
			if a == b {
				return an < bn
			}
			return a < b
		})
}

// listDir - Given a dir and a prefix returns a list of files in the dir filtered by their prefix.
// Directories end in '/'.
// NOTE: dot (".") is a valid dirname.
func listDir(dirname string, prefix string) ([]string, error) {
	filenames := []string{}
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return filenames, err
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if e.IsDir() {
			filenames = append(filenames, name+"/")
		} else {
			filenames = append(filenames, name)
		}
	}
	sortForCompletion(filenames)
	return filenames, nil
}

// Files - Files matching a partially typed path.
// The results keep the directory part of word.
func Files(word string) ([]string, error) {
	dir, prefix := filepath.Split(word)
	dirname := dir
	if dirname == "" {
		dirname = "."
	}
	list, err := listDir(dirname, prefix)
	if err != nil {
		return list, err
	}
	for i := range list {
		list[i] = dir + list[i]
	}
	return list, nil
}
