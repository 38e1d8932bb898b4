// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cliapp

import (
	"strconv"
	"strings"
)

// versionRequested reports whether the version flag appears in args before
// any "--". It is checked ahead of parsing so that the version is printed
// whatever else is on the command line.
func versionRequested(args []string) bool {
	if len(args) < 2 {
		return false
	}

	for _, arg := range args[1:] {
		switch {
		case arg == "--":
			return false
		case arg == "--"+FlagVersion:
			return true
		case strings.HasPrefix(arg, "--"+FlagVersion+"="):
			v, err := strconv.ParseBool(strings.TrimPrefix(arg, "--"+FlagVersion+"="))
			if err == nil && v {
				return true
			}
		case isShortGroup(arg) && strings.ContainsRune(arg, 'V'):
			return true
		}
	}

	return false
}

// isShortGroup reports whether arg is a single dash followed by letters, like -vV.
func isShortGroup(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}

	for _, c := range arg[1:] {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}
