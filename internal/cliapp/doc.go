// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cliapp is the command dispatcher.
//
// An App turns the command line into an exit code: it parses the arguments against
// a tree of urfave/cli commands, configures logging from the number of -v flags,
// runs the selected command and classifies any error that escapes it with the
// exitcode package. Errors are reported in exactly one place, App.Run.
//
// The command tree is built from constructors on every run because urfave/cli
// flags keep state between runs.
package cliapp
