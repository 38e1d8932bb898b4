// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exitcode maps errors that escape a command to a process exit code.
//
// Errors fall into two tiers. User-facing errors belong to a closed set of kinds
// (permission denied, file exists, file not found, interrupted, is a directory,
// not a directory, timeout and the generic application error). Each carries an exit
// code and an optional advisory string. Everything else is an internal error and
// exits with ExitInternal.
package exitcode
