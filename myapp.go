// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package myapp provides the version and commit information for the myapp application.
package myapp

var (
	// Version is set during the build process.
	Version = "0.1.0"
	// Commit is set during the build process.
	Commit = "unknown"
)
