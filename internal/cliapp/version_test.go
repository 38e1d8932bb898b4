// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cliapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionRequested(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{args: nil, want: false},
		{args: []string{"myapp"}, want: false},
		{args: []string{"myapp", "--version"}, want: true},
		{args: []string{"myapp", "-V"}, want: true},
		{args: []string{"myapp", "-vvV"}, want: true},
		{args: []string{"myapp", "-v"}, want: false},
		{args: []string{"myapp", "hello", "--version"}, want: true},
		{args: []string{"myapp", "--version=true"}, want: true},
		{args: []string{"myapp", "--version=false"}, want: false},
		{args: []string{"myapp", "--version=maybe"}, want: false},
		{args: []string{"myapp", "--", "--version"}, want: false},
		{args: []string{"myapp", "--versions"}, want: false},
		{args: []string{"myapp", "-V1"}, want: false},
		{args: []string{"myapp", "-"}, want: false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, versionRequested(tc.args), "%q", tc.args)
	}
}
