// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cliapp

import (
	"github.com/urfave/cli/v3"
)

// ParsedArgs is a serialisable view of a parsed command line.
type ParsedArgs struct {
	Command   string         `json:"command" yaml:"command" toml:"command"`
	Verbosity int            `json:"verbosity" yaml:"verbosity" toml:"verbosity"`
	Flags     map[string]any `json:"flags" yaml:"flags" toml:"flags"`
	Args      map[string]any `json:"args" yaml:"args" toml:"args"`
}

// Snapshot collects the flags and arguments of cmd and its parents.
// Flags of cmd take precedence over flags of the same name on a parent.
func Snapshot(cmd *cli.Command) ParsedArgs {
	p := ParsedArgs{
		Command:   cmd.FullName(),
		Verbosity: cmd.Count(FlagVerbose),
		Flags:     map[string]any{},
		Args:      map[string]any{},
	}

	for _, c := range cmd.Lineage() {
		for _, f := range c.Flags {
			name := f.Names()[0]
			if name == helpName {
				continue
			}

			if _, ok := p.Flags[name]; ok {
				continue
			}

			p.Flags[name] = normalise(f.Get())
		}
	}

	for _, arg := range cmd.Arguments {
		if name := argName(arg); name != "" {
			p.Args[name] = normalise(arg.Get())
		}
	}

	return p
}

func argName(arg cli.Argument) string {
	switch a := arg.(type) {
	case *cli.StringArg:
		return a.Name
	case *cli.StringArgs:
		return a.Name
	case *cli.IntArg:
		return a.Name
	case *cli.IntArgs:
		return a.Name
	default:
		return ""
	}
}

// normalise replaces nil values so every output format can encode them.
func normalise(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case []string:
		if t == nil {
			return []string{}
		}
	case []int:
		if t == nil {
			return []int{}
		}
	}

	return v
}
