// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cliapp

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

// helpCommand prints the help of its parent, or of the named sibling.
func (r *run) helpCommand() *cli.Command {
	return &cli.Command{
		Name:         helpName,
		Aliases:      []string{"h"},
		Usage:        "Shows a list of commands or help for one command",
		ArgsUsage:    "[command]",
		HideHelp:     true,
		OnUsageError: r.onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			parent := cmd.Lineage()[1]

			if !cmd.Args().Present() {
				printHelp(cmd.Root().Writer, parent)
				return nil
			}

			name := cmd.Args().First()

			target := parent.Command(name)
			if target == nil || target == cmd {
				return r.onUsageError(ctx, parent, fmt.Errorf("no help topic for %q", name), true)
			}

			printHelp(cmd.Root().Writer, target)

			return nil
		},
	}
}

// printHelp renders the help of cmd with the template urfave/cli uses for its kind.
func printHelp(w io.Writer, cmd *cli.Command) {
	tmpl := cli.CommandHelpTemplate

	switch {
	case cmd.Root() == cmd:
		tmpl = cli.RootCommandHelpTemplate
	case len(cmd.VisibleCommands()) > 0:
		tmpl = cli.SubcommandHelpTemplate
	}

	cli.HelpPrinter(w, tmpl, cmd)
}
