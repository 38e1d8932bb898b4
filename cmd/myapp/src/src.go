// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package src contains the src command group.
package src

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewCommand returns the src command group.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    "src",
		Aliases: []string{"group1"},
		Usage:   "Manage sources",
		Before:  before,
		Commands: []*cli.Command{
			leaf("ls", "List sources", "List sources"),
			leaf("install", "Install sources", "Install a source"),
			leaf("update", "Update sources", "Update sources"),
		},
	}
}

// before prints its banner only when a known source command is about to run.
func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Command(cmd.Args().First()) != nil {
		fmt.Fprintln(cmd.Root().Writer, "Executed before all source commands")
	}

	return ctx, nil
}

func leaf(name, usage, msg string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, msg)
			return err
		},
	}
}
