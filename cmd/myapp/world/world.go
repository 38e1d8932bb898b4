// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package world contains the world command.
package world

import (
	"context"

	"github.com/matt-FFFFFF/myapp/internal/app"
	"github.com/urfave/cli/v3"
)

// NewCommand returns the world command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "world",
		Usage: "Print the other greeting",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := app.FromContext(ctx)
			if err != nil {
				return err
			}

			return a.World(cmd.Root().Writer)
		},
	}
}
