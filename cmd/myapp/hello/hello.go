// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package hello contains the hello command.
package hello

import (
	"context"

	"github.com/matt-FFFFFF/myapp/internal/app"
	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// NewCommand returns the hello command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        "hello",
		Usage:       "Print a greeting for the project directory",
		Description: "Prints the hello message of the application, including the --config path.",
		Action:      actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	a, err := app.FromContext(ctx)
	if err != nil {
		return err
	}

	ctxlog.Info(ctx, "saying hello", "command", cmd.Name, "path", a.Path)

	return a.Hello(cmd.Root().Writer)
}
