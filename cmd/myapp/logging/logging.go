// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logging contains the logging command, which emits one message at every level.
package logging

import (
	"context"

	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// NewCommand returns the logging command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "logging",
		Usage: "Test logging, use -v to see more levels",
		Action: func(ctx context.Context, _ *cli.Command) error {
			ctxlog.Critical(ctx, "SHOW CRITICAL")
			ctxlog.Error(ctx, "SHOW ERROR")
			ctxlog.Warn(ctx, "SHOW WARNING")
			ctxlog.Info(ctx, "SHOW INFO")
			ctxlog.Debug(ctx, "SHOW DEBUG")

			return nil
		},
	}
}
