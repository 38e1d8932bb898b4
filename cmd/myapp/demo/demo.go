// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo contains the demo command, which shows the option types the
// dispatcher supports and logs at every level.
package demo

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/myapp/internal/cliapp"
	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	envFlag    = "env"
	choiceFlag = "choice"
	storeFlag  = "store"
	appendFlag = "append"
	nargsArg   = "nargs"
	// SettingEnvVar provides the default of --env.
	SettingEnvVar = "APP_SETTING"
)

// Choices lists the accepted values of --choice.
var Choices = []string{"choice1", "choice2"}

// NewCommand returns the demo command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Display how to use logging",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    envFlag,
				Usage:   "A setting with an environment variable fallback",
				Value:   "Unset",
				Sources: cli.EnvVars(SettingEnvVar),
			},
			&cli.StringFlag{
				Name:      choiceFlag,
				Usage:     fmt.Sprintf("A restricted choice, one of %v", Choices),
				Validator: cliapp.Choice(Choices...),
			},
			&cli.BoolFlag{
				Name:    storeFlag,
				Aliases: []string{"s"},
				Usage:   "A boolean toggle",
			},
			&cli.StringSliceFlag{
				Name:    appendFlag,
				Aliases: []string{"a"},
				Usage:   "A repeatable option, values accumulate",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name: nargsArg,
				Min:  0,
				Max:  -1,
			},
		},
		ArgsUsage: "[nargs ...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctxlog.Error(ctx, "Test Critical message")
			ctxlog.Warn(ctx, "Test Warning message")
			ctxlog.Info(ctx, "Test Info message")
			ctxlog.Debug(ctx, "Command line vars", "args", cliapp.Snapshot(cmd))

			return nil
		},
	}
}
