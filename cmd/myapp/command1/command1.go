// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command1 contains an example command with options, an optional
// argument and a structured dump of the parsed command line.
package command1

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/myapp/internal/app"
	"github.com/matt-FFFFFF/myapp/internal/cliapp"
	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	modeFlag   = "mode"
	formatFlag = "format"
	targetArg  = "target"
)

// NewCommand returns the command1 command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "command1",
		Usage: "Command1 example",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  modeFlag,
				Usage: "Write anything here",
				Value: "Default Mode",
			},
			&cli.StringFlag{
				Name:      formatFlag,
				Aliases:   []string{"f"},
				Usage:     fmt.Sprintf("Output format, one of %v", app.OutputFormats),
				Value:     string(app.FormatYAML),
				Validator: cliapp.Choice(app.OutputFormats...),
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      targetArg,
				UsageText: "[target]",
			},
		},
		ArgsUsage: "[target]",
		Action:    actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	a, err := app.FromContext(ctx)
	if err != nil {
		return err
	}

	format, err := app.ParseOutputFormat(cmd.String(formatFlag))
	if err != nil {
		return err
	}

	w := cmd.Root().Writer

	fmt.Fprintf(w, "Run %s with %q as target in mode %q in format %q\n",
		a, cmd.StringArg(targetArg), cmd.String(modeFlag), format)
	fmt.Fprintln(w, "This is a dump of our cli context:")

	if err := app.Encode(w, format, cliapp.Snapshot(cmd), ctxlog.ColourEnabled(w)); err != nil {
		return err
	}

	fmt.Fprintln(w, "Run MyApp")

	if err := a.Hello(w); err != nil {
		return err
	}

	return a.World(w)
}
