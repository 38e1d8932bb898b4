// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package deploy contains the deploy command group, an example of nested
// subcommands with required positional arguments.
package deploy

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

const (
	nameArg     = "name"
	webPortFlag = "web-port"
)

// NewCommand returns the deploy command group.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "deploy",
		Usage: "Deployment tool",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a deployment",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  webPortFlag,
						Usage: "Port the web server listens on",
					},
				},
				Arguments: nameArgs(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "Add deployment %q with web port %d\n",
						name(cmd), cmd.Int(webPortFlag))

					return err
				},
			},
			{
				Name:      "upgrade",
				Usage:     "Upgrade a deployment",
				ArgsUsage: "NAME",
				Arguments: nameArgs(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "Upgrade deployment %q\n", name(cmd))
					return err
				},
			},
		},
	}
}

func nameArgs() []cli.Argument {
	return []cli.Argument{
		&cli.StringArgs{
			Name:      nameArg,
			UsageText: "NAME",
			Min:       1,
			Max:       1,
		},
	}
}

func name(cmd *cli.Command) string {
	if names := cmd.StringArgs(nameArg); len(names) > 0 {
		return names[0]
	}

	return ""
}
