// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cliapp

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"

	"github.com/matt-FFFFFF/myapp/internal/app"
	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/matt-FFFFFF/myapp/internal/exitcode"
	"github.com/urfave/cli/v3"
)

// Global flag names.
const (
	FlagVerbose   = "verbose"
	FlagConfig    = "config"
	FlagVersion   = "version"
	FlagLogFormat = "log-format"
	FlagLogFile   = "log-file"
)

const helpName = "help"

func (r *run) root() *cli.Command {
	a := r.app

	cmd := &cli.Command{
		Name:                   a.name,
		Usage:                  a.usage,
		Version:                a.version,
		HideVersion:            true,
		Writer:                 a.stdout,
		ErrWriter:              a.stderr,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    FlagVerbose,
				Aliases: []string{"v"},
				Usage:   "Increase verbosity, repeat for more (-v warnings, -vv info, -vvv debug)",
			},
			&cli.StringFlag{
				Name:      FlagConfig,
				Aliases:   []string{"c"},
				Usage:     "Path to the project directory",
				Value:     ".",
				TakesFile: true,
				Sources:   cli.EnvVars(a.EnvVar("PROJECT_DIR")),
			},
			&cli.BoolFlag{
				Name:    FlagVersion,
				Aliases: []string{"V"},
				Usage:   "Print the version and exit",
			},
			&cli.StringFlag{
				Name:      FlagLogFormat,
				Usage:     "Console log format, one of pretty or json",
				Value:     string(ctxlog.FormatPretty),
				Validator: Choice(ctxlog.Formats...),
			},
			&cli.StringFlag{
				Name:      FlagLogFile,
				Usage:     "Also write the log to this file, as JSON",
				TakesFile: true,
			},
		},
		Before:         r.before,
		Action:         r.groupAction,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	for _, fn := range a.commands {
		cmd.Commands = append(cmd.Commands, fn())
	}

	r.prepare(cmd)

	return cmd
}

// prepare installs the usage error hook, the help command and the action
// wrappers on cmd and all its subcommands.
func (r *run) prepare(cmd *cli.Command) {
	cmd.OnUsageError = r.onUsageError

	isGroup := len(cmd.Commands) > 0

	for _, sub := range cmd.Commands {
		r.prepare(sub)
	}

	switch {
	case isGroup && cmd.Action == nil:
		cmd.Action = r.groupAction
	case !isGroup && cmd.Action != nil:
		cmd.Action = r.leaf(cmd.Action)
	}

	if !cmd.HideHelp && !cmd.HideHelpCommand && cmd.Command(helpName) == nil {
		help := r.helpCommand()
		cmd.Commands = append(cmd.Commands, help)
	}
}

// before runs ahead of every command action: it sets the log level from the
// verbosity count and stores the logger and the application in the context.
func (r *run) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	a := r.app

	verbosity := cmd.Count(FlagVerbose)
	if verbosity > 0 {
		a.levelVar.Set(ctxlog.LevelFromVerbosity(verbosity))
	}

	format, err := ctxlog.ParseFormat(cmd.String(FlagLogFormat))
	if err != nil {
		return ctx, exitcode.Usage(err)
	}

	handler := ctxlog.NewHandler(format, cmd.Root().ErrWriter, a.levelVar, ctxlog.WithAutoColour())

	if path := cmd.String(FlagLogFile); path != "" {
		f, err := ctxlog.OpenFileSink(a.fs, path)
		if err != nil {
			return ctx, exitcode.WithAdvice(err, "check that the directory of --log-file exists and is writable")
		}

		r.closers = append(r.closers, f)
		handler = ctxlog.NewFanout(handler, ctxlog.NewHandler(ctxlog.FormatJSON, f, a.levelVar))
	}

	r.logger = slog.New(handler)
	ctx = ctxlog.New(ctx, r.logger)
	ctx = app.NewContext(ctx, app.New(a.name, a.version, cmd.String(FlagConfig)))

	ctxlog.Debug(ctx, "logging configured",
		"verbosity", verbosity,
		"level", a.levelVar.Level().String(),
		"config", cmd.String(FlagConfig),
	)

	return ctx, nil
}

// groupAction runs when a command with subcommands is invoked without a
// known subcommand.
func (r *run) groupAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		name := cmd.Args().First()
		ctxlog.Error(ctx, fmt.Sprintf("subcommand %q does not exist", name), "command", cmd.FullName())
		printHelp(cmd.Root().ErrWriter, cmd)

		return exitcode.Usagef("unknown subcommand %q", name)
	}

	if cmd.Root() == cmd && r.app.withoutCommand != nil {
		return r.app.withoutCommand(ctx, cmd)
	}

	ctxlog.Error(ctx, "missing subcommand", "command", cmd.FullName())
	printHelp(cmd.Root().Writer, cmd)

	return &exitcode.Error{Kind: exitcode.KindUsage, Code: r.app.noCommandCode, Msg: "missing subcommand"}
}

// leaf wraps the action of a command without subcommands. It rejects
// positional arguments nothing declared and turns panics into internal errors.
func (r *run) leaf(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) (err error) {
		if cmd.Args().Present() {
			return r.onUsageError(ctx, cmd, fmt.Errorf("unexpected argument %q", cmd.Args().First()), true)
		}

		defer func() {
			if p := recover(); p != nil {
				err = &exitcode.Error{
					Kind: exitcode.KindInternal,
					Err:  &PanicError{Value: p, Stack: debug.Stack()},
				}
			}
		}()

		return action(ctx, cmd)
	}
}

func (r *run) onUsageError(_ context.Context, cmd *cli.Command, err error, _ bool) error {
	_, _ = fmt.Fprintf(cmd.Root().ErrWriter, "Incorrect Usage: %s\n\n", err)
	printHelp(cmd.Root().ErrWriter, cmd)

	return exitcode.Usage(err)
}

// Choice returns a flag validator accepting only the given values.
func Choice(values ...string) func(string) error {
	return func(s string) error {
		if !slices.Contains(values, s) {
			return fmt.Errorf("must be one of %v", values)
		}

		return nil
	}
}
