// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cliapp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/matt-FFFFFF/myapp/internal/exitcode"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// CommandFunc builds a fresh subcommand.
type CommandFunc func() *cli.Command

// App is the command line dispatcher.
type App struct {
	name           string
	usage          string
	version        string
	commands       []CommandFunc
	stdout         io.Writer
	stderr         io.Writer
	fs             afero.Fs
	levelVar       *slog.LevelVar
	noCommandCode  int
	withoutCommand cli.ActionFunc
}

// Option configures an App.
type Option func(*App)

// New creates an App. Without options it writes to os.Stdout and os.Stderr,
// uses the OS filesystem and exits with exitcode.ExitUsage when no subcommand is given.
func New(opts ...Option) *App {
	a := &App{
		name:          "myapp",
		usage:         "Command line application template",
		version:       "dev",
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		fs:            afero.NewOsFs(),
		levelVar:      ctxlog.LevelVar,
		noCommandCode: exitcode.ExitUsage,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// WithName sets the program name. It also prefixes the environment variables.
func WithName(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

// WithUsage sets the one line description shown in the help.
func WithUsage(usage string) Option {
	return func(a *App) {
		a.usage = usage
	}
}

// WithVersion sets the string printed by --version.
func WithVersion(version string) Option {
	return func(a *App) {
		a.version = version
	}
}

// WithCommands adds subcommands.
func WithCommands(cmds ...CommandFunc) Option {
	return func(a *App) {
		a.commands = append(a.commands, cmds...)
	}
}

// WithWriter sets the standard output.
func WithWriter(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// WithErrWriter sets the error output, which also receives the console log.
func WithErrWriter(w io.Writer) Option {
	return func(a *App) {
		a.stderr = w
	}
}

// WithFs sets the filesystem used for the log file.
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithLevelVar sets the level variable the verbosity is written to.
func WithLevelVar(lv *slog.LevelVar) Option {
	return func(a *App) {
		a.levelVar = lv
	}
}

// WithNoCommandExitCode sets the exit code used when no subcommand is given.
// Codes outside 1..254 fall back to exitcode.ExitUsage.
func WithNoCommandExitCode(code int) Option {
	return func(a *App) {
		a.noCommandCode = code
	}
}

// WithInvokeWithoutCommand runs fn instead of printing the help when no
// subcommand is given.
func WithInvokeWithoutCommand(fn cli.ActionFunc) Option {
	return func(a *App) {
		a.withoutCommand = fn
	}
}

// EnvVar returns the name of an environment variable prefixed with the program name.
func (a *App) EnvVar(suffix string) string {
	name := strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(a.name))
	return name + "_" + suffix
}

// Run parses args, runs the selected command and returns the exit code.
// args[0] is the program name, as in os.Args.
func (a *App) Run(ctx context.Context, args []string) int {
	if versionRequested(args) {
		_, _ = fmt.Fprintln(a.stdout, a.version)
		return exitcode.ExitSuccess
	}

	a.levelVar.Set(a.initialLevel())

	r := &run{app: a}
	err := r.root().Run(ctx, args)

	logger := r.logger
	if logger == nil {
		logger = a.consoleLogger()
	}

	code := a.terminate(ctxlog.New(ctx, logger), err)

	if cerr := r.close(); cerr != nil {
		console := ctxlog.New(ctx, a.consoleLogger())
		if code == exitcode.ExitSuccess {
			return a.terminate(console, cerr)
		}

		ctxlog.Error(console, cerr.Error())
	}

	return code
}

func (a *App) initialLevel() slog.Level {
	if lvl, ok := ctxlog.LevelFromEnv(a.EnvVar("LOG_LEVEL")); ok {
		return lvl
	}

	return ctxlog.LevelFromVerbosity(0)
}

func (a *App) consoleLogger() *slog.Logger {
	return slog.New(ctxlog.NewHandler(ctxlog.FormatPretty, a.stderr, a.levelVar, ctxlog.WithAutoColour()))
}

// run holds the state of a single invocation.
type run struct {
	app     *App
	logger  *slog.Logger
	closers []io.Closer
}

func (r *run) close() error {
	var result *multierror.Error

	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	r.closers = nil

	return result.ErrorOrNil()
}
