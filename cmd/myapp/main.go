// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the myapp command-line interface (CLI).
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/matt-FFFFFF/myapp"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/command1"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/demo"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/deploy"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/fail"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/hello"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/logging"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/src"
	"github.com/matt-FFFFFF/myapp/cmd/myapp/world"
	"github.com/matt-FFFFFF/myapp/internal/cliapp"
	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/matt-FFFFFF/myapp/internal/signalbroker"
)

// exit is replaced in tests.
var exit = os.Exit

func main() {
	exit(run(context.Background(), os.Args))
}

func run(ctx context.Context, args []string) int {
	ctx, cancel := context.WithCancel(ctx)
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(watchCtx, sigCh, cancel, func(sig os.Signal) {
		exit(signalExitCode(sig))
	})

	return newApp().Run(ctx, args)
}

func newApp(opts ...cliapp.Option) *cliapp.App {
	base := []cliapp.Option{
		cliapp.WithName("myapp"),
		cliapp.WithUsage("Command line application template"),
		cliapp.WithVersion(version()),
		cliapp.WithCommands(
			hello.NewCommand,
			world.NewCommand,
			fail.NewCommand,
			logging.NewCommand,
			command1.NewCommand,
			demo.NewCommand,
			src.NewCommand,
			deploy.NewCommand,
		),
	}

	return cliapp.New(append(base, opts...)...)
}

// version returns the release, with the commit when the build recorded one.
func version() string {
	if myapp.Commit == "" || myapp.Commit == "unknown" {
		return myapp.Version
	}

	return myapp.Version + " (" + myapp.Commit + ")"
}

// signalExitCode follows the shell convention of 128 plus the signal number.
func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}

	return 1
}
