// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fail contains the fail command, which returns an error of the requested kind
// so the exit code mapping can be observed.
package fail

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/matt-FFFFFF/myapp/internal/app"
	"github.com/matt-FFFFFF/myapp/internal/cliapp"
	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/matt-FFFFFF/myapp/internal/exitcode"
	"github.com/urfave/cli/v3"
)

const (
	kindFlag   = "kind"
	adviceFlag = "advice"
	codeFlag   = "code"
)

// Kinds lists the accepted values of --kind.
var Kinds = []string{
	"app",
	"permission",
	"exists",
	"notfound",
	"interrupted",
	"isdir",
	"notdir",
	"timeout",
	"internal",
	"panic",
}

// ErrUnexpected is returned for --kind internal.
var ErrUnexpected = errors.New("unexpected internal state")

// NewCommand returns the fail command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "fail",
		Usage: "Fail with the given kind of error",
		Description: `Returns an error of the given kind to show how errors map to exit codes.
User facing errors exit with their own code, internal errors exit with 255.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      kindFlag,
				Aliases:   []string{"k"},
				Usage:     fmt.Sprintf("Kind of error, one of %v", Kinds),
				Value:     "app",
				Validator: cliapp.Choice(Kinds...),
			},
			&cli.StringFlag{
				Name:  adviceFlag,
				Usage: "Advice shown before the error",
			},
			&cli.IntFlag{
				Name:  codeFlag,
				Usage: "Override the exit code of a user facing error",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	a, err := app.FromContext(ctx)
	if err != nil {
		return err
	}

	kind := cmd.String(kindFlag)
	ctxlog.Debug(ctx, "failing on request", "kind", kind)

	err = newError(ctx, a, kind)
	if advice := cmd.String(adviceFlag); advice != "" {
		err = exitcode.WithAdvice(err, advice)
	}

	if code := cmd.Int(codeFlag); code != 0 {
		err = exitcode.WithCode(err, code)
	}

	return err
}

func newError(ctx context.Context, a *app.App, kind string) error {
	path := filepath.Join(a.Path, a.Name+".lock")

	switch kind {
	case "permission":
		return &fs.PathError{Op: "open", Path: path, Err: syscall.EACCES}
	case "exists":
		return &fs.PathError{Op: "mkdir", Path: a.Path, Err: syscall.EEXIST}
	case "notfound":
		return &fs.PathError{Op: "open", Path: path, Err: syscall.ENOENT}
	case "interrupted":
		return fmt.Errorf("reading %s: %w", path, syscall.EINTR)
	case "isdir":
		return &fs.PathError{Op: "read", Path: a.Path, Err: syscall.EISDIR}
	case "notdir":
		return &fs.PathError{Op: "open", Path: filepath.Join(path, "child"), Err: syscall.ENOTDIR}
	case "timeout":
		tctx, cancel := context.WithTimeout(ctx, 0)
		defer cancel()
		<-tctx.Done()

		return fmt.Errorf("waiting for %s: %w", path, tctx.Err())
	case "internal":
		return ErrUnexpected
	case "panic":
		panic("fail command panicked on request")
	default:
		return a.Fail()
	}
}
