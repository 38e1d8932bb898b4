// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cliapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/myapp/internal/ctxlog"
	"github.com/matt-FFFFFF/myapp/internal/exitcode"
)

// PanicError is a recovered panic from a command action.
type PanicError struct {
	Value any
	Stack []byte
}

// Error implements the error interface.
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the panic value if it is an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}

	return nil
}

// terminate logs err according to its classification and returns the exit code.
// Usage errors were already reported when they were detected.
func (a *App) terminate(ctx context.Context, err error) int {
	out := exitcode.Classify(err)

	switch {
	case out.Kind == exitcode.KindNone, out.Kind == exitcode.KindUsage:
	case out.UserFacing():
		if out.Advice != "" {
			ctxlog.Warn(ctx, out.Advice)
		}

		ctxlog.Error(ctx, err.Error())
		ctxlog.Critical(ctx, fmt.Sprintf("%s exited with error %s (%d)", a.name, out.Kind, out.Code))
	default:
		ctxlog.Error(ctx, diagnostic(err))
		ctxlog.Critical(ctx, fmt.Sprintf("uncaught error: %T", rootCause(err)))
		ctxlog.Critical(ctx, "this is a bug, please report it.")
	}

	return out.Code
}

// diagnostic renders the whole error chain, and the stack of a recovered panic.
func diagnostic(err error) string {
	sb := strings.Builder{}
	sb.WriteString(err.Error())

	depth := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(&sb, "\n%s%T: %v", strings.Repeat("  ", depth), e, e)
		depth++
	}

	var p *PanicError
	if errors.As(err, &p) {
		sb.WriteString("\n\n")
		sb.Write(p.Stack)
	}

	return sb.String()
}

// rootCause returns the innermost error of the chain.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}

		err = next
	}
}
