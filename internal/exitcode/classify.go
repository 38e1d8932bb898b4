// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package exitcode

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/hashicorp/go-multierror"
)

// Outcome is the terminal state of a command invocation.
type Outcome struct {
	Code   int
	Kind   Kind
	Advice string
	Err    error
}

// UserFacing reports whether the outcome is a user-facing error.
func (o Outcome) UserFacing() bool {
	return o.Kind.UserFacing()
}

type rule struct {
	kind  Kind
	match func(error) bool
}

// rules is evaluated in order, the first match wins.
var rules = []rule{
	{KindPermissionDenied, is(fs.ErrPermission)},
	{KindFileExists, is(fs.ErrExist)},
	{KindFileNotFound, is(fs.ErrNotExist)},
	{KindInterrupted, is(context.Canceled, syscall.EINTR)},
	{KindIsADirectory, is(syscall.EISDIR)},
	{KindNotADirectory, is(syscall.ENOTDIR)},
	{KindTimeout, is(context.DeadlineExceeded, os.ErrDeadlineExceeded, syscall.ETIMEDOUT)},
	{KindApp, isExitCoder},
}

func is(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, t := range targets {
			if errors.Is(err, t) {
				return true
			}
		}

		return false
	}
}

func isExitCoder(err error) bool {
	var ec ExitCoder
	return errors.As(err, &ec)
}

// Classify maps err to an Outcome.
// An *Error with an explicit kind is taken as is, otherwise the rules table is
// consulted. Anything that matches nothing is an internal error.
func Classify(err error) Outcome {
	if err == nil {
		return Outcome{Code: ExitSuccess, Kind: KindNone}
	}

	out := Outcome{Kind: KindInternal, Err: err, Advice: adviceOf(err)}

	var e *Error
	if errors.As(err, &e) && e.Kind != KindNone {
		out.Kind = e.Kind
	} else {
		for _, r := range rules {
			if r.match(err) {
				out.Kind = r.kind
				break
			}
		}
	}

	switch out.Kind {
	case KindUsage:
		out.Code = ExitUsage
		if code, ok := overrideOf(err); ok && validCode(code) {
			out.Code = code
		}
	case KindInternal:
		out.Code = ExitInternal
	default:
		out.Code = codeOf(err)
	}

	return out
}

// codeOf derives the exit code of a user-facing error: an explicit override,
// then the errno in the chain, then ExitFailure.
func codeOf(err error) int {
	if code, ok := overrideOf(err); ok && validCode(code) {
		return code
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && validCode(int(errno)) {
		return int(errno)
	}

	return ExitFailure
}

func validCode(code int) bool {
	return code > ExitSuccess && code < ExitInternal
}

// overrideOf returns the first non-zero exit code found in the chain.
func overrideOf(err error) (int, bool) {
	var found int

	walk(err, func(e error) bool {
		if ec, ok := e.(ExitCoder); ok && ec.ExitCode() != 0 {
			found = ec.ExitCode()
			return true
		}

		return false
	})

	return found, found != 0
}

func adviceOf(err error) string {
	var advice string

	walk(err, func(e error) bool {
		if a, ok := e.(Advisor); ok && a.Advice() != "" {
			advice = a.Advice()
			return true
		}

		return false
	})

	return advice
}

// walk visits err and its chain depth first until fn returns true.
func walk(err error, fn func(error) bool) bool {
	if err == nil {
		return false
	}

	if fn(err) {
		return true
	}

	switch u := err.(type) {
	case *multierror.Error:
		for _, e := range u.Errors {
			if walk(e, fn) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return walk(u.Unwrap(), fn)
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if walk(e, fn) {
				return true
			}
		}
	}

	return false
}
