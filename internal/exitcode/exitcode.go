// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package exitcode

import (
	"fmt"
)

const (
	// ExitSuccess is returned when the command completed without error.
	ExitSuccess = 0
	// ExitFailure is the default code for user-facing errors.
	ExitFailure = 1
	// ExitUsage is returned when the command line could not be parsed or resolved.
	ExitUsage = 2
	// ExitInternal is returned for any error outside the user-facing set.
	ExitInternal = 255
)

// Kind is the category of an error.
type Kind int

// Error kinds. The user-facing set runs from KindApp to KindTimeout.
const (
	KindNone Kind = iota
	KindApp
	KindPermissionDenied
	KindFileExists
	KindFileNotFound
	KindInterrupted
	KindIsADirectory
	KindNotADirectory
	KindTimeout
	KindUsage
	KindInternal
)

var kindNames = map[Kind]string{
	KindNone:             "None",
	KindApp:              "AppError",
	KindPermissionDenied: "PermissionError",
	KindFileExists:       "FileExistsError",
	KindFileNotFound:     "FileNotFoundError",
	KindInterrupted:      "InterruptedError",
	KindIsADirectory:     "IsADirectoryError",
	KindNotADirectory:    "NotADirectoryError",
	KindTimeout:          "TimeoutError",
	KindUsage:            "UsageError",
	KindInternal:         "InternalError",
}

// String returns the categorical name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// UserFacing reports whether the kind is part of the closed user-facing set.
func (k Kind) UserFacing() bool {
	return k >= KindApp && k <= KindTimeout
}

// ExitCoder is implemented by errors that carry their own exit code.
// It matches the interface used by github.com/urfave/cli/v3.
type ExitCoder interface {
	error
	ExitCode() int
}

// Advisor is implemented by errors that carry an advisory message for the user.
type Advisor interface {
	Advice() string
}

// Error is an error with an explicit kind, and optionally an exit code and advice.
type Error struct {
	Kind Kind
	Code int
	Msg  string
	Hint string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the explicit exit code, zero means derive it.
func (e *Error) ExitCode() int {
	return e.Code
}

// Advice returns the advisory message.
func (e *Error) Advice() string {
	return e.Hint
}

// New returns a generic application error.
func New(msg string) *Error {
	return &Error{Kind: KindApp, Msg: msg}
}

// Newf returns a generic application error with a formatted message.
func Newf(format string, args ...any) *Error {
	return &Error{Kind: KindApp, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind wrapping err.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Usage returns a usage error. Usage errors exit with ExitUsage unless Code is changed.
func Usage(err error) *Error {
	return &Error{Kind: KindUsage, Code: ExitUsage, Err: err}
}

// Usagef returns a usage error with a formatted message.
func Usagef(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Code: ExitUsage, Msg: fmt.Sprintf(format, args...)}
}

// WithAdvice attaches an advisory message to err.
func WithAdvice(err error, advice string) error {
	if err == nil {
		return nil
	}

	return &advised{error: err, advice: advice}
}

// WithCode overrides the exit code of err.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}

	return &coded{error: err, code: code}
}

type advised struct {
	error
	advice string
}

func (a *advised) Unwrap() error  { return a.error }
func (a *advised) Advice() string { return a.advice }

type coded struct {
	error
	code int
}

func (c *coded) Unwrap() error { return c.error }
func (c *coded) ExitCode() int { return c.code }
