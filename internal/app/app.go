// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package app contains the application object the subcommands act on.
// Its behaviour is a placeholder: it greets, and it can fail on request.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/myapp/internal/exitcode"
)

// ErrNoApp is returned when the context does not carry an App.
var ErrNoApp = errors.New("no application in context")

// App is the application object.
type App struct {
	Name    string
	Version string
	// Path is the project directory given with --config.
	Path string
}

// New creates an App.
func New(name, version, path string) *App {
	return &App{Name: name, Version: version, Path: path}
}

// String returns the name and version of the app.
func (a *App) String() string {
	return fmt.Sprintf("%s %s (%s)", a.Name, a.Version, a.Path)
}

// Hello prints the greeting for the configured path.
func (a *App) Hello(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Hello World: %s\n", a.Path)
	return err
}

// World prints the other greeting.
func (a *App) World(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Hello World World World")
	return err
}

// Fail returns a generic application error.
func (a *App) Fail() error {
	return exitcode.Newf("%s failed on purpose", a.Name)
}

type appKey struct{}

// NewContext returns a copy of ctx carrying a.
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// FromContext returns the App carried by ctx.
func FromContext(ctx context.Context) (*App, error) {
	a, ok := ctx.Value(appKey{}).(*App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}

	return a, nil
}
