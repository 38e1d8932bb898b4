// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Format selects the console handler.
type Format string

const (
	// FormatPretty is the human readable console format.
	FormatPretty Format = "pretty"
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
)

// Formats lists the accepted values of Format.
var Formats = []string{string(FormatPretty), string(FormatJSON)}

// ParseFormat converts s to a Format.
func ParseFormat(s string) (Format, error) {
	if !slices.Contains(Formats, s) {
		return "", fmt.Errorf("unknown log format %q, expected one of %v", s, Formats)
	}

	return Format(s), nil
}

// NewHandler returns a handler writing records at or above level to w in the given format.
// Options only apply to the pretty format.
func NewHandler(format Format, w io.Writer, level slog.Leveler, opts ...Option) slog.Handler {
	ho := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: ReplaceLevelNames,
	}

	if format == FormatJSON {
		return slog.NewJSONHandler(w, ho)
	}

	return NewPrettyHandler(ho, append([]Option{WithDestinationWriter(w)}, opts...)...)
}

// OpenFileSink opens path for appending log records, creating it if needed.
func OpenFileSink(fs afero.Fs, path string) (afero.File, error) {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return f, nil
}

// FanoutHandler sends each record to every enabled handler.
type FanoutHandler struct {
	handlers []slog.Handler
}

// NewFanout returns a handler that duplicates records to all handlers.
// Nil handlers are skipped.
func NewFanout(handlers ...slog.Handler) *FanoutHandler {
	hs := make([]slog.Handler, 0, len(handlers))

	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}

	return &FanoutHandler{handlers: hs}
}

// Enabled reports whether any handler is enabled for level.
func (f *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle passes the record to every enabled handler and collects their errors.
func (f *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var result *multierror.Error

	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		result = multierror.Append(result, h.Handle(ctx, r.Clone()))
	}

	return result.ErrorOrNil()
}

// WithAttrs applies attrs to every handler.
func (f *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		hs[i] = h.WithAttrs(attrs)
	}

	return &FanoutHandler{handlers: hs}
}

// WithGroup applies the group to every handler.
func (f *FanoutHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		hs[i] = h.WithGroup(name)
	}

	return &FanoutHandler{handlers: hs}
}
