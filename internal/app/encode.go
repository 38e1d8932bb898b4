// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// OutputFormat is a structured output format.
type OutputFormat string

const (
	// FormatYAML writes YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON writes indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatTOML writes TOML.
	FormatTOML OutputFormat = "toml"
)

// OutputFormats lists the accepted output formats.
var OutputFormats = []string{string(FormatYAML), string(FormatJSON), string(FormatTOML)}

// ParseOutputFormat converts s to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if !slices.Contains(OutputFormats, s) {
		return "", fmt.Errorf("unknown output format %q, expected one of %v", s, OutputFormats)
	}

	return OutputFormat(s), nil
}

// Encode writes v to w in the given format.
// colour only affects JSON.
func Encode(w io.Writer, format OutputFormat, v any, colour bool) error {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatYAML:
		out, err = yaml.Marshal(v)
	case FormatTOML:
		out, err = toml.Marshal(v)
	case FormatJSON:
		out, err = marshalJSON(v, colour)
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	_, err = w.Write(out)

	return err
}

// marshalJSON round trips v through encoding/json so that colorjson only sees
// maps, slices and scalars.
func marshalJSON(v any, colour bool) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !colour

	return f.Marshal(obj)
}
