// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/attrwire/lib/attr"
	"github.com/bureau-foundation/attrwire/lib/attrjson"
)

func runDecode(args []string) error {
	flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	color := flags.String("color", "auto", "colorize output: auto, always, never")
	if err := flags.Parse(args); err != nil {
		return err
	}

	stream, err := readStream(flags.Args())
	if err != nil {
		return err
	}

	a, err := attr.Parse(stream)
	if err != nil {
		return fmt.Errorf("parse stream: %w", err)
	}
	if err := attr.Validate(a); err != nil {
		slog.Warn("stream contains malformed attributes, output is best effort", "error", err)
	}

	text, ok := attrjson.Format(a)
	if !ok {
		return fmt.Errorf("stream renders to no output")
	}
	return writeText(os.Stdout, text, *color)
}

// writeText prints text with an optional pass through the JSON
// syntax highlighter. In auto mode color engages only on a terminal.
func writeText(w io.Writer, text, colorMode string) error {
	var colored bool
	switch colorMode {
	case "always":
		colored = true
	case "never":
	case "auto":
		f, isFile := w.(*os.File)
		colored = isFile && term.IsTerminal(int(f.Fd()))
	default:
		return fmt.Errorf("bad --color value %q (want auto, always, never)", colorMode)
	}

	if colored {
		if err := quick.Highlight(w, text, "json", "terminal256", "monokai"); err != nil {
			return fmt.Errorf("highlight output: %w", err)
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
