// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/attrwire/lib/wirefile"
)

// readInput resolves subcommand input: a single optional positional
// argument names a file, otherwise stdin is consumed.
func readInput(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	case 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("at most one input file, got %d positional arguments", len(args))
	}
}

// readStream reads input like readInput and transparently unwraps
// framed container files, returning the raw attribute stream.
func readStream(args []string) ([]byte, error) {
	data, err := readInput(args)
	if err != nil {
		return nil, err
	}
	if wirefile.IsContainer(data) {
		stream, err := wirefile.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("unwrap container: %w", err)
		}
		return stream, nil
	}
	return data, nil
}
