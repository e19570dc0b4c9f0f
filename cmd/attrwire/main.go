// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/attrwire/lib/version"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		printUsage()
		return fmt.Errorf("subcommand required")
	}

	switch args[0] {
	case "encode":
		return runEncode(args[1:])
	case "decode":
		return runDecode(args[1:])
	case "diag":
		return runDiag(args[1:])
	case "digest":
		return runDigest(args[1:])
	case "cbor":
		return runCBOR(args[1:])
	case "version":
		fmt.Printf("attrwire %s\n", version.Info())
		return nil
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %q", args[0])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: attrwire <subcommand> [flags] [file]

Subcommands:
  encode    Encode JSON (or YAML) into a binary attribute stream
  decode    Render a binary attribute stream as JSON text
  diag      Dump the attribute structure of a wire stream
  digest    Print the content digest of a wire stream
  cbor      Re-encode a wire stream as deterministic CBOR
  version   Print version information

Input comes from stdin, or from a file given as the last argument.

Run 'attrwire <subcommand> --help' for subcommand flags.
`)
}
