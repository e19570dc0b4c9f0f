// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/attrwire/lib/attr"
	"github.com/bureau-foundation/attrwire/lib/attrjson"
	"github.com/bureau-foundation/attrwire/lib/codec"
)

// runCBOR re-encodes a wire stream as deterministic CBOR, the format
// the rest of the tooling speaks. With --diag the CBOR is rendered as
// RFC 8949 diagnostic notation instead of binary.
func runCBOR(args []string) error {
	flags := pflag.NewFlagSet("cbor", pflag.ContinueOnError)
	diagMode := flags.Bool("diag", false, "print diagnostic notation instead of binary CBOR")
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
	value, err := attrjson.Value(a)
	if err != nil {
		return fmt.Errorf("decode stream: %w", err)
	}

	encoded, err := codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode CBOR: %w", err)
	}

	if *diagMode {
		notation, err := codec.Diagnose(encoded)
		if err != nil {
			return fmt.Errorf("diagnose CBOR: %w", err)
		}
		fmt.Println(notation)
		return nil
	}
	if _, err := os.Stdout.Write(encoded); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
