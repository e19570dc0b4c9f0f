// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/attrwire/lib/wirefile"
)

func runDigest(args []string) error {
	flags := pflag.NewFlagSet("digest", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	stream, err := readStream(flags.Args())
	if err != nil {
		return err
	}
	sum := wirefile.Digest(stream)
	fmt.Printf("%s\n", hex.EncodeToString(sum[:]))
	return nil
}
