// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/attrwire/lib/attr"
	"github.com/bureau-foundation/attrwire/lib/attrjson"
	"github.com/bureau-foundation/attrwire/lib/jsontree"
	"github.com/bureau-foundation/attrwire/lib/wirefile"
)

func runEncode(args []string) error {
	flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	yamlMode := flags.Bool("yaml", false, "treat input as YAML instead of JSON")
	out := flags.String("out", "", "write a framed container to this file instead of a raw stream to stdout")
	compress := flags.String("compress", "zstd", "container compression: none, lz4, zstd")
	if err := flags.Parse(args); err != nil {
		return err
	}

	data, err := readInput(flags.Args())
	if err != nil {
		return err
	}

	stream, err := encodeStream(data, *yamlMode)
	if err != nil {
		return err
	}

	if *out != "" {
		tag, err := wirefile.ParseCompressionTag(*compress)
		if err != nil {
			return err
		}
		return wirefile.WriteFile(*out, stream, tag)
	}
	if _, err := os.Stdout.Write(stream); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

// encodeStream converts a JSON (comments and trailing commas
// tolerated) or YAML document into a wire stream. The document root
// must be an object; its members become the top-level elements of the
// stream's root table.
func encodeStream(data []byte, yamlMode bool) ([]byte, error) {
	var (
		root *jsontree.Node
		err  error
	)
	if yamlMode {
		root, err = parseYAML(data)
	} else {
		root, err = jsontree.ParseLenient(data)
	}
	if err != nil {
		return nil, err
	}
	if root.Kind() != jsontree.Object {
		return nil, fmt.Errorf("%w: document root is %s", attrjson.ErrRootNotObject, root.Kind())
	}

	b := attr.NewBuffer()
	for i := 0; i < root.Len(); i++ {
		if err := attrjson.AddElement(b, root.Key(i), root.At(i)); err != nil {
			return nil, fmt.Errorf("member %q: %w", root.Key(i), err)
		}
	}
	return b.Bytes(), nil
}
