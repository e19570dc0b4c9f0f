// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/attrwire/lib/attr"
	"github.com/bureau-foundation/attrwire/lib/attrjson"
	"github.com/bureau-foundation/attrwire/lib/jsontree"
	"github.com/bureau-foundation/attrwire/lib/shellbridge"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer, lookup func(string) (string, bool)) error {
	flags := pflag.NewFlagSet("attrwire-shell", pflag.ContinueOnError)
	document := flags.StringP("read", "r", "", "parse this JSON document and print shell exports")
	write := flags.BoolP("write", "w", false, "rebuild JSON from the variable namespace and print it")
	prefix := flags.StringP("prefix", "p", "JSON", "variable namespace prefix")
	noNewline := flags.BoolP("no-newline", "n", false, "suppress the trailing newline in write mode")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if len(flags.Args()) > 0 {
		return fmt.Errorf("unexpected positional argument %q", flags.Args()[0])
	}

	readMode := flags.Changed("read")
	switch {
	case readMode && *write:
		return fmt.Errorf("-r and -w are mutually exclusive")
	case readMode:
		root, err := jsontree.Parse([]byte(*document))
		if err != nil {
			return err
		}
		return shellbridge.Export(w, root, *prefix)
	case *write:
		return writeDocument(w, lookup, *prefix, *noNewline)
	default:
		return fmt.Errorf("one of -r or -w is required")
	}
}

// writeDocument rebuilds a document from the variable namespace and
// prints it through the wire formatter, so shell output is
// byte-identical to what the decoder would print for the same data.
func writeDocument(w io.Writer, lookup func(string) (string, bool), prefix string, noNewline bool) error {
	root, err := shellbridge.Import(lookup, prefix)
	if err != nil {
		return err
	}

	if root.Kind() != jsontree.Object && root.Kind() != jsontree.Array {
		return fmt.Errorf("document root is %s, want object or array", root.Kind())
	}

	// The whole document becomes one element of the buffer's root table,
	// so the formatted child carries the document's own container
	// markers ({ } for objects, [ ] for arrays).
	b := attr.NewBuffer()
	if err := attrjson.AddElement(b, "", root); err != nil {
		return err
	}
	children := b.Root().Children()
	if len(children) == 0 {
		return fmt.Errorf("document renders to no output")
	}
	text, ok := attrjson.Format(children[0])
	if !ok {
		return fmt.Errorf("document renders to no output")
	}

	if noNewline {
		_, err = fmt.Fprint(w, text)
	} else {
		_, err = fmt.Fprintln(w, text)
	}
	return err
}
