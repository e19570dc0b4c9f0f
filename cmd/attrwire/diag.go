// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/attrwire/lib/attr"
)

func runDiag(args []string) error {
	flags := pflag.NewFlagSet("diag", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	stream, err := readStream(flags.Args())
	if err != nil {
		return err
	}
	if len(stream) == 0 {
		return fmt.Errorf("empty input")
	}
	dumpStream(os.Stdout, stream, 0, 0)
	return nil
}

// dumpStream prints one line per attribute in a sibling run: offset
// into the original stream, kind, declared length, name, and a scalar
// preview. Containers recurse with indentation. Damaged attributes
// are reported in place and, where the declared length is still
// trustworthy, skipped over so the rest of the stream stays visible.
func dumpStream(w io.Writer, p []byte, base, depth int) {
	indent := strings.Repeat("  ", depth)
	off := 0
	for off+4 <= len(p) {
		h, err := attr.ProbeHeader(p[off:])
		if err != nil || h.TotalLen > len(p)-off {
			fmt.Fprintf(w, "%s%08x  !! unreadable header (%d bytes left)\n", indent, base+off, len(p)-off)
			return
		}

		a, err := attr.Parse(p[off : off+h.TotalLen])
		if err != nil {
			fmt.Fprintf(w, "%s%08x  %-7s len=%-5d !! %v\n", indent, base+off, h.Kind, h.TotalLen, err)
		} else {
			var name string
			if a.HasName() {
				name = fmt.Sprintf(" name=%q", a.Name())
			}
			fmt.Fprintf(w, "%s%08x  %-7s len=%-5d%s%s\n", indent, base+off, a.Kind(), h.TotalLen, name, scalarPreview(a))
			if a.Kind().IsContainer() {
				bodyStart := h.TotalLen - len(a.Payload())
				dumpStream(w, a.Payload(), base+off+bodyStart, depth+1)
			}
		}
		off += align(h.TotalLen)
	}
}

func scalarPreview(a attr.Attr) string {
	switch a.Kind() {
	case attr.String:
		return fmt.Sprintf(" value=%q", a.Text())
	case attr.Int8:
		return fmt.Sprintf(" value=%d", a.Int8())
	case attr.Int16:
		return fmt.Sprintf(" value=%d", a.Int16())
	case attr.Int32:
		return fmt.Sprintf(" value=%d", a.Int32())
	case attr.Int64:
		return fmt.Sprintf(" value=%d", a.Int64())
	case attr.Double:
		return fmt.Sprintf(" value=%g", a.Float64())
	}
	return ""
}

// align rounds a length up to the 4-byte sibling boundary.
func align(n int) int {
	return (n + 3) &^ 3
}
