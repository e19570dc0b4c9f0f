// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shellbridge

import (
	"fmt"
	"strings"
)

// mangleSegment turns an arbitrary member name into a shell-safe path
// segment. ASCII letters and digits other than 'x' pass through; 'x'
// and every other byte become 'x' followed by two lowercase hex
// digits. The escape byte escaping itself makes the mapping injective,
// so two distinct names never share a segment.
func mangleSegment(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z' && c != 'x',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9':
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, "x%02x", c)
		}
	}
	return sb.String()
}

// unmangleSegment inverts mangleSegment.
func unmangleSegment(segment string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(segment))
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c != 'x' {
			sb.WriteByte(c)
			continue
		}
		if i+2 >= len(segment) {
			return "", fmt.Errorf("truncated escape in segment %q", segment)
		}
		hi, okHi := hexNibble(segment[i+1])
		lo, okLo := hexNibble(segment[i+2])
		if !okHi || !okLo {
			return "", fmt.Errorf("bad escape %q in segment %q", segment[i:i+3], segment)
		}
		sb.WriteByte(hi<<4 | lo)
		i += 2
	}
	return sb.String(), nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// shellQuote wraps s in single quotes, the only POSIX quoting form
// with no further escape processing. An embedded single quote closes
// the literal, emits an escaped quote, and reopens it.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
