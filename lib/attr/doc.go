// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package attr implements the binary typed-attribute container that
// underlies the attrwire format.
//
// An attribute is a tagged, length-delimited record: a 4-byte big-endian
// header carrying a kind tag, a has-name flag, and the total length,
// followed by an optional NUL-terminated name block and a payload.
// Tables hold a sequence of named child attributes, arrays a sequence of
// unnamed ones, so arbitrarily nested structures are expressed without
// any framing beyond each attribute's own declared length.
//
// The package has two halves:
//
//   - Attr, a bounds-checked read-only view over an encoded attribute.
//     [Parse] validates an attribute against its buffer before any
//     accessor touches the bytes, so traversal of untrusted input never
//     reads out of bounds.
//   - Buffer, an append-only builder that writes headers, name blocks,
//     alignment padding, and container length back-patching so callers
//     only deal in open/close/put operations.
//
// The wire layout is fixed: all integers big-endian, attributes padded
// to 4-byte alignment inside containers, strings carrying a trailing
// NUL. Changing any of this breaks compatibility with existing
// consumers of the format.
package attr
