// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package attrjson converts between JSON documents and the attrwire
// binary attribute format.
//
// The encoder walks a [jsontree.Node] document depth-first and appends
// the equivalent attributes to an [attr.Buffer]: objects become tables,
// arrays become arrays, strings become string attributes, booleans
// become Int8 attributes valued 0 or 1, and integral numbers become
// Int32 attributes (the value is truncated to 32 bits). Doubles and
// nulls have no attribute representation and fail the encoding call;
// attributes already appended are not rolled back, so callers that need
// an all-or-nothing document must encode into a scratch buffer first.
//
// The formatter walks a binary attribute and produces JSON text. It is
// deliberately best-effort on untrusted input: an element that fails
// structural validation produces no output and formatting continues
// with its siblings. The exact output conventions (`{ ` / ` }` and
// `[ ` / ` ]` container markers, `, ` separators, two interior spaces
// in an empty container, the escaping of `/`) are wire-format contract
// shared with existing consumers and must not change.
//
// A [RenderHook] gives the caller first refusal on rendering each
// attribute, overriding the default text for that element only. Hooks
// run synchronously inside the formatting call and must treat the
// attribute stream as read-only.
package attrjson
