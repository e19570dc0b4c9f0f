// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration used when
// attrwire streams are handed to CBOR-native tooling.
//
// The attrwire formats draw a boundary between two serializations:
// JSON text for the human-facing surface (CLI output, configuration
// input) and CBOR for programs that want the data without writing an
// attribute-stream parser. This package pins the CBOR side to Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. The same logical
// stream always exports to identical bytes, so exported streams can be
// compared and content-addressed.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
package codec
