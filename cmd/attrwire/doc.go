// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command attrwire converts between JSON documents and binary typed
// attribute streams.
//
// Subcommands:
//
//	encode   JSON (or YAML) to a wire stream or framed container file
//	decode   wire stream to JSON text
//	diag     per-attribute structural dump of a wire stream
//	digest   content digest of a wire stream
//	cbor     wire stream to deterministic CBOR
//	version  build information
//
// Every subcommand reads from stdin unless a file path is given as the
// final positional argument. decode, diag, digest, and cbor detect
// framed container files by magic and unwrap them transparently.
package main
