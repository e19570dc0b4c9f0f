// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wirefile persists attribute streams to disk in a small
// framed container: a magic tag, the compression algorithm, the
// uncompressed size, a keyed BLAKE3 digest of the stream, and the
// (optionally compressed) stream bytes.
//
// The digest makes a stored stream self-verifying: ReadFile refuses to
// return bytes that do not hash back to what was written, so silent
// corruption of archived configuration dumps surfaces as an error
// instead of as silently skipped attributes further down the decode
// path. Compression is a per-file choice; attribute streams carrying
// repetitive configuration compress well under zstd, while tiny IPC
// captures are usually best stored raw.
package wirefile
