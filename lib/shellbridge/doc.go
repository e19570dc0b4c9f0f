// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package shellbridge maps jsontree documents to a flat namespace of
// POSIX shell variables and back. Export emits eval-able assignments
// describing a tree; Import rebuilds the tree from a variable lookup,
// typically os.LookupEnv after a script has eval'd the exports.
//
// Every node lives at a path derived from its position in the tree.
// For a node at path P with namespace prefix PFX the bridge uses up to
// three variables:
//
//	PFX_TYPE_P   the node kind (object, array, string, int, ...)
//	PFX_KEYS_P   container children, space-separated path segments
//	PFX_VAL_P    scalar value
//
// Member names are mangled into shell-safe path segments by an
// injective byte escape, so distinct keys never collide and Import can
// recover the original spelling without extra bookkeeping.
package shellbridge
