// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsontree parses JSON text into an explicit document tree and
// supports building and navigating such trees in memory.
//
// A tree is made of tagged [Node] values: objects (ordered name→child
// mappings), arrays, and the scalar kinds string, bool, int, double,
// and null. Unlike unmarshaling into map[string]any, the tree preserves
// object member order and distinguishes integral numbers from doubles,
// both of which matter when the tree is re-encoded into the attrwire
// binary format.
//
// Every child holds a non-owning reference to its parent, so consumers
// that walk a tree interactively (the shell bridge, for one) get
// constant-time upward navigation. The parent owns its children: a node
// belongs to at most one tree at a time.
package jsontree
