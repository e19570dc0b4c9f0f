// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attrjson

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/attrwire/lib/attr"
	"github.com/bureau-foundation/attrwire/lib/jsontree"
)

// Encoding errors.
var (
	// ErrUnsupportedKind is returned when a document node has no
	// attribute representation: doubles, nulls, and nil nodes.
	ErrUnsupportedKind = errors.New("node kind has no attribute representation")

	// ErrRootNotObject is returned by AddJSON when the parsed document
	// root is anything but an object.
	ErrRootNotObject = errors.New("document root is not an object")
)

// AddElement encodes one document node as a child of b's innermost
// open container. Objects open a table, arrays an array, each encoded
// recursively; strings, booleans, and integral numbers become the
// corresponding scalar attributes. The name applies only when the
// enclosing container is a table.
//
// Encoding is not atomic: when a nested node fails, the container
// opened for its parent is still closed and siblings encoded before
// the failure remain in b. The first error encountered is returned.
func AddElement(b *attr.Buffer, name string, node *jsontree.Node) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrUnsupportedKind)
	}

	switch node.Kind() {
	case jsontree.Object:
		cookie, err := b.OpenTable(name)
		if err != nil {
			return err
		}
		addErr := addMembers(b, node)
		if err := b.Close(cookie); err != nil {
			return err
		}
		return addErr

	case jsontree.Array:
		cookie, err := b.OpenArray(name)
		if err != nil {
			return err
		}
		addErr := addElements(b, node)
		if err := b.Close(cookie); err != nil {
			return err
		}
		return addErr

	case jsontree.String:
		return b.PutString(name, node.Str())

	case jsontree.Bool:
		return b.PutBool(name, node.Bool())

	case jsontree.Int:
		// The format's JSON integer carrier is Int32; wider values
		// are truncated to 32 bits.
		return b.PutInt32(name, int32(node.Int()))

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, node.Kind())
	}
}

// addMembers encodes every member of an object node, stopping at the
// first failure.
func addMembers(b *attr.Buffer, object *jsontree.Node) error {
	for i := 0; i < object.Len(); i++ {
		if err := AddElement(b, object.Key(i), object.At(i)); err != nil {
			return fmt.Errorf("member %q: %w", object.Key(i), err)
		}
	}
	return nil
}

// addElements encodes every element of an array node in index order,
// stopping at the first failure. Array children are unnamed.
func addElements(b *attr.Buffer, array *jsontree.Node) error {
	for i := 0; i < array.Len(); i++ {
		if err := AddElement(b, "", array.At(i)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// AddJSON parses text as a strict JSON document and appends each
// member of its root object as a top-level element of b. The root
// object itself is not wrapped in an extra container level: b's
// implicit root table plays that role.
func AddJSON(b *attr.Buffer, text []byte) error {
	root, err := jsontree.Parse(text)
	if err != nil {
		return err
	}
	if root.Kind() != jsontree.Object {
		return fmt.Errorf("%w: got %s", ErrRootNotObject, root.Kind())
	}
	return addMembers(b, root)
}
