// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attrjson

import (
	"fmt"

	"github.com/bureau-foundation/attrwire/lib/attr"
)

// Value decodes an attribute into generic Go values: tables become
// map[string]any (duplicate names last-wins), arrays []any, strings
// string, Int8 bool (the format's boolean carrier), wider integers
// int64, and doubles float64. This is the bridge the CBOR export path
// and structural tests use; JSON text output goes through [Format]
// instead so the wire spacing conventions hold.
func Value(a attr.Attr) (any, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("empty attribute")
	}

	switch a.Kind() {
	case attr.Int8:
		return a.Bool(), nil
	case attr.Int16:
		return int64(a.Int16()), nil
	case attr.Int32:
		return int64(a.Int32()), nil
	case attr.Int64:
		return a.Int64(), nil
	case attr.Double:
		return a.Float64(), nil
	case attr.String:
		return a.Text(), nil

	case attr.Table:
		table := make(map[string]any)
		for _, child := range a.Children() {
			value, err := Value(child)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", child.Name(), err)
			}
			table[child.Name()] = value
		}
		return table, nil

	case attr.Array:
		elements := []any{}
		for _, child := range a.Children() {
			value, err := Value(child)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", len(elements), err)
			}
			elements = append(elements, value)
		}
		return elements, nil

	default:
		return nil, fmt.Errorf("attribute kind %s has no value representation", a.Kind())
	}
}
