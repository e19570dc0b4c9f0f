// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attr

import "fmt"

// Kind identifies the payload type of an attribute. The numeric values
// are protocol constants; changing them breaks wire compatibility.
type Kind uint8

const (
	// Unspec marks an attribute with no declared payload type. The
	// builder never produces it; it exists so damaged or future
	// streams still parse structurally.
	Unspec Kind = 0

	// Array is a container of unnamed child attributes.
	Array Kind = 1

	// Table is a container of named child attributes.
	Table Kind = 2

	// String is a NUL-terminated text payload.
	String Kind = 3

	// Int64 is an 8-byte big-endian signed integer payload.
	Int64 Kind = 4

	// Int32 is a 4-byte big-endian signed integer payload.
	Int32 Kind = 5

	// Int16 is a 2-byte big-endian signed integer payload.
	Int16 Kind = 6

	// Int8 is a 1-byte signed integer payload. Booleans travel as
	// Int8 valued 0 or 1.
	Int8 Kind = 7

	// Double is an 8-byte IEEE 754 payload (big-endian bit pattern).
	// The JSON encoder never produces it, but readers accept it so
	// streams from other producers remain traversable.
	Double Kind = 8

	kindCount = 9
)

// String returns the lower-case name of the kind as used in diagnostic
// output.
func (k Kind) String() string {
	switch k {
	case Unspec:
		return "unspec"
	case Array:
		return "array"
	case Table:
		return "table"
	case String:
		return "string"
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Int16:
		return "int16"
	case Int8:
		return "int8"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsContainer reports whether attributes of this kind carry nested
// child attributes rather than a scalar payload.
func (k Kind) IsContainer() bool {
	return k == Array || k == Table
}

// payloadSize returns the exact payload size a scalar kind requires,
// or -1 when the kind has no fixed size (strings, containers, unspec).
func (k Kind) payloadSize() int {
	switch k {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32:
		return 4
	case Int64, Double:
		return 8
	default:
		return -1
	}
}
