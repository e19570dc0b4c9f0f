// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const (
	// headerSize is the fixed attribute header: has-name flag (1 bit),
	// kind (7 bits), total length including the header (24 bits).
	headerSize = 4

	hasNameBit = 0x80000000
	kindShift  = 24
	kindMask   = 0x7f
	lengthMask = 0x00ffffff

	// nameLenSize is the u16 length prefix of a name block.
	nameLenSize = 2

	// MaxTotalLen is the largest encodable attribute, limited by the
	// 24-bit length field.
	MaxTotalLen = lengthMask

	// MaxNameLen is the largest encodable attribute name, limited by
	// the u16 name length prefix.
	MaxNameLen = math.MaxUint16
)

// Structural errors reported by Parse and Validate.
var (
	// ErrTruncated indicates the buffer ends before the attribute's
	// declared length.
	ErrTruncated = errors.New("attribute truncated")

	// ErrBadHeader indicates a declared length smaller than the header
	// itself or an unknown kind tag.
	ErrBadHeader = errors.New("malformed attribute header")

	// ErrBadName indicates a name block that overruns the attribute or
	// lacks its NUL terminator.
	ErrBadName = errors.New("malformed attribute name")

	// ErrBadPayload indicates a scalar payload whose size does not
	// match the declared kind, or a string without a NUL terminator.
	ErrBadPayload = errors.New("malformed attribute payload")
)

// pad4 rounds n up to the next multiple of 4. Attributes inside
// containers are aligned so that every header starts on a 4-byte
// boundary.
func pad4(n int) int {
	return (n + 3) &^ 3
}

// nameBlockLen returns the encoded size of a name block for a name of
// the given length: length prefix, name bytes, NUL terminator, padding.
func nameBlockLen(nameLen int) int {
	return pad4(nameLenSize + nameLen + 1)
}

// Attr is a bounds-checked read-only view of one encoded attribute.
// The zero value is empty and yields zero values from every accessor.
// An Attr obtained from [Parse] or [Buffer.Root] is structurally valid:
// its declared length lies within the underlying buffer and its name
// block and scalar payload have been size-checked, so accessors never
// read out of bounds. Child attributes inside containers are validated
// lazily by [Attr.Children].
type Attr struct {
	data []byte
}

// Parse validates the attribute at the start of data and returns a view
// of it. The attribute may be followed by arbitrary trailing bytes
// (siblings in a stream); they are not part of the returned view.
func Parse(data []byte) (Attr, error) {
	if len(data) < headerSize {
		return Attr{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(data), headerSize)
	}
	header := binary.BigEndian.Uint32(data)
	total := int(header & lengthMask)
	if total < headerSize {
		return Attr{}, fmt.Errorf("%w: declared length %d", ErrBadHeader, total)
	}
	if total > len(data) {
		return Attr{}, fmt.Errorf("%w: declared length %d exceeds %d available bytes", ErrTruncated, total, len(data))
	}

	a := Attr{data: data[:total]}
	kind := a.Kind()
	if kind >= kindCount {
		return Attr{}, fmt.Errorf("%w: unknown kind %d", ErrBadHeader, uint8(kind))
	}

	body := total - headerSize
	if a.HasName() {
		if body < nameLenSize {
			return Attr{}, fmt.Errorf("%w: no room for name length", ErrBadName)
		}
		nameLen := int(binary.BigEndian.Uint16(data[headerSize:]))
		block := nameBlockLen(nameLen)
		if block > body {
			return Attr{}, fmt.Errorf("%w: name block of %d bytes overruns attribute body of %d", ErrBadName, block, body)
		}
		if data[headerSize+nameLenSize+nameLen] != 0 {
			return Attr{}, fmt.Errorf("%w: missing NUL terminator", ErrBadName)
		}
	}

	payload := a.Payload()
	if want := kind.payloadSize(); want >= 0 && len(payload) != want {
		return Attr{}, fmt.Errorf("%w: %s payload is %d bytes, want %d", ErrBadPayload, kind, len(payload), want)
	}
	if kind == String && (len(payload) == 0 || payload[len(payload)-1] != 0) {
		return Attr{}, fmt.Errorf("%w: string payload without NUL terminator", ErrBadPayload)
	}

	return a, nil
}

// IsZero reports whether a is the zero (empty) view.
func (a Attr) IsZero() bool {
	return len(a.data) == 0
}

// Kind returns the declared payload kind.
func (a Attr) Kind() Kind {
	if len(a.data) < headerSize {
		return Unspec
	}
	return Kind(binary.BigEndian.Uint32(a.data) >> kindShift & kindMask)
}

// HasName reports whether the attribute carries a name block. Direct
// children of arrays never do.
func (a Attr) HasName() bool {
	return len(a.data) >= headerSize && binary.BigEndian.Uint32(a.data)&hasNameBit != 0
}

// TotalLen returns the declared length including the header.
func (a Attr) TotalLen() int {
	return len(a.data)
}

// Name returns the attribute's name, or "" when it has none.
func (a Attr) Name() string {
	if !a.HasName() {
		return ""
	}
	nameLen := int(binary.BigEndian.Uint16(a.data[headerSize:]))
	return string(a.data[headerSize+nameLenSize : headerSize+nameLenSize+nameLen])
}

// nameBlock returns the encoded size of the name block, or 0 when the
// attribute is unnamed.
func (a Attr) nameBlock() int {
	if !a.HasName() {
		return 0
	}
	return nameBlockLen(int(binary.BigEndian.Uint16(a.data[headerSize:])))
}

// RawPayload returns everything after the 4-byte header, including the
// name block if present. This is the view used when a caller holds a
// plain container frame whose body is the data itself.
func (a Attr) RawPayload() []byte {
	if len(a.data) < headerSize {
		return nil
	}
	return a.data[headerSize:]
}

// Payload returns the attribute's payload with the name block stripped.
func (a Attr) Payload() []byte {
	if len(a.data) < headerSize {
		return nil
	}
	return a.data[headerSize+a.nameBlock():]
}

// Int8 returns the payload as a signed 8-bit integer.
func (a Attr) Int8() int8 {
	p := a.Payload()
	if len(p) != 1 {
		return 0
	}
	return int8(p[0])
}

// Bool returns the Int8 payload interpreted as a boolean.
func (a Attr) Bool() bool {
	return a.Int8() != 0
}

// Int16 returns the payload as a signed big-endian 16-bit integer.
func (a Attr) Int16() int16 {
	p := a.Payload()
	if len(p) != 2 {
		return 0
	}
	return int16(binary.BigEndian.Uint16(p))
}

// Int32 returns the payload as a signed big-endian 32-bit integer.
func (a Attr) Int32() int32 {
	p := a.Payload()
	if len(p) != 4 {
		return 0
	}
	return int32(binary.BigEndian.Uint32(p))
}

// Int64 returns the payload as a signed big-endian 64-bit integer.
func (a Attr) Int64() int64 {
	p := a.Payload()
	if len(p) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(p))
}

// Float64 returns the payload as an IEEE 754 double.
func (a Attr) Float64() float64 {
	p := a.Payload()
	if len(p) != 8 {
		return 0
	}
	return math.Float64frombits(binary.BigEndian.Uint64(p))
}

// Text returns the string payload with its wire NUL terminator
// stripped.
func (a Attr) Text() string {
	p := a.Payload()
	if len(p) == 0 || p[len(p)-1] != 0 {
		return ""
	}
	return string(p[:len(p)-1])
}

// Children returns the structurally valid child attributes of a
// container, in stream order. Children whose header is readable but
// whose body fails validation are skipped; iteration stops entirely at
// the first child whose declared length cannot be trusted. For
// non-container attributes it returns nil.
//
// This skip-and-continue behavior is the format's deliberate
// best-effort decoding stance: one damaged element does not make the
// rest of a stream unreadable. Strict checking is available through
// [Validate].
func (a Attr) Children() []Attr {
	if !a.Kind().IsContainer() {
		return nil
	}
	return ParseStream(a.Payload())
}

// ParseStream parses a concatenated sequence of sibling attributes,
// skipping elements that are malformed beyond their header and stopping
// at the first untrustworthy length. Used for container payloads and
// for top-level attribute streams.
func ParseStream(p []byte) []Attr {
	var out []Attr
	off := 0
	for off+headerSize <= len(p) {
		rest := p[off:]
		header := binary.BigEndian.Uint32(rest)
		total := int(header & lengthMask)
		if total < headerSize || total > len(rest) {
			break
		}
		if child, err := Parse(rest); err == nil {
			out = append(out, child)
		}
		off += pad4(total)
	}
	return out
}

// Header is the decoded fixed header of an attribute, independent of
// whether the rest of the attribute validates. Diagnostic tooling uses
// it to report on damaged streams.
type Header struct {
	Kind     Kind
	HasName  bool
	TotalLen int
}

// ProbeHeader decodes the header at the start of p without validating
// the attribute body. It fails only when p is too short to contain a
// header or the declared length is impossible.
func ProbeHeader(p []byte) (Header, error) {
	if len(p) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(p), headerSize)
	}
	raw := binary.BigEndian.Uint32(p)
	h := Header{
		Kind:     Kind(raw >> kindShift & kindMask),
		HasName:  raw&hasNameBit != 0,
		TotalLen: int(raw & lengthMask),
	}
	if h.TotalLen < headerSize {
		return Header{}, fmt.Errorf("%w: declared length %d", ErrBadHeader, h.TotalLen)
	}
	return h, nil
}

// Validate strictly checks a and every attribute nested inside it,
// returning the first structural error found. Unlike [Attr.Children],
// nothing is skipped: a single malformed or truncated element anywhere
// in the tree fails the whole check. Trailing bytes in a container that
// do not form a complete attribute are also an error.
func Validate(a Attr) error {
	if _, err := Parse(a.data); err != nil {
		return err
	}
	if !a.Kind().IsContainer() {
		return nil
	}
	return validateStream(a.Payload())
}

func validateStream(p []byte) error {
	off := 0
	for off < len(p) {
		child, err := Parse(p[off:])
		if err != nil {
			return fmt.Errorf("at offset %d: %w", off, err)
		}
		if child.Kind().IsContainer() {
			if err := validateStream(child.Payload()); err != nil {
				return fmt.Errorf("at offset %d: %w", off, err)
			}
		}
		next := off + pad4(child.TotalLen())
		if next > len(p) && off+child.TotalLen() == len(p) {
			// Final child: padding is not required after the last
			// element of a container.
			return nil
		}
		off = next
	}
	return nil
}
