// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Buffer builds an attribute stream incrementally. The stream is rooted
// in an implicit unnamed table: every Put call appends one child to the
// innermost open container, and OpenTable/OpenArray nest further
// containers inside it.
//
// Names follow the container rules of the format: children of tables
// always carry a name block (possibly with an empty name), children of
// arrays never do; a name passed while an array is open is dropped.
//
// A Buffer is not safe for concurrent use; callers building one stream
// from several goroutines must serialize access themselves.
type Buffer struct {
	buf []byte

	// open tracks the innermost open containers. Index 0 is the
	// implicit root table and is never closed.
	open []nested
}

type nested struct {
	offset int
	array  bool
}

// Cookie identifies an open container for [Buffer.Close]. It is only
// meaningful for the Buffer that produced it.
type Cookie int

// NewBuffer returns an empty Buffer ready for appending.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.Reset()
	return b
}

// Reset discards all content and open containers, returning the Buffer
// to its freshly created state. The underlying allocation is kept.
func (b *Buffer) Reset() {
	b.buf = append(b.buf[:0], 0, 0, 0, 0)
	b.open = append(b.open[:0], nested{offset: 0, array: false})
}

// inArray reports whether the innermost open container is an array.
func (b *Buffer) inArray() bool {
	return b.open[len(b.open)-1].array
}

// appendHeader appends an attribute header plus name block and returns
// the attribute's offset. The length field is left zero; the caller
// patches it once the payload size is known.
func (b *Buffer) appendHeader(kind Kind, name string) (int, error) {
	if len(name) > MaxNameLen {
		return 0, fmt.Errorf("attribute name is %d bytes, limit %d", len(name), MaxNameLen)
	}

	offset := len(b.buf)
	named := !b.inArray()

	var header uint32 = uint32(kind) << kindShift
	if named {
		header |= hasNameBit
	}
	b.buf = binary.BigEndian.AppendUint32(b.buf, header)

	if named {
		b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(len(name)))
		b.buf = append(b.buf, name...)
		b.buf = append(b.buf, 0)
		b.pad()
	}
	return offset, nil
}

// pad aligns the write position to a 4-byte boundary.
func (b *Buffer) pad() {
	for len(b.buf)%4 != 0 {
		b.buf = append(b.buf, 0)
	}
}

// patchLen writes the total length of the attribute at offset into its
// header. Fails when the attribute outgrew the 24-bit length field.
func (b *Buffer) patchLen(offset, total int) error {
	if total > MaxTotalLen {
		return fmt.Errorf("attribute of %d bytes exceeds the %d byte format limit", total, MaxTotalLen)
	}
	header := binary.BigEndian.Uint32(b.buf[offset:])
	binary.BigEndian.PutUint32(b.buf[offset:], header&^lengthMask|uint32(total))
	return nil
}

// put appends one complete scalar attribute.
func (b *Buffer) put(kind Kind, name string, payload []byte) error {
	offset, err := b.appendHeader(kind, name)
	if err != nil {
		return err
	}
	b.buf = append(b.buf, payload...)
	if err := b.patchLen(offset, len(b.buf)-offset); err != nil {
		// Roll the partial attribute back so the stream stays
		// well-formed.
		b.buf = b.buf[:offset]
		return err
	}
	if grown := pad4(len(b.buf)); grown > MaxTotalLen {
		b.buf = b.buf[:offset]
		return fmt.Errorf("stream of %d bytes exceeds the %d byte format limit", grown, MaxTotalLen)
	}
	b.pad()
	return nil
}

// PutString appends a string attribute. The wire form carries a
// trailing NUL after the text.
func (b *Buffer) PutString(name, value string) error {
	payload := make([]byte, len(value)+1)
	copy(payload, value)
	return b.put(String, name, payload)
}

// PutBool appends a boolean as an Int8 attribute valued 0 or 1.
func (b *Buffer) PutBool(name string, value bool) error {
	v := byte(0)
	if value {
		v = 1
	}
	return b.put(Int8, name, []byte{v})
}

// PutInt8 appends a signed 8-bit integer attribute.
func (b *Buffer) PutInt8(name string, value int8) error {
	return b.put(Int8, name, []byte{byte(value)})
}

// PutInt16 appends a signed 16-bit integer attribute.
func (b *Buffer) PutInt16(name string, value int16) error {
	return b.put(Int16, name, binary.BigEndian.AppendUint16(nil, uint16(value)))
}

// PutInt32 appends a signed 32-bit integer attribute.
func (b *Buffer) PutInt32(name string, value int32) error {
	return b.put(Int32, name, binary.BigEndian.AppendUint32(nil, uint32(value)))
}

// PutInt64 appends a signed 64-bit integer attribute.
func (b *Buffer) PutInt64(name string, value int64) error {
	return b.put(Int64, name, binary.BigEndian.AppendUint64(nil, uint64(value)))
}

// PutFloat64 appends an IEEE 754 double attribute. The JSON encoder
// never calls this; it exists for producers of non-JSON streams.
func (b *Buffer) PutFloat64(name string, value float64) error {
	return b.put(Double, name, binary.BigEndian.AppendUint64(nil, math.Float64bits(value)))
}

// OpenTable starts a nested table. Children appended until the matching
// Close become its named members.
func (b *Buffer) OpenTable(name string) (Cookie, error) {
	return b.openContainer(Table, name, false)
}

// OpenArray starts a nested array. Children appended until the matching
// Close become its unnamed elements.
func (b *Buffer) OpenArray(name string) (Cookie, error) {
	return b.openContainer(Array, name, true)
}

func (b *Buffer) openContainer(kind Kind, name string, array bool) (Cookie, error) {
	offset, err := b.appendHeader(kind, name)
	if err != nil {
		return 0, err
	}
	// The header-only container must itself be a valid (empty)
	// attribute, so its length is patched eagerly and again on Close.
	if err := b.patchLen(offset, len(b.buf)-offset); err != nil {
		b.buf = b.buf[:offset]
		return 0, err
	}
	if len(b.buf) > MaxTotalLen {
		b.buf = b.buf[:offset]
		return 0, fmt.Errorf("stream of %d bytes exceeds the %d byte format limit", len(b.buf), MaxTotalLen)
	}
	b.open = append(b.open, nested{offset: offset, array: array})
	return Cookie(offset), nil
}

// Close finishes the innermost open container, patching its length to
// cover everything appended since the matching Open call. The cookie
// must be the one returned by that call.
func (b *Buffer) Close(c Cookie) error {
	if len(b.open) <= 1 {
		return fmt.Errorf("close without open container")
	}
	top := b.open[len(b.open)-1]
	if top.offset != int(c) {
		return fmt.Errorf("mismatched container close: got cookie %d, innermost container is at %d", int(c), top.offset)
	}
	b.open = b.open[:len(b.open)-1]
	return b.patchLen(top.offset, len(b.buf)-top.offset)
}

// Depth returns the number of open containers, not counting the
// implicit root table.
func (b *Buffer) Depth() int {
	return len(b.open) - 1
}

// Len returns the current encoded size of the stream, including the
// root table header.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Root returns a view of the stream as a single unnamed table
// attribute. The view shares memory with the Buffer: appending after
// Root invalidates it.
func (b *Buffer) Root() Attr {
	b.patchRoot()
	return Attr{data: b.buf}
}

// Bytes returns the encoded stream: the root table attribute including
// its header. The slice shares memory with the Buffer.
func (b *Buffer) Bytes() []byte {
	b.patchRoot()
	return b.buf
}

func (b *Buffer) patchRoot() {
	total := len(b.buf)
	if total > MaxTotalLen {
		// Put and Close reject any append that would overflow the
		// root, so this is unreachable; guard anyway rather than
		// emit a corrupt header.
		total = MaxTotalLen
	}
	binary.BigEndian.PutUint32(b.buf, uint32(Table)<<kindShift|uint32(total))
}
