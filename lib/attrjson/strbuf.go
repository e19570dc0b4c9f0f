// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attrjson

// growStep is the fixed increment by which the output buffer grows
// when a write would overflow its capacity.
const growStep = 64

// textBuf is the formatter's output buffer: a byte slice sized up
// front from the input's encoded length (usually an over-estimate for
// flat data), a write cursor, and fixed-increment growth for the cases
// where escaping or nesting overhead wins. Each top-level formatting
// call creates its own textBuf, so concurrent calls never share one.
type textBuf struct {
	buf []byte
	pos int
}

func newTextBuf(capacity int) *textBuf {
	return &textBuf{buf: make([]byte, capacity)}
}

// grow ensures room for n more bytes, extending capacity in growStep
// increments. A single reallocation covers however many increments the
// write needs.
func (s *textBuf) grow(n int) {
	need := s.pos + n
	if need <= len(s.buf) {
		return
	}
	capacity := len(s.buf)
	for capacity < need {
		capacity += growStep
	}
	grown := make([]byte, capacity)
	copy(grown, s.buf[:s.pos])
	s.buf = grown
}

func (s *textBuf) puts(text string) {
	s.grow(len(text))
	copy(s.buf[s.pos:], text)
	s.pos += len(text)
}

func (s *textBuf) putByte(c byte) {
	s.grow(1)
	s.buf[s.pos] = c
	s.pos++
}

// truncate rewinds the cursor to a previously observed position,
// discarding everything written after it.
func (s *textBuf) truncate(pos int) {
	s.pos = pos
}

// String returns the accumulated text, trimmed to the exact content
// length.
func (s *textBuf) String() string {
	return string(s.buf[:s.pos])
}
