// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attrjson

const hexDigits = "0123456789abcdef"

// escapeString writes value to s as a quoted JSON string. Control
// characters with short escapes use them (\b \n \t \r); quote,
// backslash, and forward slash are backslash-escaped (the slash is not
// required by JSON but existing consumers of the format expect it);
// any other byte below 0x20 becomes \u00xx with lowercase hex digits.
// Bytes 0x20 and above pass through untouched; escaping is not
// UTF-8-aware.
func escapeString(s *textBuf, value string) {
	s.putByte('"')

	last := 0
	for i := 0; i < len(value); i++ {
		c := value[i]

		var escape byte
		switch c {
		case '\b':
			escape = 'b'
		case '\n':
			escape = 'n'
		case '\t':
			escape = 't'
		case '\r':
			escape = 'r'
		case '"', '\\', '/':
			escape = c
		default:
			if c < 0x20 {
				escape = 'u'
			}
		}
		if escape == 0 {
			continue
		}

		if i > last {
			s.puts(value[last:i])
		}
		last = i + 1

		if escape == 'u' {
			s.puts("\\u00")
			s.putByte(hexDigits[c>>4])
			s.putByte(hexDigits[c&0xf])
		} else {
			s.putByte('\\')
			s.putByte(escape)
		}
	}

	s.puts(value[last:])
	s.putByte('"')
}
