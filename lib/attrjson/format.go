// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attrjson

import (
	"strconv"

	"github.com/bureau-foundation/attrwire/lib/attr"
)

// RenderHook customizes the text emitted for individual attributes.
// The formatter offers every element to the hook before its default
// rendering; returning ok=false defers to the default. The returned
// text is emitted verbatim, so a hook producing a string value must do
// its own quoting.
//
// Hooks run synchronously inside the formatting call and must not
// retain or mutate the attribute they are given.
type RenderHook interface {
	Render(a attr.Attr) (text string, ok bool)
}

// RenderFunc adapts a plain function to the RenderHook interface.
type RenderFunc func(a attr.Attr) (string, bool)

// Render calls f.
func (f RenderFunc) Render(a attr.Attr) (string, bool) {
	return f(a)
}

// Format renders a single attribute as JSON text. The second result is
// false when there is nothing to format (an attribute with an empty
// body). Formatting the same attribute twice yields identical text.
func Format(a attr.Attr) (string, bool) {
	return format(a, false, nil)
}

// FormatList renders the children of a as the members of one JSON
// object, without the enclosing attribute itself contributing
// anything. This is the view used for a [attr.Buffer] root: the
// buffer's top-level elements become the document's members.
func FormatList(a attr.Attr) (string, bool) {
	return format(a, true, nil)
}

// FormatWithHook is Format (or FormatList when asList is set) with a
// render hook consulted for every element.
func FormatWithHook(a attr.Attr, asList bool, hook RenderHook) (string, bool) {
	return format(a, asList, hook)
}

func format(a attr.Attr, asList bool, hook RenderHook) (string, bool) {
	// The encoded body length is the initial capacity heuristic: an
	// over-estimate for most streams, outgrown only by heavy escaping
	// or deep nesting. An empty body means there is nothing to format
	// at all. This makes an empty stream distinct from a
	// stream holding one empty container, which formats as "{  }".
	capacity := len(a.RawPayload())
	if capacity == 0 {
		return "", false
	}

	s := newTextBuf(capacity)
	if asList {
		formatList(s, a.Payload(), false, hook)
	} else {
		formatElement(s, a, false, hook)
	}
	return s.String(), true
}

// formatElement appends the JSON rendering of one attribute. A
// malformed or unrenderable element emits nothing, including its
// name, which is rewound if the value turns out to be unprintable;
// and formatting continues with the caller's remaining elements.
// Names are emitted only outside arrays and only when non-empty.
func formatElement(s *textBuf, a attr.Attr, insideArray bool, hook RenderHook) {
	if a.IsZero() {
		return
	}

	mark := s.pos
	if !insideArray {
		if name := a.Name(); name != "" {
			escapeString(s, name)
			s.putByte(':')
		}
	}

	if hook != nil {
		if text, ok := hook.Render(a); ok {
			s.puts(text)
			return
		}
	}

	valueStart := s.pos
	switch a.Kind() {
	case attr.Int8:
		s.puts(strconv.FormatInt(int64(a.Int8()), 10))
	case attr.Int16:
		s.puts(strconv.FormatInt(int64(a.Int16()), 10))
	case attr.Int32:
		s.puts(strconv.FormatInt(int64(a.Int32()), 10))
	case attr.Int64:
		s.puts(strconv.FormatInt(a.Int64(), 10))
	case attr.String:
		escapeString(s, a.Text())
	case attr.Array:
		formatList(s, a.Payload(), true, hook)
	case attr.Table:
		formatList(s, a.Payload(), false, hook)
	default:
		// Unspec and Double have no JSON rendering (the encoder never
		// produces them). Fall through to the rewind below so a
		// dangling name is not left behind.
	}
	if s.pos == valueStart {
		s.truncate(mark)
	}
}

// formatList appends a JSON container: `[ ` / ` ]` markers for arrays,
// `{ ` / ` }` for tables, elements joined by `, `. An empty container
// renders with two interior spaces (`[  ]`, `{  }`); this literal
// spacing is part of the wire-compatibility contract.
func formatList(s *textBuf, payload []byte, isArray bool, hook RenderHook) {
	if isArray {
		s.puts("[ ")
	} else {
		s.puts("{ ")
	}

	first := true
	for _, child := range attr.ParseStream(payload) {
		mark := s.pos
		if !first {
			s.puts(", ")
		}
		elementStart := s.pos
		formatElement(s, child, isArray, hook)
		if s.pos == elementStart {
			// The element emitted nothing; drop its separator too.
			s.truncate(mark)
			continue
		}
		first = false
	}

	if isArray {
		s.puts(" ]")
	} else {
		s.puts(" }")
	}
}
