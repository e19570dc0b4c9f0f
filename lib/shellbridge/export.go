// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shellbridge

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bureau-foundation/attrwire/lib/jsontree"
)

var errBadPrefix = errors.New("prefix must be a shell identifier")

// Export writes eval-able POSIX shell assignments describing root to
// w. The namespace prefix must itself be a valid shell identifier.
func Export(w io.Writer, root *jsontree.Node, prefix string) error {
	if root == nil {
		return errors.New("nil root")
	}
	if !validPrefix(prefix) {
		return fmt.Errorf("%w: %q", errBadPrefix, prefix)
	}
	e := exporter{w: w, prefix: prefix}
	e.node(root, "")
	return e.err
}

func validPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

type exporter struct {
	w      io.Writer
	prefix string
	err    error
}

// assign emits one NAME='value' line. class is TYPE, KEYS or VAL and
// path is the mangled location, empty at the root.
func (e *exporter) assign(class, path, value string) {
	if e.err != nil {
		return
	}
	name := e.prefix + "_" + class
	if path != "" {
		name += "_" + path
	}
	_, e.err = fmt.Fprintf(e.w, "%s=%s\n", name, shellQuote(value))
}

func (e *exporter) node(n *jsontree.Node, path string) {
	e.assign("TYPE", path, n.Kind().String())
	switch n.Kind() {
	case jsontree.Object:
		segments := make([]string, n.Len())
		for i := range segments {
			segments[i] = mangleSegment(n.Key(i))
		}
		e.assign("KEYS", path, strings.Join(segments, " "))
		for i, segment := range segments {
			e.node(n.At(i), childPath(path, segment))
		}
	case jsontree.Array:
		segments := make([]string, n.Len())
		for i := range segments {
			segments[i] = strconv.Itoa(i)
		}
		e.assign("KEYS", path, strings.Join(segments, " "))
		for i, segment := range segments {
			e.node(n.At(i), childPath(path, segment))
		}
	case jsontree.String:
		e.assign("VAL", path, n.Str())
	case jsontree.Bool:
		v := "0"
		if n.Bool() {
			v = "1"
		}
		e.assign("VAL", path, v)
	case jsontree.Int:
		e.assign("VAL", path, strconv.FormatInt(n.Int(), 10))
	case jsontree.Double:
		e.assign("VAL", path, strconv.FormatFloat(n.Float(), 'g', -1, 64))
	case jsontree.Null:
		// TYPE alone carries a null.
	}
}

func childPath(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "_" + segment
}
