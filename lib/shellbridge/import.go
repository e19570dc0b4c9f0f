// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shellbridge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bureau-foundation/attrwire/lib/jsontree"
)

// Import rebuilds a jsontree document from a flat variable namespace.
// lookup follows the os.LookupEnv contract: the second return reports
// whether the variable is set at all, and an empty string is a valid
// value.
func Import(lookup func(string) (string, bool), prefix string) (*jsontree.Node, error) {
	if !validPrefix(prefix) {
		return nil, fmt.Errorf("%w: %q", errBadPrefix, prefix)
	}
	im := importer{lookup: lookup, prefix: prefix}
	return im.node("")
}

type importer struct {
	lookup func(string) (string, bool)
	prefix string
}

func (im *importer) variable(class, path string) (string, bool) {
	name := im.prefix + "_" + class
	if path != "" {
		name += "_" + path
	}
	return im.lookup(name)
}

func (im *importer) node(path string) (*jsontree.Node, error) {
	kind, ok := im.variable("TYPE", path)
	if !ok {
		return nil, fmt.Errorf("missing type for %q", displayPath(path))
	}
	switch kind {
	case "object":
		return im.container(path, true)
	case "array":
		return im.container(path, false)
	case "string":
		v, err := im.scalar(path)
		if err != nil {
			return nil, err
		}
		return jsontree.NewString(v), nil
	case "bool":
		v, err := im.scalar(path)
		if err != nil {
			return nil, err
		}
		switch v {
		case "1":
			return jsontree.NewBool(true), nil
		case "0":
			return jsontree.NewBool(false), nil
		}
		return nil, fmt.Errorf("bool at %q is %q, want 0 or 1", displayPath(path), v)
	case "int":
		v, err := im.scalar(path)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int at %q: %w", displayPath(path), err)
		}
		return jsontree.NewInt(n), nil
	case "double":
		v, err := im.scalar(path)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("double at %q: %w", displayPath(path), err)
		}
		return jsontree.NewDouble(f), nil
	case "null":
		return jsontree.NewNull(), nil
	}
	return nil, fmt.Errorf("unknown type %q at %q", kind, displayPath(path))
}

func (im *importer) scalar(path string) (string, error) {
	v, ok := im.variable("VAL", path)
	if !ok {
		return "", fmt.Errorf("missing value for %q", displayPath(path))
	}
	return v, nil
}

func (im *importer) container(path string, object bool) (*jsontree.Node, error) {
	keys, ok := im.variable("KEYS", path)
	if !ok {
		return nil, fmt.Errorf("missing key list for %q", displayPath(path))
	}
	var segments []string
	if keys != "" {
		segments = strings.Split(keys, " ")
	}
	if object {
		n := jsontree.NewObject()
		for _, segment := range segments {
			name, err := unmangleSegment(segment)
			if err != nil {
				return nil, fmt.Errorf("key list for %q: %w", displayPath(path), err)
			}
			child, err := im.node(childPath(path, segment))
			if err != nil {
				return nil, err
			}
			if err := n.Set(name, child); err != nil {
				return nil, err
			}
		}
		return n, nil
	}
	n := jsontree.NewArray()
	for i, segment := range segments {
		if segment != strconv.Itoa(i) {
			return nil, fmt.Errorf("array at %q has index %q at position %d", displayPath(path), segment, i)
		}
		child, err := im.node(childPath(path, segment))
		if err != nil {
			return nil, err
		}
		if err := n.Append(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// displayPath makes the root location readable in error messages.
func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
