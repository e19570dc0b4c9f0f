// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/attrwire/lib/jsontree"
)

// parseYAML maps a YAML document onto the JSON data model. The yaml
// AST is walked directly instead of unmarshalling into Go maps so
// that member order survives the conversion.
func parseYAML(data []byte) (*jsontree.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("parse YAML: empty document")
	}
	return yamlToTree(&doc)
}

func yamlToTree(n *yaml.Node) (*jsontree.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, fmt.Errorf("line %d: expected a single document, got %d", n.Line, len(n.Content))
		}
		return yamlToTree(n.Content[0])

	case yaml.AliasNode:
		return yamlToTree(n.Alias)

	case yaml.MappingNode:
		obj := jsontree.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			child, err := yamlToTree(value)
			if err != nil {
				return nil, err
			}
			if err := obj.Set(key.Value, child); err != nil {
				return nil, fmt.Errorf("line %d: %w", key.Line, err)
			}
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := jsontree.NewArray()
		for _, item := range n.Content {
			child, err := yamlToTree(item)
			if err != nil {
				return nil, err
			}
			if err := arr.Append(child); err != nil {
				return nil, err
			}
		}
		return arr, nil

	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
}

func yamlScalar(n *yaml.Node) (*jsontree.Node, error) {
	switch n.Tag {
	case "!!null":
		return jsontree.NewNull(), nil
	case "!!bool":
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad bool %q", n.Line, n.Value)
		}
		return jsontree.NewBool(v), nil
	case "!!int":
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad integer %q", n.Line, n.Value)
		}
		return jsontree.NewInt(v), nil
	case "!!float":
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad float %q", n.Line, n.Value)
		}
		return jsontree.NewDouble(v), nil
	default:
		// Strings, timestamps, and any custom tags pass through as text.
		return jsontree.NewString(n.Value), nil
	}
}
