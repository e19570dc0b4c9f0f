// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// Parse builds a document tree from strict JSON text. Object member
// order is preserved; numbers become Int nodes when they fit int64
// without a fractional part and Double nodes otherwise. Duplicate
// object keys follow last-wins semantics. Trailing non-whitespace after
// the document is an error.
func Parse(data []byte) (*Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	root, err := parseValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("parsing JSON: trailing data after document")
	}
	return root, nil
}

// ParseLenient is Parse with // and /* */ comments and trailing commas
// tolerated. Hand-edited configuration inputs commonly carry both; the
// comment stripper rewrites them to strict JSON before parsing.
func ParseLenient(data []byte) (*Node, error) {
	return Parse(jsonc.ToJSON(data))
}

func parseValue(decoder *json.Decoder) (*Node, error) {
	token, err := decoder.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of input")
		}
		return nil, err
	}
	return parseToken(decoder, token)
}

func parseToken(decoder *json.Decoder, token json.Token) (*Node, error) {
	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(decoder)
		case '[':
			return parseArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected %q", t.String())
		}

	case string:
		return NewString(t), nil

	case bool:
		return NewBool(t), nil

	case json.Number:
		if integer, err := t.Int64(); err == nil {
			return NewInt(integer), nil
		}
		double, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q out of range", t.String())
		}
		return NewDouble(double), nil

	case nil:
		return NewNull(), nil

	default:
		return nil, fmt.Errorf("unexpected token %v", token)
	}
}

func parseObject(decoder *json.Decoder) (*Node, error) {
	object := NewObject()
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, want string", keyToken)
		}
		value, err := parseValue(decoder)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		if err := object.Set(key, value); err != nil {
			return nil, err
		}
	}
	// Consume the closing brace.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return object, nil
}

func parseArray(decoder *json.Decoder) (*Node, error) {
	array := NewArray()
	for decoder.More() {
		value, err := parseValue(decoder)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", array.Len(), err)
		}
		if err := array.Append(value); err != nil {
			return nil, err
		}
	}
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return array, nil
}
