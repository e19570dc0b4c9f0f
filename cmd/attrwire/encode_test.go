// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/attrwire/lib/attr"
	"github.com/bureau-foundation/attrwire/lib/attrjson"
)

// render decodes a wire stream back to JSON text for assertions.
func render(t *testing.T, stream []byte) string {
	t.Helper()
	a, err := attr.Parse(stream)
	if err != nil {
		t.Fatalf("parse produced stream: %v", err)
	}
	text, ok := attrjson.Format(a)
	if !ok {
		t.Fatal("produced stream renders to nothing")
	}
	return text
}

func TestEncodeStreamJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "flat object",
			input: `{"name":"eth0","up":true,"mtu":1500}`,
			want:  `{ "name":"eth0", "up":1, "mtu":1500 }`,
		},
		{
			name:  "nested containers",
			input: `{"ports":[1,2],"peer":{"host":"a"}}`,
			want:  `{ "ports":[ 1, 2 ], "peer":{ "host":"a" } }`,
		},
		{
			name: "jsonc tolerated",
			input: `{
				// interface name
				"name": "lan",
				"mtu": 9000, // trailing comma next
			}`,
			want: `{ "name":"lan", "mtu":9000 }`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stream, err := encodeStream([]byte(tc.input), false)
			if err != nil {
				t.Fatalf("encodeStream: %v", err)
			}
			if got := render(t, stream); got != tc.want {
				t.Errorf("rendered %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeStreamRejectsNonObjectRoot(t *testing.T) {
	for _, input := range []string{`[1,2]`, `"text"`, `42`, `null`} {
		if _, err := encodeStream([]byte(input), false); !errors.Is(err, attrjson.ErrRootNotObject) {
			t.Errorf("input %s: err = %v, want ErrRootNotObject", input, err)
		}
	}
}

func TestEncodeStreamYAML(t *testing.T) {
	input := `
name: eth0
up: true
mtu: 1500
ports:
  - 1
  - 2
`
	stream, err := encodeStream([]byte(input), true)
	if err != nil {
		t.Fatalf("encodeStream: %v", err)
	}
	want := `{ "name":"eth0", "up":1, "mtu":1500, "ports":[ 1, 2 ] }`
	if got := render(t, stream); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestEncodeStreamYAMLNullMember(t *testing.T) {
	if _, err := encodeStream([]byte("gw: null\n"), true); !errors.Is(err, attrjson.ErrUnsupportedKind) {
		t.Errorf("err = %v, want ErrUnsupportedKind", err)
	}
}

func TestEncodeStreamYAMLAnchors(t *testing.T) {
	input := `
defaults: &d
  mtu: 1500
lan: *d
`
	stream, err := encodeStream([]byte(input), true)
	if err != nil {
		t.Fatalf("encodeStream: %v", err)
	}
	want := `{ "defaults":{ "mtu":1500 }, "lan":{ "mtu":1500 } }`
	if got := render(t, stream); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}
