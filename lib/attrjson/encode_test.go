// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attrjson

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/attrwire/lib/attr"
	"github.com/bureau-foundation/attrwire/lib/jsontree"
)

func TestAddJSON(t *testing.T) {
	b := attr.NewBuffer()
	err := AddJSON(b, []byte(`{"name":"eth0","up":true,"mtu":1500,"addrs":["10.0.0.1","10.0.0.2"]}`))
	if err != nil {
		t.Fatalf("AddJSON: %v", err)
	}

	children := b.Root().Children()
	if len(children) != 4 {
		t.Fatalf("got %d top-level attributes, want 4", len(children))
	}

	if children[0].Kind() != attr.String || children[0].Text() != "eth0" {
		t.Errorf("name = %s %q", children[0].Kind(), children[0].Text())
	}
	if children[1].Kind() != attr.Int8 || !children[1].Bool() {
		t.Errorf("up = %s %v", children[1].Kind(), children[1].Bool())
	}
	if children[2].Kind() != attr.Int32 || children[2].Int32() != 1500 {
		t.Errorf("mtu = %s %d", children[2].Kind(), children[2].Int32())
	}
	if children[3].Kind() != attr.Array || len(children[3].Children()) != 2 {
		t.Errorf("addrs = %s with %d elements", children[3].Kind(), len(children[3].Children()))
	}
}

func TestAddJSONRootMustBeObject(t *testing.T) {
	for _, input := range []string{`[1,2]`, `"text"`, `42`, `true`, `null`} {
		b := attr.NewBuffer()
		if err := AddJSON(b, []byte(input)); !errors.Is(err, ErrRootNotObject) {
			t.Errorf("AddJSON(%s) error = %v, want %v", input, err, ErrRootNotObject)
		}
	}
}

func TestAddJSONParseFailure(t *testing.T) {
	b := attr.NewBuffer()
	if err := AddJSON(b, []byte(`{"broken":`)); err == nil {
		t.Fatal("AddJSON accepted malformed JSON")
	}
	if got := len(b.Root().Children()); got != 0 {
		t.Errorf("failed parse left %d attributes in the buffer", got)
	}
}

func TestAddElementUnsupportedKinds(t *testing.T) {
	tests := []struct {
		name string
		node *jsontree.Node
	}{
		{"null", jsontree.NewNull()},
		{"double", jsontree.NewDouble(3.14)},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := attr.NewBuffer()
			if err := AddElement(b, "x", tt.node); !errors.Is(err, ErrUnsupportedKind) {
				t.Fatalf("error = %v, want %v", err, ErrUnsupportedKind)
			}
			if got := len(b.Root().Children()); got != 0 {
				t.Errorf("failed add left %d attributes", got)
			}
		})
	}
}

// A container holding an unsupported value still keeps the valid
// siblings added before the failure, the container is closed, and the
// overall call fails. There is no rollback.
func TestAddElementPartialFailure(t *testing.T) {
	root, err := jsontree.Parse([]byte(`{"good":1,"bad":3.5,"unreached":2}`))
	if err != nil {
		t.Fatal(err)
	}

	b := attr.NewBuffer()
	err = AddElement(b, "config", root)
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("error = %v, want %v", err, ErrUnsupportedKind)
	}

	children := b.Root().Children()
	if len(children) != 1 {
		t.Fatalf("got %d top-level attributes, want the closed table", len(children))
	}
	table := children[0]
	if table.Kind() != attr.Table {
		t.Fatalf("kind = %s, want table", table.Kind())
	}
	// The stream must still be structurally whole: the table was
	// closed despite the failure inside it.
	if err := attr.Validate(b.Root()); err != nil {
		t.Errorf("stream after partial failure is not well-formed: %v", err)
	}
	members := table.Children()
	if len(members) != 1 || members[0].Name() != "good" {
		t.Errorf("members after failure = %d, want only %q", len(members), "good")
	}
}

func TestAddElementIntegerTruncation(t *testing.T) {
	b := attr.NewBuffer()
	// 2^32 + 5 truncates to 5 in the 32-bit carrier.
	if err := AddElement(b, "n", jsontree.NewInt(1<<32+5)); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	child := b.Root().Children()[0]
	if child.Kind() != attr.Int32 || child.Int32() != 5 {
		t.Errorf("truncated value = %s %d, want int32 5", child.Kind(), child.Int32())
	}
}

func TestAddElementNestedArrays(t *testing.T) {
	root, err := jsontree.Parse([]byte(`{"matrix":[[1,2],[3,4]],"empty":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	b := attr.NewBuffer()
	if err := addMembers(b, root); err != nil {
		t.Fatalf("addMembers: %v", err)
	}
	if err := attr.Validate(b.Root()); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	matrix := b.Root().Children()[0]
	rows := matrix.Children()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	second := rows[1].Children()
	if len(second) != 2 || second[0].Int32() != 3 || second[1].Int32() != 4 {
		t.Errorf("second row = %+v", second)
	}

	empty := b.Root().Children()[1]
	if empty.Kind() != attr.Array || len(empty.Children()) != 0 {
		t.Errorf("empty array = %s with %d children", empty.Kind(), len(empty.Children()))
	}
}
