// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package attr

import (
	"strings"
	"testing"
)

func TestBufferNesting(t *testing.T) {
	b := NewBuffer()
	if err := b.PutString("name", "value"); err != nil {
		t.Fatal(err)
	}

	list, err := b.OpenArray("list")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.PutInt32("dropped", 7); err != nil {
		t.Fatal(err)
	}
	inner, err := b.OpenTable("also dropped")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.PutBool("flag", true); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(inner); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(list); err != nil {
		t.Fatal(err)
	}

	root := b.Root()
	if err := Validate(root); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d root children, want 2", len(children))
	}
	if children[0].Name() != "name" || children[0].Text() != "value" {
		t.Errorf("first child = %q:%q", children[0].Name(), children[0].Text())
	}

	array := children[1]
	if array.Kind() != Array || array.Name() != "list" {
		t.Fatalf("second child = %s %q, want array %q", array.Kind(), array.Name(), "list")
	}
	elements := array.Children()
	if len(elements) != 2 {
		t.Fatalf("got %d array elements, want 2", len(elements))
	}
	// Array children are always unnamed, whatever name was passed.
	for i, element := range elements {
		if element.HasName() {
			t.Errorf("array element %d carries a name block", i)
		}
	}
	if elements[0].Int32() != 7 {
		t.Errorf("element 0 = %d, want 7", elements[0].Int32())
	}
	table := elements[1]
	if table.Kind() != Table {
		t.Fatalf("element 1 kind = %s, want table", table.Kind())
	}
	members := table.Children()
	if len(members) != 1 || members[0].Name() != "flag" || !members[0].Bool() {
		t.Errorf("nested table members = %+v", members)
	}
}

func TestBufferTableChildrenCarryNameBlocks(t *testing.T) {
	b := NewBuffer()
	if err := b.PutInt32("", 1); err != nil {
		t.Fatal(err)
	}
	child := b.Root().Children()[0]
	// Table children carry a name block even for an empty name; only
	// array children omit it.
	if !child.HasName() {
		t.Error("table child lacks a name block")
	}
	if child.Name() != "" {
		t.Errorf("name = %q, want empty", child.Name())
	}
}

func TestBufferAlignment(t *testing.T) {
	b := NewBuffer()
	for _, value := range []string{"", "a", "ab", "abc", "abcd"} {
		if err := b.PutString("k", value); err != nil {
			t.Fatal(err)
		}
		if b.Len()%4 != 0 {
			t.Errorf("after %q: length %d not 4-aligned", value, b.Len())
		}
	}
	if err := Validate(b.Root()); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBufferCloseMismatch(t *testing.T) {
	b := NewBuffer()
	outer, err := b.OpenTable("outer")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.OpenTable("inner"); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(outer); err == nil {
		t.Error("closing outer before inner succeeded")
	}
}

func TestBufferCloseWithoutOpen(t *testing.T) {
	b := NewBuffer()
	if err := b.Close(Cookie(0)); err == nil {
		t.Error("Close on the implicit root succeeded")
	}
}

func TestBufferNameTooLong(t *testing.T) {
	b := NewBuffer()
	name := strings.Repeat("x", MaxNameLen+1)
	if err := b.PutInt32(name, 1); err == nil {
		t.Error("oversized name accepted")
	}
	// The failed append must not leave a partial attribute behind.
	if len(b.Root().Children()) != 0 {
		t.Error("failed append left data in the buffer")
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer()
	if err := b.PutString("a", "b"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.OpenTable("t"); err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if b.Depth() != 0 {
		t.Errorf("Depth after Reset = %d, want 0", b.Depth())
	}
	if got := len(b.Root().Children()); got != 0 {
		t.Errorf("children after Reset = %d, want 0", got)
	}
}

func TestBufferEmptyRoot(t *testing.T) {
	b := NewBuffer()
	root := b.Root()
	if root.Kind() != Table {
		t.Errorf("root kind = %s, want table", root.Kind())
	}
	if root.TotalLen() != 4 {
		t.Errorf("empty root length = %d, want 4", root.TotalLen())
	}
	if len(root.Children()) != 0 {
		t.Error("empty root has children")
	}
}
