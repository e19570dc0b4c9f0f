// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsontree

import "fmt"

// Kind identifies the variant a Node holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Double
	String
	Array
	Object
)

// String returns the lower-case kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Double:
		return "double"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one value in a JSON document tree. The zero value is null.
//
// Nodes are not safe for concurrent mutation. Scalar accessors return
// the zero value when called on the wrong kind; callers that need to
// distinguish use [Node.Kind] first.
type Node struct {
	kind   Kind
	parent *Node

	str     string
	boolean bool
	integer int64
	double  float64

	// Object members and array elements, in insertion order. For
	// objects, keys runs parallel to children.
	keys     []string
	children []*Node
}

// NewObject returns an empty object node.
func NewObject() *Node { return &Node{kind: Object} }

// NewArray returns an empty array node.
func NewArray() *Node { return &Node{kind: Array} }

// NewString returns a string node.
func NewString(v string) *Node { return &Node{kind: String, str: v} }

// NewBool returns a bool node.
func NewBool(v bool) *Node { return &Node{kind: Bool, boolean: v} }

// NewInt returns an integer node.
func NewInt(v int64) *Node { return &Node{kind: Int, integer: v} }

// NewDouble returns a double node.
func NewDouble(v float64) *Node { return &Node{kind: Double, double: v} }

// NewNull returns a null node.
func NewNull() *Node { return &Node{kind: Null} }

// Kind returns the variant this node holds. A nil node reads as null.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

// Parent returns the node that owns n, or nil for a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Str returns the string value of a string node.
func (n *Node) Str() string {
	if n.Kind() != String {
		return ""
	}
	return n.str
}

// Bool returns the value of a bool node.
func (n *Node) Bool() bool {
	return n.Kind() == Bool && n.boolean
}

// Int returns the value of an int node.
func (n *Node) Int() int64 {
	if n.Kind() != Int {
		return 0
	}
	return n.integer
}

// Float returns the value of a double node, or the int value widened
// when called on an int node.
func (n *Node) Float() float64 {
	switch n.Kind() {
	case Double:
		return n.double
	case Int:
		return float64(n.integer)
	default:
		return 0
	}
}

// Len returns the number of members of an object or elements of an
// array, and 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// At returns the i'th child (array element or object member value) in
// insertion order, or nil when out of range.
func (n *Node) At(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Key returns the name of the i'th object member, or "" when out of
// range or not an object.
func (n *Node) Key(i int) string {
	if n.Kind() != Object || i < 0 || i >= len(n.keys) {
		return ""
	}
	return n.keys[i]
}

// Member returns the object member with the given name.
func (n *Node) Member(name string) (*Node, bool) {
	if n.Kind() != Object {
		return nil, false
	}
	for i, key := range n.keys {
		if key == name {
			return n.children[i], true
		}
	}
	return nil, false
}

// Append adds an element to the end of an array node and takes
// ownership of it.
func (n *Node) Append(child *Node) error {
	if n.Kind() != Array {
		return fmt.Errorf("append to %s node", n.Kind())
	}
	if child.parent != nil {
		return fmt.Errorf("node already owned by another tree")
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Set adds or replaces the object member with the given name, taking
// ownership of child. A replaced member keeps its position in the
// insertion order; the evicted node is detached.
func (n *Node) Set(name string, child *Node) error {
	if n.Kind() != Object {
		return fmt.Errorf("set member on %s node", n.Kind())
	}
	if child.parent != nil {
		return fmt.Errorf("node already owned by another tree")
	}
	child.parent = n
	for i, key := range n.keys {
		if key == name {
			n.children[i].parent = nil
			n.children[i] = child
			return nil
		}
	}
	n.keys = append(n.keys, name)
	n.children = append(n.children, child)
	return nil
}

// Delete removes the object member with the given name, detaching it.
// Removing a missing member is a no-op.
func (n *Node) Delete(name string) {
	if n.Kind() != Object {
		return
	}
	for i, key := range n.keys {
		if key == name {
			n.children[i].parent = nil
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// NameInParent returns the object key under which n is stored in its
// parent, or "" when the parent is not an object.
func (n *Node) NameInParent() string {
	p := n.Parent()
	if p.Kind() != Object {
		return ""
	}
	for i, child := range p.children {
		if child == n {
			return p.keys[i]
		}
	}
	return ""
}

// IndexInParent returns the position of n among its parent's children,
// or -1 for a root.
func (n *Node) IndexInParent() int {
	p := n.Parent()
	if p == nil {
		return -1
	}
	for i, child := range p.children {
		if child == n {
			return i
		}
	}
	return -1
}
