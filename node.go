// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// A Kind identifies which JSON type a Node represents.
type Kind byte

// The kinds of JSON values. A node is Untyped from allocation until the
// first byte of its value has been consumed; thereafter its kind is fixed
// for the rest of the parse.
const (
	Untyped Kind = iota
	Object
	Array
	String
	Number
	Bool
	Null
)

var kindStr = [...]string{
	Untyped: "untyped",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Number:  "number",
	Bool:    "bool",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Node is a single JSON value under construction or completed.  The zero
// state of a node is an untyped value with no content; Feed populates it one
// byte at a time.  Once Feed has reported Complete, the node and its subtree
// are immutable until released, and the accessor methods report the parsed
// content.
//
// A node belongs to exactly one parse and must not be shared between
// goroutines while parsing.  Distinct parses, each with its own root, may
// proceed concurrently.
type Node struct {
	kind  Kind
	key   string  // member key, set when the parent is an object
	text  string  // payload for String
	num   float64 // payload for Number
	truth bool    // payload for Bool

	kids []*Node // completed children, in document order
	cur  *Node   // child currently being parsed, nil when none

	state   state
	scratch []byte // partial text for string, number, and keyword states
}

// nodePool recycles released nodes along with their scratch and child slice
// capacity.  All parses share it; sync.Pool is safe for concurrent use.
var nodePool = sync.Pool{New: func() any { return new(Node) }}

// liveNodes counts nodes handed out but not yet released.  Tests use it to
// verify that failed and released parses return every node they took.
var liveNodes atomic.Int64

// newNode returns a fresh untyped node with no key, payload, or children.
func newNode() *Node {
	liveNodes.Add(1)
	return nodePool.Get().(*Node)
}

// Release returns n and every node below it to the allocator.  After Release
// the caller must not touch the tree again; the nodes may be reused by other
// parses.  Release of a nil node is a no-op.
//
// Feed releases automatically when it reports Fail.  Trees handed to the
// caller at Complete are the caller's to release; leaving them to the
// garbage collector is also fine, it just bypasses reuse.
func (n *Node) Release() {
	if n == nil {
		return
	}
	for _, kid := range n.kids {
		kid.Release()
	}
	n.cur.Release()
	clear(n.kids) // keep the capacity, drop the pointers
	*n = Node{kids: n.kids[:0], scratch: n.scratch[:0]}
	liveNodes.Add(-1)
	nodePool.Put(n)
}

// Kind reports which JSON type n represents.
func (n *Node) Kind() Kind { return n.kind }

// Key reports the member key of n.  It is "" unless n is the direct child of
// an object.
func (n *Node) Key() string { return n.key }

// Text reports the decoded content of a String node, and "" otherwise.
func (n *Node) Text() string { return n.text }

// Float64 reports the value of a Number node, and 0 otherwise.
func (n *Node) Float64() float64 { return n.num }

// Bool reports the value of a Bool node, and false otherwise.
func (n *Node) Bool() bool { return n.truth }

// Len reports the number of children of n.  It is 0 for non-container nodes.
func (n *Node) Len() int { return len(n.kids) }

// Child returns the ith completed child of n, in document order.  It panics
// if i is out of range.
func (n *Node) Child(i int) *Node { return n.kids[i] }

// Children returns the completed children of n in document order.  The slice
// is shared with n and must not be modified.
func (n *Node) Children() []*Node { return n.kids }

// Find returns the first child of n whose key equals key, or nil if no such
// child exists.  It is meaningful only when n is an Object.
func (n *Node) Find(key string) *Node {
	for _, kid := range n.kids {
		if kid.key == key {
			return kid
		}
	}
	return nil
}

// Interface converts a completed tree into plain Go values: objects become
// map[string]any (later duplicate keys win), arrays []any, strings string,
// numbers float64, bools bool, and null nil.  It panics on an untyped node.
func (n *Node) Interface() any {
	switch n.kind {
	case Object:
		m := make(map[string]any, len(n.kids))
		for _, kid := range n.kids {
			m[kid.key] = kid.Interface()
		}
		return m
	case Array:
		vs := make([]any, len(n.kids))
		for i, kid := range n.kids {
			vs[i] = kid.Interface()
		}
		return vs
	case String:
		return n.text
	case Number:
		return n.num
	case Bool:
		return n.truth
	case Null:
		return nil
	default:
		panic(fmt.Sprintf("incomplete %v node", n.kind))
	}
}
