// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// A Decoder reads a stream of JSON values from an underlying reader,
// feeding the parser one byte at a time.  Whitespace before and between
// top-level values is skipped.
type Decoder struct {
	r   *bufio.Reader
	pos Pos // position of the next unread byte
}

// NewDecoder constructs a Decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r), pos: Pos{Line: 1}}
}

// Pos reports the position of the next byte of input.
func (d *Decoder) Pos() Pos { return d.pos }

// Decode returns the next complete value from the input.  It returns io.EOF
// when no values remain, io.ErrUnexpectedEOF when the input ends inside a
// value, and a *SyntaxError when a byte violates the grammar.
//
// A syntax error does not disable the decoder: the next call starts over at
// the byte after the offending one.  Callers wanting stricter behavior stop
// at the first error.
func (d *Decoder) Decode() (*Node, error) {
	var root *Node
	for {
		b, err := d.r.ReadByte()
		if err == io.EOF {
			return d.atEOF(root)
		} else if err != nil {
			root.Release()
			return nil, err
		}
		at := d.pos
		d.pos.advance(b)
		if root == nil && isSpace(b) {
			continue // padding between values
		}
		node, sig := Feed(root, b)
		switch sig {
		case Complete:
			return node, nil
		case Fail:
			return nil, &SyntaxError{Pos: at, Byte: b}
		}
		root = node
	}
}

// atEOF resolves the end of input.  A number at the top level cannot see
// its own end, so when the deepest node still parsing is a number the
// decoder terminates it with one synthetic newline; any other unfinished
// shape means the input was truncated.
func (d *Decoder) atEOF(root *Node) (*Node, error) {
	if root == nil {
		return nil, io.EOF
	}
	if tip(root).state == stateNumber {
		switch node, sig := Feed(root, '\n'); sig {
		case Complete:
			return node, nil
		case Fail:
			// The accumulated literal does not parse, as in "1e+" cut off
			// before its digits.  The tree is already gone.
			return nil, io.ErrUnexpectedEOF
		default:
			root = node
		}
	}
	root.Release()
	return nil, io.ErrUnexpectedEOF
}

// tip returns the deepest node still being parsed under n.
func tip(n *Node) *Node {
	for n.cur != nil {
		n = n.cur
	}
	return n
}

// Parse consumes data as exactly one JSON value, optionally surrounded by
// whitespace.
func Parse(data []byte) (*Node, error) {
	d := NewDecoder(bytes.NewReader(data))
	node, err := d.Decode()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF // no value at all
	} else if err != nil {
		return nil, err
	}
	for {
		b, err := d.r.ReadByte()
		if err == io.EOF {
			return node, nil
		} else if err != nil {
			node.Release()
			return nil, err
		}
		at := d.pos
		d.pos.advance(b)
		if !isSpace(b) {
			node.Release()
			return nil, &SyntaxError{Pos: at, Byte: b}
		}
	}
}

// SyntaxError is the concrete type of errors reported for malformed input.
type SyntaxError struct {
	Pos  Pos  // position of the offending byte
	Byte byte // the byte that could not extend a value
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: malformed input %q", e.Pos, e.Byte)
}
