// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jfeed/internal/escape"
	"go4.org/mem"
)

// Quote encodes s as a JSON string literal, including the surrounding
// quotes.
func Quote(s string) string {
	return string(appendQuoted(make([]byte, 0, len(s)+2), s))
}

func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(s))...)
	return append(buf, '"')
}

// JSON renders a completed tree as compact JSON text, with members and
// elements in document order and no added whitespace.  Feeding the result
// back in reproduces an isomorphic tree.  JSON panics on an untyped node.
func (n *Node) JSON() string { return string(n.appendJSON(nil)) }

func (n *Node) appendJSON(buf []byte) []byte {
	switch n.kind {
	case Object:
		buf = append(buf, '{')
		for i, kid := range n.kids {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendQuoted(buf, kid.key)
			buf = append(buf, ':')
			buf = kid.appendJSON(buf)
		}
		return append(buf, '}')
	case Array:
		buf = append(buf, '[')
		for i, kid := range n.kids {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = kid.appendJSON(buf)
		}
		return append(buf, ']')
	case String:
		return appendQuoted(buf, n.text)
	case Number:
		return strconv.AppendFloat(buf, n.num, 'g', -1, 64)
	case Bool:
		if n.truth {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case Null:
		return append(buf, "null"...)
	default:
		panic(fmt.Sprintf("render of %v node", n.kind))
	}
}
