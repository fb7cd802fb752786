// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

import (
	"fmt"
	"strconv"

	"go4.org/mem"
)

// A Signal reports the effect of feeding one byte to a parse.
type Signal int

const (
	Continue Signal = iota // the value is not yet complete; feed more bytes
	Complete               // the value completed on this byte
	Fail                   // the byte violated the JSON grammar
)

var signalStr = [...]string{
	Continue: "continue",
	Complete: "complete",
	Fail:     "fail",
}

func (s Signal) String() string {
	if s < 0 || int(s) >= len(signalStr) {
		return "invalid"
	}
	return signalStr[s]
}

// Parse states.  Each node tracks the state of its own value only; container
// nodes delegate bytes to their current child and advance when it completes.
type state byte

const (
	stateItem            state = iota // before the first byte of the value
	stateObjectKey                    // inside {, awaiting "key" or }
	stateObjectKeyParsed              // after a key, awaiting :
	stateObjectValue                  // after :, awaiting or inside the member value
	stateObjectValueParsed            // after a member value, awaiting , or }
	stateArrayValue                   // inside [, awaiting or inside an element
	stateArrayValueParsed             // after an element, awaiting , or ]
	stateString                       // inside "..."
	stateEscape                       // after \ inside a string
	stateNumber                       // inside a numeric literal
	stateTrue                         // inside true
	stateFalse                        // inside false
	stateNull                         // inside null
	stateDone                         // root only: the parse is complete
)

// Feed advances the parse of the value rooted at n by one byte.  A nil n
// starts a new parse and allocates the root.  The results are the root of
// the parse and the effect of b:
//
//   - Continue: the value is not yet complete.  Pass the returned node back
//     in with the next input byte.
//
//   - Complete: b finished the value.  The returned tree is complete, owned
//     by the caller, and should eventually be released.
//
//   - Fail: b cannot extend a well-formed value.  The whole tree has been
//     released and the returned node is nil.
//
// Exactly one byte is consumed per call, and the first byte must begin a
// value: leading whitespace is not skipped.  A number has no terminator of
// its own, so the delimiter ending a top-level number both completes the
// parse and is consumed by it; a bare top-level number with no trailing
// delimiter never completes.  Decoder compensates for that at end of input.
//
// Feed panics if called with the root of an already completed parse.
func Feed(n *Node, b byte) (*Node, Signal) {
	if n == nil {
		n = newNode()
	} else if n.state == stateDone {
		panic("jfeed: Feed on a completed value")
	}
	switch sig := n.feed(b); sig {
	case Complete:
		n.state = stateDone
		return n, Complete
	case Fail:
		n.Release()
		return nil, Fail
	default:
		return n, Continue
	}
}

// feed dispatches one byte to the handler for the node's current state.
func (n *Node) feed(b byte) Signal {
	switch n.state {
	case stateItem:
		return n.feedItem(b)
	case stateObjectKey:
		return n.feedObjectKey(b)
	case stateObjectKeyParsed:
		return n.feedObjectKeyParsed(b)
	case stateObjectValue, stateArrayValue:
		return n.feedValue(b)
	case stateObjectValueParsed, stateArrayValueParsed:
		return n.feedValueParsed(b)
	case stateString:
		return n.feedString(b)
	case stateEscape:
		return n.feedEscape(b)
	case stateNumber:
		return n.feedNumber(b)
	case stateTrue, stateFalse, stateNull:
		return n.feedKeyword(b)
	}
	panic(fmt.Sprintf("invalid parse state %d", n.state))
}

// feedItem types the node from the first byte of its value.
func (n *Node) feedItem(b byte) Signal {
	switch {
	case b == '{':
		n.kind = Object
		n.state = stateObjectKey
	case b == '[':
		n.kind = Array
		n.state = stateArrayValue
	case b == '"':
		n.kind = String
		n.state = stateString
	case b == 't':
		n.kind = Bool
		n.state = stateTrue
		n.scratch = append(n.scratch, b)
	case b == 'f':
		n.kind = Bool
		n.state = stateFalse
		n.scratch = append(n.scratch, b)
	case b == 'n':
		n.kind = Null
		n.state = stateNull
		n.scratch = append(n.scratch, b)
	case isNumStart(b):
		n.kind = Number
		n.state = stateNumber
		n.scratch = append(n.scratch, b)
	default:
		return Fail
	}
	return Continue
}

// feedObjectKey consumes bytes between { or , and the next member key.
func (n *Node) feedObjectKey(b byte) Signal {
	if n.cur == nil {
		switch {
		case isSpace(b):
			return Continue
		case b == '}':
			// Also reached after a comma, so {"a":1,} is tolerated.
			return Complete
		case b == '"':
			n.cur = newNode()
		default:
			return Fail // member keys must be strings
		}
	}
	switch sig := n.cur.feed(b); sig {
	case Complete:
		// The finished string is the member's key, not its value.  The same
		// node is recycled to hold the value: keep the key, reset the rest.
		n.cur.key = n.cur.text
		n.cur.text = ""
		n.cur.kind = Untyped
		n.cur.state = stateItem
		n.state = stateObjectKeyParsed
		return Continue
	default:
		return sig
	}
}

// feedObjectKeyParsed consumes bytes between a member key and its colon.
func (n *Node) feedObjectKeyParsed(b byte) Signal {
	switch {
	case isSpace(b):
		return Continue
	case b == ':':
		n.state = stateObjectValue
		return Continue
	}
	return Fail
}

// feedValue consumes the bytes of an object member value or array element.
// For an object member the child already exists, recycled from the key; for
// an array element it is created on the first byte of the element.
func (n *Node) feedValue(b byte) Signal {
	if n.cur == nil || n.cur.state == stateItem {
		// The slot is still waiting for its value to begin, so whitespace is
		// padding.  Once the child is underway every byte belongs to it,
		// whitespace included.
		if isSpace(b) {
			return Continue
		}
		if b == ']' && n.state == stateArrayValue && len(n.kids) == 0 {
			return Complete // empty array; after a comma kids is nonempty
		}
		if n.cur == nil {
			n.cur = newNode()
		}
	}
	switch sig := n.cur.feed(b); sig {
	case Complete:
		kid := n.cur
		n.cur = nil
		n.kids = append(n.kids, kid)
		if n.state == stateArrayValue {
			n.state = stateArrayValueParsed
		} else {
			n.state = stateObjectValueParsed
		}
		if kid.kind == Number {
			// The delimiter that ended the number was not consumed by it:
			// run it through this node again as a separator or closer.
			return n.feed(b)
		}
		return Continue
	default:
		return sig
	}
}

// feedValueParsed consumes bytes after a completed member or element, up to
// the separator or closer.
func (n *Node) feedValueParsed(b byte) Signal {
	switch {
	case isSpace(b):
		return Continue
	case b == ',':
		if n.state == stateArrayValueParsed {
			n.state = stateArrayValue
		} else {
			n.state = stateObjectKey
		}
		return Continue
	case b == ']' && n.state == stateArrayValueParsed:
		return Complete
	case b == '}' && n.state == stateObjectValueParsed:
		return Complete
	}
	return Fail
}

// feedString consumes string content up to the closing quote.  Content
// bytes are kept verbatim: multibyte runes pass through unvalidated.
func (n *Node) feedString(b byte) Signal {
	switch b {
	case '"':
		n.text = string(n.scratch)
		n.scratch = n.scratch[:0]
		return Complete
	case '\\':
		n.state = stateEscape
		return Continue
	}
	n.scratch = append(n.scratch, b)
	return Continue
}

// escapeByte maps the byte after a backslash to the byte it denotes.
// Unmapped bytes are malformed; in particular multibyte \uXXXX escapes are
// not supported.
var escapeByte = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// feedEscape consumes the byte after a backslash inside a string.
func (n *Node) feedEscape(b byte) Signal {
	e := escapeByte[b]
	if e == 0 {
		return Fail
	}
	n.scratch = append(n.scratch, e)
	n.state = stateString
	return Continue
}

// feedNumber accumulates a numeric literal.  The literal ends at the first
// delimiter, which completes the number; feedValue then replays the
// delimiter to the parent, and at the top level Feed consumes it with the
// completed parse.
func (n *Node) feedNumber(b byte) Signal {
	switch {
	case isDigit(b) || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-':
		n.scratch = append(n.scratch, b)
		return Continue
	case isSpace(b) || b == ',' || b == '}' || b == ']':
		v, err := strconv.ParseFloat(string(n.scratch), 64)
		if err != nil {
			return Fail // not a single well-formed literal, or out of range
		}
		n.num = v
		n.scratch = n.scratch[:0]
		return Complete
	}
	return Fail
}

// feedKeyword accumulates true, false, or null.  The comparison happens only
// once the keyword's full length has arrived, so a wrong byte goes
// undetected until then.
func (n *Node) feedKeyword(b byte) Signal {
	var want mem.RO
	switch n.state {
	case stateTrue:
		want = mem.S("true")
	case stateFalse:
		want = mem.S("false")
	default:
		want = mem.S("null")
	}
	n.scratch = append(n.scratch, b)
	if len(n.scratch) < want.Len() {
		return Continue
	}
	if got := mem.B(n.scratch); !got.Equal(want) {
		return Fail
	}
	n.truth = n.state == stateTrue
	n.scratch = n.scratch[:0]
	return Complete
}

// Byte-class predicates.  Whitespace is permissive: any byte at or below
// ASCII space counts, covering the JSON separators along with harmless
// control padding.
func isSpace(b byte) bool    { return b <= ' ' }
func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isNumStart(b byte) bool { return b == '-' || isDigit(b) }
