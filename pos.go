package jfeed

import "strconv"

// A Pos describes the location of a byte in a stream of input.
type Pos struct {
	Offset int64 // byte offset in the stream, 0-based
	Line   int   // line number, 1-based
	Column int   // byte offset of the column in its line, 0-based
}

// String renders p in the form "line:column".
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// advance updates p to the position following b.
func (p *Pos) advance(b byte) {
	p.Offset++
	if b == '\n' {
		p.Line++
		p.Column = 0
	} else {
		p.Column++
	}
}
