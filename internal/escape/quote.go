// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape encodes string content for inclusion in JSON text.
package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote encodes the content of src to sit between the quotes of a JSON
// string literal.  Only the quote, the backslash, and the control bytes
// with two-byte escapes are rewritten; every other byte is emitted as it
// stands.  Content is not treated as UTF-8, so whatever byte sequence was
// read in renders back out unchanged and can be read in again.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case b < ' ':
			if e := controlEsc[b]; e != 0 {
				buf = append(buf, '\\', e)
				continue
			}
			// A control byte with no short escape form passes through raw:
			// a \u sequence could not be read back byte-at-a-time.
			buf = append(buf, b)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
