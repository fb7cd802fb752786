// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jfeed implements an incremental JSON parser that consumes its
// input one byte at a time.
//
// The parser does not buffer the document.  Each byte is handed to Feed as
// it arrives, from a socket, a pipe, a file, or anywhere else, and the
// parser reports the moment a complete top-level value has been consumed.
// What it builds is an ordinary in-memory tree of values, so the cost of
// the parse is the tree, never the input length.
//
// # Feeding bytes
//
// A parse is advanced by calling Feed with the current root and the next
// byte of input, starting from a nil root:
//
//	var root *jfeed.Node
//	for _, b := range data {
//		node, sig := jfeed.Feed(root, b)
//		switch sig {
//		case jfeed.Complete:
//			fmt.Println(node.JSON())
//			node.Release()
//			node = nil
//		case jfeed.Fail:
//			log.Fatal("malformed input")
//		}
//		root = node
//	}
//
// Feed reports Continue while the value is unfinished, Complete on the byte
// that finishes it, and Fail on the first byte that cannot extend a
// well-formed value.  On Fail the partial tree is released and the parse is
// abandoned; feeding more bytes to the returned nil root starts a fresh
// value, which is how a driver resynchronizes if it wants to.
//
// A number is the one value that cannot recognize its own end: it completes
// on the delimiter byte that follows it, and at the top level that
// delimiter is consumed along with the value.
//
// # Trees
//
// A completed parse is a tree of Node values.  Nodes report their Kind and
// payload (Text, Float64, Bool), object members carry their Key, and
// containers expose Len, Child, Children, and Find.  Interface converts a
// tree to plain Go values, and JSON renders it back to compact text.
//
// # Streams
//
// The Decoder type drives Feed from an io.Reader and separates consecutive
// top-level values.  Call Decode until it reports io.EOF:
//
//	d := jfeed.NewDecoder(r)
//	for {
//		node, err := d.Decode()
//		if err == io.EOF {
//			break
//		} else if err != nil {
//			log.Fatalf("Decode: %v", err)
//		}
//		process(node)
//		node.Release()
//	}
//
// Malformed input surfaces as a *SyntaxError carrying the position of the
// offending byte.  For whole buffers, Parse wraps the same machinery and
// requires exactly one value.
//
// # Limitations
//
// String content is treated as opaque bytes: the parser neither validates
// UTF-8 nor decodes \uXXXX escapes, and rendering preserves content bytes
// exactly.  Only the two-byte escapes \" \\ \/ \b \f \n \r \t are
// understood.  Numbers are parsed as 64-bit floats.
package jfeed
