// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jfeed reads JSON values one byte at a time and reprints each
// complete value as it is finished.  It accepts files or standard input.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
