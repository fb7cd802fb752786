// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfeed

// LiveNodes reports the number of nodes currently allocated and not yet
// released.  Tests use it to verify that failed and finished parses give
// back every node they took.
func LiveNodes() int64 { return liveNodes.Load() }
