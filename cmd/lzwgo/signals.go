// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows && !plan9

package main

import (
	"os"
	"syscall"
)

// termsigs contains the signals that terminate the program and require
// the removal of temporary files.
var termsigs = []os.Signal{
	syscall.SIGHUP,
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGPIPE,
	syscall.SIGTERM,
	syscall.SIGXFSZ,
}
