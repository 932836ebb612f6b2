// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzwgo compresses and decompresses files in the .lzw format.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogier/pflag"
	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/internal/xlog"
)

const usageStr = `Usage: lzwgo [OPTION]... [FILE]...
Compress or uncompress FILEs in the .lzw format (by default, compress FILES
in place).

  -c, --stdout      write to standard output and keep input files
  -d, --decompress  force decompression
  -f, --force       force overwrite of output file
  -h, --help        give this help
  -k, --keep        keep (don't delete) input files
  -L, --license     display software license
  -M, --mode=MODE   codebook mode for compression: static (n), reset (r)
                    or monitor (m); default is static
  -q, --quiet       suppress all warnings
  -v, --verbose     verbose mode
  -z, --compress    force compression

With no file, or when FILE is -, read standard input.

Report bugs using <https://github.com/ulikunitz/lzw/issues>.
`

const license = `Copyright (c) 2014-2025 Ulrich Kunitz
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

* Redistributions of source code must retain the above copyright notice, this
  list of conditions and the following disclaimer.

* Redistributions in binary form must reproduce the above copyright notice,
  this list of conditions and the following disclaimer in the documentation
  and/or other materials provided with the distribution.

* My name, Ulrich Kunitz, may not be used to endorse or promote products
  derived from this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options contains the parsed command line flags.
type options struct {
	stdout     bool
	decompress bool
	force      bool
	keep       bool
	verbose    bool
	mode       lzw.Mode
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	xlog.SetFlags(xlog.Lnodebug)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = pflag.BoolP("help", "h", false, "")
		stdout     = pflag.BoolP("stdout", "c", false, "")
		decompress = pflag.BoolP("decompress", "d", false, "")
		force      = pflag.BoolP("force", "f", false, "")
		keep       = pflag.BoolP("keep", "k", false, "")
		showLic    = pflag.BoolP("license", "L", false, "")
		mode       = pflag.StringP("mode", "M", "static", "")
		quiet      = pflag.BoolP("quiet", "q", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
		compress   = pflag.BoolP("compress", "z", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *showLic {
		fmt.Print(licenseText())
		os.Exit(0)
	}
	if *compress && *decompress {
		xlog.Fatal("compression and decompression cannot be selected together")
	}
	if *quiet {
		xlog.SetFlags(xlog.Flags() | xlog.Lquiet)
	}
	if *verbose && !*quiet {
		xlog.SetFlags(xlog.Flags() &^ xlog.Lnodebug)
	}

	m, err := lzw.ParseMode(*mode)
	if err != nil {
		xlog.Fatal(err)
	}
	opts := &options{
		stdout:     *stdout,
		decompress: *decompress,
		force:      *force,
		keep:       *keep,
		verbose:    *verbose,
		mode:       m,
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	if opts.stdout && len(args) > 1 && !opts.decompress {
		xlog.Fatal("only a single input file can be compressed to standard output")
	}
	failed := false
	for _, path := range args {
		if err := processFile(path, opts); err != nil {
			xlog.Warn(userError(err))
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func licenseText() string {
	return "github.com/ulikunitz/lzw -- LZW for Go\n" +
		strings.Repeat("=", 38) + "\n\n" + license
}
