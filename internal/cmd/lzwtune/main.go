// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzwtune compares the codebook modes of the LZW compressor on a
// corpus. Without file arguments the Silesia corpus is used.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/internal/tuning"
	"github.com/ulikunitz/lzw/internal/xlog"
	"github.com/ulikunitz/zdata"
)

var modes = []lzw.Mode{lzw.Static, lzw.ResetOnFull, lzw.Monitor}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

func writerBenchmark(files []tuning.File, cfg lzw.WriterConfig) func(b *testing.B) {
	return func(b *testing.B) {
		size := tuning.Size(files)
		b.SetBytes(size)
		var (
			err            error
			compressedSize int64
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressedSize, err = tuning.LZWCompress(files, cfg)
			if err != nil {
				b.Fatalf("LZWCompress error %s", err)
			}
		}
		b.StopTimer()
		r := float64(compressedSize) / float64(size)
		b.ReportMetric(r, "c/u")
	}
}

func loadFiles(paths []string) ([]tuning.File, error) {
	if len(paths) == 0 {
		return tuning.Files(zdata.Silesia)
	}
	files := make([]tuning.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, tuning.File{Name: filepath.Base(p),
			Data: data})
	}
	return files, nil
}

// summary aggregates the results of all files for a mode.
type summary struct {
	Mode           lzw.Mode
	Size           int64
	CompressedSize int64
	Resets         int
	Ratio          float64
}

func compare(w io.Writer, files []tuning.File, verbose bool) error {
	sums := make([]summary, 0, len(modes))
	for _, m := range modes {
		s := summary{Mode: m}
		for _, f := range files {
			r, err := tuning.CompressFile(f, lzw.WriterConfig{Mode: m})
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			if verbose {
				fmt.Fprintf(w, "%-8s %-12s %10d -> %10d  resets %3d\n",
					m, f.Name, r.Size, r.CompressedSize,
					r.Stats.Resets)
			}
			s.Size += r.Size
			s.CompressedSize += r.CompressedSize
			s.Resets += r.Stats.Resets
		}
		if s.CompressedSize > 0 {
			s.Ratio = float64(s.Size) / float64(s.CompressedSize)
		}
		sums = append(sums, s)
	}
	fmt.Fprintf(w, "\n### Result ###\n\n")
	for _, s := range sums {
		pretty.Fprintf(w, "%# v\n", s)
	}
	return nil
}

func main() {
	xlog.SetPrefix("lzwtune: ")
	pflag.CommandLine = pflag.NewFlagSet("lzwtune", pflag.ExitOnError)
	var (
		plot    = pflag.StringP("plot", "p", "", "write SVG of the ratio curves to `file`")
		chunk   = pflag.IntP("chunk", "c", 64<<10, "sample size for the curves")
		bench   = pflag.BoolP("bench", "b", false, "measure the speed of the modes")
		verbose = pflag.BoolP("verbose", "v", false, "print the result for every file")
	)
	pflag.Parse()

	files, err := loadFiles(pflag.Args())
	if err != nil {
		xlog.Fatal(err)
	}
	fmt.Printf("%d files, %d bytes\n", len(files), tuning.Size(files))

	if err = compare(os.Stdout, files, *verbose); err != nil {
		xlog.Fatal(err)
	}

	if *bench {
		testing.Init()
		for _, m := range modes {
			result := testing.Benchmark(writerBenchmark(files,
				lzw.WriterConfig{Mode: m}))
			fmt.Printf("%-8s %s\t%.3f c/u\t%.2f MB/s\n", m, result,
				ratio(result), mbPerSec(result))
		}
	}

	if *plot != "" {
		if err = plotCurves(*plot, files, *chunk); err != nil {
			xlog.Fatal(err)
		}
	}
}
