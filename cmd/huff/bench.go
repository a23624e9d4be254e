// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chronos-tachyon/hctree/internal/bench"
)

var (
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	f0 := fs.String("codecs", strings.Join(bench.Names(), ","), "List of codecs to benchmark")
	f1 := fs.String("tests", "ratio", "List of benchmark tests (encRate, decRate, ratio)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: huff bench [-codecs list] [-tests list] <files...>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		usageError("bench needs at least 1 file")
	}

	var sep = regexp.MustCompile("[,:]")
	var codecs []string
	var tests []int
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := bench.Encoders[s]; !ok {
			usageError("unknown codec %q", s)
		}
		codecs = append(codecs, s)
	}
	for _, s := range sep.Split(*f1, -1) {
		t, ok := testToEnum[s]
		if !ok {
			usageError("unknown test %q", s)
		}
		tests = append(tests, t)
	}

	ts := time.Now()
	runBenchmarks(os.Stdout, files, codecs, tests)
	verbosef("runtime: %v", time.Since(ts))
	return nil
}

func runBenchmarks(w io.Writer, files, codecs []string, tests []int) {
	for _, t := range tests {
		var results [][]bench.Result
		var names []string
		var title, suffix string

		// Progress ticker.
		var cnt int
		tick := func() {
			if !*flagVerbose {
				return
			}
			total := len(codecs) * len(files)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Fprintf(os.Stderr, "\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		fmt.Fprintf(w, "BENCHMARK: %s\n", enumToTest[t])
		switch t {
		case bench.TestEncodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.EncoderSuite(codecs, files, tick)
		case bench.TestDecodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.DecoderSuite(codecs, files, tick)
		case bench.TestCompressRatio:
			title, suffix = "ratio", "x"
			results, names = bench.RatioSuite(codecs, files, tick)
		default:
			panic("unknown test")
		}

		printResults(w, results, names, codecs, title, suffix)
		fmt.Fprintln(w)
	}
}

func printResults(w io.Writer, results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		var line strings.Builder
		line.WriteString("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				s = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				s = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				s = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			line.WriteString(s)
		}
		fmt.Fprintln(w, line.String())
	}
}
