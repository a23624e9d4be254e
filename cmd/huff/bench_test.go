package main

import (
	"bytes"
	"testing"

	"github.com/chronos-tachyon/hctree/internal/bench"
)

func TestPrintResults(t *testing.T) {
	results := [][]bench.Result{
		{{R: 2, D: 1}, {R: 3, D: 1.5}},
		{{R: 10, D: 1}, {}},
	}
	names := []string{"a.txt:1e3", "zeros.bin:1e5"}

	var buf bytes.Buffer
	printResults(&buf, results, names, []string{"hc", "zstd"}, "ratio", "x")

	expect := "" +
		"\tbenchmark          hc ratio  delta      zstd ratio  delta\n" +
		"\ta.txt:1e3             2.00x  1.00x           3.00x  1.50x\n" +
		"\tzeros.bin:1e5        10.00x  1.00x                       \n"
	if actual := buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}
