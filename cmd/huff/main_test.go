package main

import (
	"bufio"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParseMaxSize(t *testing.T) {
	type testRow struct {
		input  string
		output int64
		fail   bool
	}

	testData := [...]testRow{
		{input: "0", output: 0},
		{input: "1e6", output: 1000000},
		{input: "1e30", output: math.MaxInt64},
		{input: "-5", fail: true},
		{input: "bogus", fail: true},
	}

	for _, row := range testData {
		output, err := parseMaxSize(row.input)
		if row.fail {
			if err == nil {
				t.Errorf("%q: expected an error, got %d", row.input, output)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", row.input, err)
			continue
		}
		if row.output != output {
			t.Errorf("%q: wrong output: expect %d, actual %d", row.input, row.output, output)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.hc")
	err := writeOutput(good, func(w *bufio.Writer) error {
		_, err := w.WriteString("hello")
		return err
	})
	if err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}
	if b, err := os.ReadFile(good); err != nil || string(b) != "hello" {
		t.Errorf("wrong output: %q, %v", b, err)
	}

	errBoom := errors.New("boom")
	bad := filepath.Join(dir, "bad.hc")
	err = writeOutput(bad, func(w *bufio.Writer) error {
		_, _ = w.WriteString("partial")
		_ = w.Flush()
		return errBoom
	})
	if err != errBoom {
		t.Errorf("expected %v as is, got %v", errBoom, err)
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Errorf("partial output left behind: %v", err)
	}
}
