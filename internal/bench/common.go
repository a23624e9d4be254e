// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the Huffman coder against general-purpose
// compression implementations by speed and ratio.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

type Encoder func(io.Writer) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[string]Encoder
	Decoders map[string]Decoder
)

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

// Names returns the codecs that have both an encoder and a decoder, with
// "hc" first and the rest sorted.
func Names() []string {
	var names []string
	hasHC := false
	for name := range Encoders {
		if _, ok := Decoders[name]; !ok {
			continue
		}
		if name == "hc" {
			hasHC = true
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if hasHC {
		names = append([]string{"hc"}, names...) // Ensure "hc" always appears first
	}
	return names
}

// Compress runs input through the named encoder.
func Compress(name string, input []byte) ([]byte, error) {
	enc, ok := Encoders[name]
	if !ok {
		return nil, fmt.Errorf("bench: unknown encoder %q", name)
	}
	buf := new(bytes.Buffer)
	wr := enc(buf)
	_, err := io.Copy(wr, bytes.NewReader(input))
	if err := wr.Close(); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress runs input through the named decoder.
func Decompress(name string, input []byte) ([]byte, error) {
	dec, ok := Decoders[name]
	if !ok {
		return nil, fmt.Errorf("bench: unknown decoder %q", name)
	}
	buf := new(bytes.Buffer)
	rd := dec(bytes.NewReader(input))
	_, err := io.Copy(buf, rd)
	if err := rd.Close(); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ratio reports len(input) divided by the size of its compressed form.
func Ratio(name string, input []byte) (float64, error) {
	output, err := Compress(name, input)
	if err != nil {
		return 0, err
	}
	return float64(len(input)) / float64(len(output)), nil
}

// BenchmarkEncoder benchmarks a single encoder on the given input data and
// reports the result.
func BenchmarkEncoder(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(io.Discard)
			_, err := io.Copy(wr, bytes.NewReader(input))
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-compressed
// input data and reports the result.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := dec(bytes.NewReader(input))
			cnt, err := io.Copy(io.Discard, rd)
			if err := rd.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(cnt)
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to the first codec
}

// EncoderSuite benchmarks every encoder on every file.
//
// The values returned have the following structure:
//
//	results: [len(files)][len(codecs)]Result
//	names:   [len(files)]string
func EncoderSuite(codecs, files []string, tick func()) (results [][]Result, names []string) {
	return suite(codecs, files, tick,
		func(input []byte, codec string) Result {
			return rate(BenchmarkEncoder(input, Encoders[codec]))
		})
}

// DecoderSuite benchmarks every decoder on every file.  Each decoder reads
// the output of the encoder registered under the same name.
func DecoderSuite(codecs, files []string, tick func()) (results [][]Result, names []string) {
	return suite(codecs, files, tick,
		func(input []byte, codec string) Result {
			output, err := Compress(codec, input)
			if err != nil {
				return Result{}
			}
			return rate(BenchmarkDecoder(output, Decoders[codec]))
		})
}

// RatioSuite computes the compression ratio of every encoder on every file.
func RatioSuite(codecs, files []string, tick func()) (results [][]Result, names []string) {
	return suite(codecs, files, tick,
		func(input []byte, codec string) Result {
			ratio, err := Ratio(codec, input)
			if err != nil {
				return Result{}
			}
			return Result{R: ratio}
		})
}

func rate(result testing.BenchmarkResult) Result {
	if result.N == 0 {
		return Result{}
	}
	us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
	return Result{R: float64(result.Bytes) / us}
}

type benchFunc func(input []byte, codec string) Result

func suite(codecs, files []string, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	results := make([][]Result, len(files))
	for i := range results {
		results[i] = make([]Result, len(codecs))
	}
	names := make([]string, len(files))

	// Run the benchmark for every codec and file.
	for i, f := range files {
		b, err := os.ReadFile(f)
		names[i] = getName(f, len(b))
		for j, c := range codecs {
			if tick != nil {
				tick()
			}
			if err == nil {
				results[i][j] = run(b, c)
			}
			results[i][j].D = results[i][j].R / results[i][0].R
		}
	}
	return results, names
}

var reExp = regexp.MustCompile(`\.0*e\+0*`)

func getName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9:
		sn = reExp.ReplaceAllString(fmt.Sprintf("%e", float64(n)), "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", filepath.Base(f), sn)
}
