// Command huff compresses and decompresses files with a static Huffman code.
//
// Example usage:
//
//	$ huff compress twain.txt twain.hc
//	$ huff decompress twain.hc twain.txt
//	$ huff stat twain.txt
//	$ huff bench -codecs hc,std,zstd twain.txt random.bin
//
// The global -max flag accepts sizes such as 64Mi or 1e6; inputs larger than
// that are refused.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	strconv "github.com/dsnet/golib/unitconv"

	"github.com/chronos-tachyon/hctree"
)

var (
	flagMax     = flag.String("max", "1Gi", "refuse inputs larger than this size")
	flagVerbose = flag.Bool("v", false, "log progress")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: huff [flags] compress <infile> <outfile>\n")
	fmt.Fprintf(out, "       huff [flags] decompress <infile> <outfile>\n")
	fmt.Fprintf(out, "       huff [flags] stat <infile>\n")
	fmt.Fprintf(out, "       huff [flags] bench [-codecs list] [-tests list] <files...>\n")
	fmt.Fprintf(out, "\nflags:\n")
	flag.PrintDefaults()
}

func usageError(format string, args ...interface{}) {
	fmt.Fprintf(flag.CommandLine.Output(), "huff: "+format+"\n", args...)
	flag.Usage()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("huff: ")
	flag.Usage = usage
	flag.Parse()

	maxSize, err := parseMaxSize(*flagMax)
	if err != nil {
		usageError("invalid -max %q: %v", *flagMax, err)
	}

	args := flag.Args()
	if len(args) == 0 {
		usageError("missing command")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "compress":
		if len(args) != 2 {
			usageError("compress takes exactly 2 arguments, got %d", len(args))
		}
		err = compress(args[0], args[1], maxSize)
	case "decompress":
		if len(args) != 2 {
			usageError("decompress takes exactly 2 arguments, got %d", len(args))
		}
		err = decompress(args[0], args[1], maxSize)
	case "stat":
		if len(args) != 1 {
			usageError("stat takes exactly 1 argument, got %d", len(args))
		}
		err = stat(args[0], maxSize)
	case "bench":
		err = runBench(args)
	default:
		usageError("unknown command %q", cmd)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// parseMaxSize parses a size such as 64Mi or 1e6.  Sizes beyond the int64
// range are clamped to math.MaxInt64.
func parseMaxSize(s string) (int64, error) {
	f, err := strconv.ParsePrefix(s, strconv.AutoParse)
	if err != nil {
		return 0, err
	}
	if !(f >= 0) {
		return 0, fmt.Errorf("size must not be negative")
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64, nil
	}
	return int64(f), nil
}

func verbosef(format string, args ...interface{}) {
	if *flagVerbose {
		log.Printf(format, args...)
	}
}

// checkSize refuses files larger than maxSize before any byte is read.
func checkSize(path string, maxSize int64) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.Size() > maxSize {
		return fmt.Errorf("%s: %d bytes exceeds -max %d", path, fi.Size(), maxSize)
	}
	return nil
}

func readInput(path string, maxSize int64) ([]byte, error) {
	if err := checkSize(path, maxSize); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func writeOutput(path string, write func(w *bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	err = write(w)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		return f.Close()
	}
	f.Close()
	os.Remove(path)
	return err
}

func compress(in, out string, maxSize int64) error {
	data, err := readInput(in, maxSize)
	if err != nil {
		return err
	}
	verbosef("read %d bytes from %s", len(data), in)

	err = writeOutput(out, func(w *bufio.Writer) error {
		return hctree.Compress(w, data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	if *flagVerbose {
		if fi, err := os.Stat(out); err == nil {
			verbosef("wrote %d bytes to %s", fi.Size(), out)
		}
	}
	return nil
}

func decompress(in, out string, maxSize int64) error {
	if err := checkSize(in, maxSize); err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	plain, err := hctree.Decompress(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	err = writeOutput(out, func(w *bufio.Writer) error {
		_, err := w.Write(plain)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	verbosef("wrote %d bytes to %s", len(plain), out)
	return nil
}

func stat(in string, maxSize int64) error {
	data, err := readInput(in, maxSize)
	if err != nil {
		return err
	}

	fmt.Printf("file:        %s\n", in)
	fmt.Printf("bytes:       %d\n", len(data))
	if len(data) == 0 {
		return nil
	}

	tree, err := hctree.NewTreeFromBytes(data)
	if err != nil {
		return err
	}
	size, err := hctree.CompressedSize(data)
	if err != nil {
		return err
	}

	fmt.Printf("symbols:     %d\n", tree.Len())
	fmt.Printf("header bits: %d\n", tree.HeaderBits())
	fmt.Printf("code sizes:  %d .. %d bits\n", tree.MinSize(), tree.MaxSize())
	fmt.Printf("compressed:  %d bytes (%.2fx)\n", size, float64(len(data))/float64(size))
	if *flagVerbose {
		_, err = tree.Dump(os.Stdout)
	}
	return err
}
