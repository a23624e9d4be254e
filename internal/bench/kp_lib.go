package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

func init() {
	RegisterEncoder("kp-flate",
		func(w io.Writer) io.WriteCloser {
			zw, err := flate.NewWriter(w, flate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("kp-flate",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
	RegisterEncoder("zstd",
		func(w io.Writer) io.WriteCloser {
			zw, err := zstd.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("zstd",
		func(r io.Reader) io.ReadCloser {
			zr, err := zstd.NewReader(r)
			if err != nil {
				panic(err)
			}
			return zr.IOReadCloser()
		})
}
