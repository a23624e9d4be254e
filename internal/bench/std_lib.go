package bench

import (
	"compress/flate"
	"io"
)

func init() {
	RegisterEncoder("std",
		func(w io.Writer) io.WriteCloser {
			zw, err := flate.NewWriter(w, flate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("std",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
}
