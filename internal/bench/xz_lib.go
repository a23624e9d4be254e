package bench

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder("xz",
		func(w io.Writer) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("xz",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				return io.NopCloser(errReader{err})
			}
			return io.NopCloser(zr)
		})
}

// errReader fails every read with err.  xz.NewReader reads the stream header
// eagerly, so a bad stream surfaces before the first Read.
type errReader struct{ err error }

func (er errReader) Read([]byte) (int, error) { return 0, er.err }
