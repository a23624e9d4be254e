package bench

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/hctree"
)

// The container needs the whole input up front for its frequency count and
// length prefix, so the "hc" codec buffers in both directions.

type hcWriter struct {
	w   io.Writer
	buf bytes.Buffer
}

func (hw *hcWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

func (hw *hcWriter) Close() error {
	return hctree.Compress(hw.w, hw.buf.Bytes())
}

type hcReader struct {
	r    io.Reader
	rd   *bytes.Reader
	err  error
	done bool
}

func (hr *hcReader) Read(p []byte) (int, error) {
	if !hr.done {
		hr.done = true
		var data []byte
		data, hr.err = hctree.Decompress(hr.r)
		hr.rd = bytes.NewReader(data)
	}
	if hr.err != nil {
		return 0, hr.err
	}
	return hr.rd.Read(p)
}

func (hr *hcReader) Close() error {
	return nil
}

func init() {
	RegisterEncoder("hc",
		func(w io.Writer) io.WriteCloser {
			return &hcWriter{w: w}
		})
	RegisterDecoder("hc",
		func(r io.Reader) io.ReadCloser {
			return &hcReader{r: r}
		})
}
