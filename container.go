package hctree

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/icza/bitio"
)

// The container is:
//
//     count   uint32, big-endian: number of original bytes
//     header  the tree, see WriteHeader
//     codes   one code per original byte, in order
//     padding zero bits up to the next byte boundary
//
// Empty input produces an empty container, with no count at all.

const countBytes = 4

// Compress writes the container for data to w.  Errors from w are returned
// as is.
func Compress(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if uint64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes do not fit the 32-bit length prefix", ErrTooLarge, len(data))
	}

	t, err := NewTreeFromBytes(data)
	if err != nil {
		return err
	}

	bw := bitio.NewWriter(w)
	var count [countBytes]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(data)))
	if _, err := bw.Write(count[:]); err != nil {
		return err
	}
	if err := t.WriteHeader(bw); err != nil {
		return err
	}
	if err := t.EncodeBytes(bw, data); err != nil {
		return err
	}
	return bw.Close()
}

// Decompress reads a container written by Compress and returns the original
// bytes.  Trailing padding is ignored.  A stream that ends early or that
// Compress could not have written is reported as ErrCorrupt; other errors
// from r are returned as is.
func Decompress(r io.Reader) ([]byte, error) {
	br := bitio.NewReader(r)
	var count [countBytes]byte
	if _, err := io.ReadFull(br, count[:]); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, truncated(err)
	}

	n := binary.BigEndian.Uint32(count[:])
	if n == 0 {
		return nil, corruptf("length prefix is zero")
	}
	if uint64(n) > math.MaxInt {
		return nil, corruptf("length prefix %d does not fit in an int", n)
	}

	t, err := ReadTree(br)
	if err != nil {
		return nil, err
	}
	return t.DecodeBytes(br, int(n))
}

// CompressedSize returns the number of bytes Compress would write for data.
func CompressedSize(data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	var f Frequencies
	f.Count(data)
	t, err := NewTree(f[:])
	if err != nil {
		return 0, err
	}
	bits, err := t.EncodedBits(&f)
	if err != nil {
		return 0, err
	}
	bits += uint64(t.HeaderBits())
	return countBytes + int64((bits+7)/8), nil
}
