package hctree

import (
	"github.com/icza/bitio"
)

// BitWriter is a bit-granular output sink.  Bits are packed into bytes most
// significant bit first; the sink is responsible for padding the final
// partial byte when it is closed.
type BitWriter interface {
	WriteBool(bit bool) error
	WriteByte(c byte) error
}

// BitReader is a bit-granular input source, the mirror of BitWriter.  It
// returns io.EOF once the underlying data is exhausted.
type BitReader interface {
	ReadBool() (bool, error)
	ReadByte() (byte, error)
}

var (
	_ BitWriter = (*bitio.Writer)(nil)
	_ BitReader = (*bitio.Reader)(nil)
)
