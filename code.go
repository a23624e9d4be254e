package hctree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code any tree over the byte alphabet can
// assign: a tree with NumSymbols leaves is at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i of the sequence is
	// bit (i % 64) of Bits[i / 64]; the least significant bit of Bits[0]
	// is the first bit.
	Bits [4]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64
// bits.  The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	if size < 64 {
		bits &= (uint64(1) << size) - 1
	}
	return Code{Size: size, Bits: [4]uint64{bits}}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, bits).Reversed()
}

// ParseCode parses a string of '0' and '1' characters, first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for _, ch := range str {
		switch ch {
		case '0':
			hc.push(false)
		case '1':
			hc.push(true)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", ch, str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the sequence.
func (hc Code) Bit(i byte) bool {
	return hc.Bits[i>>6]&(uint64(1)<<(i&63)) != 0
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	var out Code
	for i := hc.Size; i > 0; i-- {
		out.push(hc.Bit(i - 1))
	}
	return out
}

// HasPrefix reports whether prefix is a (possibly equal) prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := byte(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Write writes the bits of hc to w, first bit first.
func (hc Code) Write(w BitWriter) error {
	for i := byte(0); i < hc.Size; i++ {
		if err := w.WriteBool(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		buf.WriteByte('0' + byte(b2i(hc.Bit(i))))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}

func (hc *Code) push(bit bool) {
	assert.Assertf(hc.Size < MaxCodeSize, "code already holds %d bits", hc.Size)
	if bit {
		hc.Bits[hc.Size>>6] |= uint64(1) << (hc.Size & 63)
	}
	hc.Size++
}
