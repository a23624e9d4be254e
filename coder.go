package hctree

import (
	"github.com/chronos-tachyon/assert"
)

// Encode writes the code for symbol to w, root-to-leaf order.  It fails
// with ErrDomain if symbol has no code; errors from w are returned as is.
func (t *Tree) Encode(w BitWriter, symbol byte) error {
	hc, err := t.Code(symbol)
	if err != nil {
		return err
	}
	return hc.Write(w)
}

// EncodeBytes encodes every byte of data in order.
func (t *Tree) EncodeBytes(w BitWriter, data []byte) error {
	for _, symbol := range data {
		if err := t.Encode(w, symbol); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one code from r and returns its symbol.  Running out of bits
// before a leaf is reached is reported as ErrCorrupt wrapping
// io.ErrUnexpectedEOF; other errors from r are returned as is.
func (t *Tree) Decode(r BitReader) (byte, error) {
	id := t.root
	if t.kind == kindSingleton {
		// Both children of the implied root are the one leaf.
		if _, err := r.ReadBool(); err != nil {
			return 0, truncated(err)
		}
		return t.nodes[id].symbol, nil
	}

	for {
		n := &t.nodes[id]
		if n.isLeaf() {
			return n.symbol, nil
		}
		bit, err := r.ReadBool()
		if err != nil {
			return 0, truncated(err)
		}
		id = n.child[b2i(bit)]
	}
}

// DecodeBytes decodes exactly n symbols from r.  The coded stream carries no
// end marker, so n must come from elsewhere, e.g. the container's length
// prefix.  n must not be negative.
func (t *Tree) DecodeBytes(r BitReader, n int) ([]byte, error) {
	assert.Assertf(n >= 0, "n %d < 0", n)
	out := make([]byte, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		symbol, err := t.Decode(r)
		if err != nil {
			return out, err
		}
		out = append(out, symbol)
	}
	return out, nil
}

// maxPrealloc bounds the up-front allocation of DecodeBytes, since n may come
// from an untrusted length prefix.
const maxPrealloc = 1 << 20
