package hctree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

type treeKind uint8

const (
	// kindFull is a full binary tree with at least two leaves.
	kindFull treeKind = iota

	// kindSingleton holds exactly one leaf, which is also the root.  It
	// behaves as if the root had two children that are both that leaf: the
	// leaf's code is "0", and either bit value decodes to it.
	kindSingleton
)

// Tree is a Huffman code tree over the byte alphabet.  A Tree is built once,
// either by NewTree or by ReadTree, and is read-only thereafter; it is safe
// for concurrent use by multiple goroutines.
type Tree struct {
	nodes   []node
	root    nodeID
	kind    treeKind
	leaves  [NumSymbols]nodeID
	codes   [NumSymbols]Code
	numLeaf int
	minSize byte
	maxSize byte
}

func newTree() *Tree {
	t := &Tree{
		nodes: make([]node, 0, 2*NumSymbols-1),
		root:  noNode,
	}
	for i := range t.leaves {
		t.leaves[i] = noNode
	}
	return t
}

// finish derives every leaf's code and checks the shape invariants.  It must
// be called exactly once, after the last node has been added.
func (t *Tree) finish() {
	assert.Assertf(t.root != noNode, "tree has no root")
	assert.Assertf(t.nodes[t.root].parent == noNode, "root %d has a parent", t.root)

	var hasMinMax bool
	for symbol := 0; symbol < NumSymbols; symbol++ {
		id := t.leaves[symbol]
		if id == noNode {
			continue
		}
		assert.Assertf(t.nodes[id].isLeaf(), "leaf table entry %d is not a leaf", symbol)

		hc := t.derive(id)
		t.codes[symbol] = hc
		t.numLeaf++

		size := hc.Size
		if !hasMinMax {
			hasMinMax = true
			t.minSize = size
			t.maxSize = size
		} else if t.minSize > size {
			t.minSize = size
		} else if t.maxSize < size {
			t.maxSize = size
		}
	}

	if t.kind == kindSingleton {
		assert.Assertf(t.numLeaf == 1, "singleton tree has %d leaves", t.numLeaf)
	} else {
		assert.Assertf(len(t.nodes) == 2*t.numLeaf-1, "%d nodes for %d leaves", len(t.nodes), t.numLeaf)
	}
}

// derive computes the code of a leaf by walking up the parent links to the
// root.  The walk yields the bits in leaf-to-root order, so they are pushed
// onto a stack and popped off in root-to-leaf order.
func (t *Tree) derive(id nodeID) Code {
	if t.kind == kindSingleton {
		return MakeCode(1, 0)
	}

	var stack Code
	for parent := t.nodes[id].parent; parent != noNode; parent = t.nodes[id].parent {
		stack.push(t.nodes[parent].child[1] == id)
		id = parent
	}
	return stack.Reversed()
}

// Len returns the number of symbols that have a code.
func (t *Tree) Len() int {
	return t.numLeaf
}

// Has reports whether symbol has a code.
func (t *Tree) Has(symbol byte) bool {
	return t.leaves[symbol] != noNode
}

// IsSingleton reports whether the tree codes exactly one symbol.
func (t *Tree) IsSingleton() bool {
	return t.kind == kindSingleton
}

// Code returns the code assigned to symbol.  It fails with ErrDomain if the
// symbol had zero frequency when the tree was built.
func (t *Tree) Code(symbol byte) (Code, error) {
	if t.leaves[symbol] == noNode {
		return Code{}, fmt.Errorf("%w: symbol %d has no code", ErrDomain, symbol)
	}
	return t.codes[symbol], nil
}

// Frequency returns the frequency recorded for symbol.  Trees read from a
// header do not carry frequencies, so they always report 0.
func (t *Tree) Frequency(symbol byte) uint64 {
	if id := t.leaves[symbol]; id != noNode {
		return t.nodes[id].freq
	}
	return 0
}

// Weight returns the frequency of the root, i.e. the total number of symbols
// the tree was built from.  Trees read from a header report 0.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].freq
}

// MinSize is the bit length of the shortest code.
func (t *Tree) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *Tree) MaxSize() byte {
	return t.maxSize
}

// SizeBySymbol returns an array containing the bit length of the code for
// each symbol in the alphabet, or 0 for symbols without a code.
func (t *Tree) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range out {
		out[symbol] = t.codes[symbol].Size
	}
	return out
}

// EncodedBits returns the number of bits that encoding every symbol counted
// in f would take, excluding the header.  The result saturates at
// math.MaxUint64.  It fails with ErrDomain if f counts a symbol without a
// code.
func (t *Tree) EncodedBits(f *Frequencies) (uint64, error) {
	var total uint64
	for symbol, freq := range f {
		if freq == 0 {
			continue
		}
		hc, err := t.Code(byte(symbol))
		if err != nil {
			return 0, err
		}
		total = addSaturating(total, mulSaturating(freq, uint64(hc.Size)))
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.numLeaf)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.leaves[symbol] != noNode {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, t.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Tree) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a short description of the Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)", t.numLeaf, t.minSize, t.maxSize)
}

// GoString returns a Go-syntax summary of the Tree.
func (t *Tree) GoString() string {
	return fmt.Sprintf("hctree.Tree{Len: %d, MinSize: %d, MaxSize: %d, Singleton: %t}", t.numLeaf, t.minSize, t.maxSize, t.kind == kindSingleton)
}

var (
	_ fmt.Stringer   = (*Tree)(nil)
	_ fmt.GoStringer = (*Tree)(nil)
)
