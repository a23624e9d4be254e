package hctree

import (
	"container/heap"
	"fmt"
	"math"
	"math/bits"

	"github.com/chronos-tachyon/assert"
)

// NewTree builds the Huffman tree for the given symbol frequencies, one for
// each byte value in order, except that any byte value not represented in the
// list is assumed to have a frequency of 0.
//
// Ties between equal frequencies are broken by symbol value, lowest first, so
// the same table always produces the same tree.  If exactly one symbol has a
// positive frequency, the result is a single-symbol tree whose only code is
// "0".  A table with no positive frequency is rejected with ErrDomain.
//
func NewTree(frequencies []uint64) (*Tree, error) {
	assert.Assertf(len(frequencies) <= NumSymbols, "len(frequencies) %d > NumSymbols %d", len(frequencies), NumSymbols)

	t := newTree()
	h := freqHeap{nodes: &t.nodes}
	for symbol, freq := range frequencies {
		if freq != 0 {
			h.list = append(h.list, t.addLeaf(byte(symbol), freq))
		}
	}

	switch h.Len() {
	case 0:
		return nil, fmt.Errorf("%w: no symbol has a positive frequency", ErrDomain)

	case 1:
		t.root = h.list[0]
		t.kind = kindSingleton

	default:
		// Process the minheap by popping two nodes, merging them into a
		// new internal node, and pushing the new node back onto the
		// minheap.  The first node popped becomes child0.

		h.Init()
		for h.Len() > 1 {
			a := heap.Pop(&h).(nodeID)
			b := heap.Pop(&h).(nodeID)
			heap.Push(&h, t.addInternal(a, b))
		}
		t.root = heap.Pop(&h).(nodeID)
	}

	t.finish()

	var total uint64
	for _, freq := range frequencies {
		total = addSaturating(total, freq)
	}
	assert.Assertf(t.nodes[t.root].freq == total, "root frequency %d != total frequency %d", t.nodes[t.root].freq, total)
	return t, nil
}

// NewTreeFromBytes builds the Huffman tree for the byte frequencies of data.
func NewTreeFromBytes(data []byte) (*Tree, error) {
	var f Frequencies
	f.Count(data)
	return NewTree(f[:])
}

func (t *Tree) addLeaf(symbol byte, freq uint64) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		symbol: symbol,
		freq:   freq,
		child:  [2]nodeID{noNode, noNode},
		parent: noNode,
	})
	t.leaves[symbol] = id
	return id
}

func (t *Tree) addInternal(child0, child1 nodeID) nodeID {
	id := nodeID(len(t.nodes))
	a, b := &t.nodes[child0], &t.nodes[child1]
	a.parent = id
	b.parent = id
	n := node{
		symbol: a.symbol,
		freq:   addSaturating(a.freq, b.freq),
		child:  [2]nodeID{child0, child1},
		parent: noNode,
	}
	t.nodes = append(t.nodes, n)
	return id
}

// addSaturating computes a+b, clamping at math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}

// mulSaturating computes a*b, clamping at math.MaxUint64.
func mulSaturating(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// type freqHeap {{{

// freqHeap is a minheap of arena nodes ordered by (frequency, symbol).  The
// symbols of pending nodes are always distinct, since each internal node takes
// its symbol from a leaf of its own subtree, so the order is total.
type freqHeap struct {
	nodes *[]node
	list  []nodeID
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := &(*h.nodes)[h.list[i]], &(*h.nodes)[h.list[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.symbol < b.symbol
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeID))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
