package hctree

// The tree header is a pre-order walk of the tree.  A leaf is written as a
// 1 bit followed by its 8-bit symbol; an internal node is written as a 0 bit
// followed by child0 and then child1.  A tree with L leaves therefore takes
// 2L-1 flag bits plus 8L symbol bits.
//
// A single-symbol tree is written as an internal node whose two children are
// both its leaf, i.e. "0 1sssssss 1sssssss".

// HeaderBits returns the size of the tree header in bits.
func (t *Tree) HeaderBits() int {
	if t.kind == kindSingleton {
		return 1 + 2*9
	}
	return 10*t.numLeaf - 1
}

// WriteHeader writes the shape of the tree to w.  Errors from w are
// returned as is.
func (t *Tree) WriteHeader(w BitWriter) error {
	if t.kind == kindSingleton {
		if err := w.WriteBool(false); err != nil {
			return err
		}
		if err := t.writeNode(w, t.root); err != nil {
			return err
		}
		return t.writeNode(w, t.root)
	}
	return t.writeNode(w, t.root)
}

func (t *Tree) writeNode(w BitWriter, id nodeID) error {
	n := &t.nodes[id]
	if n.isLeaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteByte(n.symbol)
	}

	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := t.writeNode(w, n.child[0]); err != nil {
		return err
	}
	return t.writeNode(w, n.child[1])
}

// ReadTree reconstructs a tree from a header written by WriteHeader.  The
// reconstructed tree assigns the same code to every symbol as the tree that
// wrote the header, but carries no frequencies.
//
// Headers that WriteHeader never produces are rejected with ErrCorrupt: a
// lone leaf, a symbol appearing twice (other than in the single-symbol
// shape), or a leaf deeper than MaxCodeSize.  A header cut short is reported
// as ErrCorrupt wrapping io.ErrUnexpectedEOF.  Other errors from r are
// returned as is.
//
func ReadTree(r BitReader) (*Tree, error) {
	t := newTree()
	root, err := t.readNode(r, 0)
	if err != nil {
		return nil, err
	}
	if t.nodes[root].isLeaf() {
		return nil, corruptf("header holds a lone leaf")
	}

	t.root = root
	if n := &t.nodes[root]; n.child[0] == n.child[1] {
		// Single-symbol shape: keep only the leaf.
		t.nodes = t.nodes[:1]
		t.nodes[0].parent = noNode
		t.root = 0
		t.kind = kindSingleton
	}

	t.finish()
	return t, nil
}

func (t *Tree) readNode(r BitReader, depth int) (nodeID, error) {
	if depth > MaxCodeSize {
		return noNode, corruptf("tree is deeper than %d levels", MaxCodeSize)
	}

	isLeaf, err := r.ReadBool()
	if err != nil {
		return noNode, truncated(err)
	}

	if isLeaf {
		symbol, err := r.ReadByte()
		if err != nil {
			return noNode, truncated(err)
		}
		if id := t.leaves[symbol]; id != noNode {
			// The only legal repeat is child1 of a root whose child0
			// is the same symbol's leaf.
			if depth == 1 && len(t.nodes) == 1 {
				return id, nil
			}
			return noNode, corruptf("symbol %d appears twice in the header", symbol)
		}
		return t.addLeaf(symbol, 0), nil
	}

	child0, err := t.readNode(r, depth+1)
	if err != nil {
		return noNode, err
	}
	child1, err := t.readNode(r, depth+1)
	if err != nil {
		return noNode, err
	}
	return t.addInternal(child0, child1), nil
}
