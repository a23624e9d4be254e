package hctree

// nodeID is an index into a Tree's node arena.
type nodeID int32

const noNode = nodeID(-1)

// node is a vertex of the code tree.  Internal nodes always have two
// children; leaves have none.  The symbol of an internal node is copied from
// child0 and is only used to break frequency ties while building.
type node struct {
	symbol byte
	freq   uint64
	child  [2]nodeID
	parent nodeID
}

func (n *node) isLeaf() bool {
	return n.child[0] == noNode && n.child[1] == noNode
}
