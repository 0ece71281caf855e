package memds

// node is a chain cell, prev is only set in doubly linked chains.
type node[T any] struct {
	data T
	next *node[T]
	prev *node[T]
}

// newNode allocates a node holding data with no links.
func (c *chain[T]) newNode(data T) (*node[T], error) {
	if !c.alloc.Allocate(NodeAlloc) {
		return nil, ErrNodeAllocFailed
	}
	c.live++
	return &node[T]{data: data}, nil
}

// freeNode releases a node that has already been unlinked from the chain.
func (c *chain[T]) freeNode(n *node[T]) {
	var zero T
	n.data = zero
	n.next = nil
	n.prev = nil
	c.live--
	c.alloc.Free(NodeAlloc)
}
