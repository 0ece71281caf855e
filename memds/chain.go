package memds

import (
	"fmt"

	"github.com/inoxlang/ldsc/internal/utils"
	"github.com/rs/zerolog"
)

// chain is the storage engine shared by all containers: a chain of nodes linked by next pointers,
// and by prev pointers if the chain is doubly linked. The tail is only tracked if the chain has
// the CapHeadTail capability.
type chain[T any] struct {
	kind Kind
	caps Capability

	length int
	head   *node[T]
	tail   *node[T]

	//number of nodes allocated and not yet freed, it should always be equal to length.
	live int

	alloc    Allocator
	logger   zerolog.Logger
	isAbsent func(v T) bool
	deleted  bool
}

func newChain[T any](kind Kind, config Config[T]) (*chain[T], error) {
	caps := kind.Capabilities()
	if kind == KindLinkedList && config.SinglyLinked {
		caps &^= CapDoublyLinked
	}

	alloc := config.allocator()
	if !alloc.Allocate(StructureAlloc) {
		return nil, ErrStructureAllocFailed
	}

	return &chain[T]{
		kind:     kind,
		caps:     caps,
		alloc:    alloc,
		logger:   config.logger(kind),
		isAbsent: config.isAbsent(),
	}, nil
}

func (c *chain[T]) doublyLinked() bool {
	return c.caps&CapDoublyLinked != 0
}

func (c *chain[T]) tracksTail() bool {
	return c.caps&CapHeadTail != 0
}

// check returns ErrNullSelf if the chain is nil or has been deleted.
func (c *chain[T]) check() error {
	if c == nil || c.deleted {
		return ErrNullSelf
	}
	return nil
}

func (c *chain[T]) checkData(data T) error {
	if c.isAbsent(data) {
		return ErrNullData
	}
	return nil
}

// checkIndex checks that index is in [0, end).
func (c *chain[T]) checkIndex(index int, end int) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrLessThanIndex, index)
	}
	if index >= end {
		return fmt.Errorf("%w: index %d, length %d", ErrGreaterThanIndex, index, c.length)
	}
	return nil
}

// nodeAt returns the node at index, index should be in [0, length).
func (c *chain[T]) nodeAt(index int) *node[T] {
	if index == 0 {
		return c.head
	}

	if c.tracksTail() {
		if index == c.length-1 {
			return c.tail
		}

		//walk backwards if the node is closer to the tail.
		if c.doublyLinked() && index >= c.length/2 {
			n := c.tail
			for i := c.length - 1; i > index; i-- {
				n = n.prev
			}
			return n
		}
	}

	n := c.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

func (c *chain[T]) last() *node[T] {
	if c.head == nil {
		return nil
	}
	return c.nodeAt(c.length - 1)
}

func (c *chain[T]) prepend(data T) error {
	n, err := c.newNode(data)
	if err != nil {
		return err
	}

	if c.head == nil {
		if c.tracksTail() {
			c.tail = n
		}
	} else {
		n.next = c.head
		if c.doublyLinked() {
			c.head.prev = n
		}
	}
	c.head = n
	c.length++
	return nil
}

func (c *chain[T]) append(data T) error {
	n, err := c.newNode(data)
	if err != nil {
		return err
	}

	if c.head == nil {
		c.head = n
	} else {
		last := c.last()
		last.next = n
		if c.doublyLinked() {
			n.prev = last
		}
	}
	if c.tracksTail() {
		c.tail = n
	}
	c.length++
	return nil
}

// insertAt inserts a node between the nodes at index-1 and index, index should be in [1, length).
func (c *chain[T]) insertAt(data T, index int) error {
	n, err := c.newNode(data)
	if err != nil {
		return err
	}

	prev := c.nodeAt(index - 1)
	next := prev.next

	n.next = next
	if c.doublyLinked() {
		n.prev = prev
		next.prev = n
	}
	prev.next = n

	c.length++
	return nil
}

func (c *chain[T]) popHead() (data T, ok bool) {
	n := c.head
	if n == nil {
		return
	}

	c.head = n.next
	if c.head == nil {
		c.tail = nil
	} else if c.doublyLinked() {
		c.head.prev = nil
	}
	c.length--

	data = n.data
	c.freeNode(n)
	return data, true
}

func (c *chain[T]) popTail() (data T, ok bool) {
	if c.head == nil {
		return
	}
	if c.head.next == nil {
		return c.popHead()
	}

	var n, prev *node[T]
	if c.doublyLinked() {
		n = c.last()
		prev = n.prev
	} else {
		prev = c.nodeAt(c.length - 2)
		n = prev.next
	}

	prev.next = nil
	if c.tracksTail() {
		c.tail = prev
	}
	c.length--

	data = n.data
	c.freeNode(n)
	return data, true
}

// removeAt unlinks and frees the node at index, index should be in [1, length-1).
func (c *chain[T]) removeAt(index int) T {
	var n, prev *node[T]
	if c.doublyLinked() {
		n = c.nodeAt(index)
		prev = n.prev
	} else {
		prev = c.nodeAt(index - 1)
		n = prev.next
	}

	prev.next = n.next
	if c.doublyLinked() {
		n.next.prev = prev
	}
	c.length--

	data := n.data
	c.freeNode(n)
	return data
}

// clear pops all nodes and passes their data to destroy if it is not nil.
func (c *chain[T]) clear(destroy func(v T)) error {
	var destructorErrs []error

	//the live count bounds the loop if the chain is cyclic.
	for c.head != nil && c.live > 0 {
		data, _ := c.popHead()
		if destroy != nil {
			if err := c.destroy(destroy, data); err != nil {
				destructorErrs = append(destructorErrs, err)
			}
		}
	}

	if c.length != 0 || c.head != nil {
		c.logger.Error().
			Int("residualLength", c.length).
			Int("liveNodes", c.live).
			Msg("container still holds nodes after being cleared")
		return fmt.Errorf("%w: residual length %d", ErrDeleteFail, c.length)
	}

	if len(destructorErrs) > 0 {
		return fmt.Errorf("%w: %w", ErrGeneric, utils.CombineErrorsWithPrefixMessage("element destructor failed", destructorErrs...))
	}
	return nil
}

func (c *chain[T]) destroy(destroy func(v T), data T) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = utils.ConvertPanicValueToError(e)
			c.logger.Error().Err(err).Msg("element destructor panicked")
		}
	}()

	destroy(data)
	return nil
}

// delete clears the chain and releases it, the chain is unusable afterwards even if an error is returned.
func (c *chain[T]) delete(destroy func(v T)) error {
	length := c.length
	err := c.clear(destroy)

	c.head = nil
	c.tail = nil
	c.deleted = true
	c.alloc.Free(StructureAlloc)

	c.logger.Debug().Int("releasedNodes", length).Msg("container deleted")
	return err
}

// values returns the data of the nodes in chain order.
func (c *chain[T]) values() []T {
	values := make([]T, 0, c.length)
	for n := c.head; n != nil && len(values) < c.length; n = n.next {
		values = append(values, n.data)
	}
	return values
}

func (c *chain[T]) forEachElem(fn func(i int, e T) error) error {
	i := 0
	for n := c.head; n != nil && i < c.length; n = n.next {
		if err := fn(i, n.data); err != nil {
			return err
		}
		i++
	}
	return nil
}
