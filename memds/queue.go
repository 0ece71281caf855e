package memds

var _ Container[int] = (*Queue[int])(nil)

// Queue is a thread unsafe FIFO queue backed by a singly linked chain that tracks its tail:
// elements are enqueued at the tail and dequeued at the head.
type Queue[T any] struct {
	c *chain[T]
}

func NewQueue[T any]() *Queue[T] {
	queue, _ := NewQueueWithConfig(Config[T]{})
	return queue
}

// NewQueueWithConfig returns an empty queue, it fails with ErrStructureAllocFailed if
// the configured allocator refuses the allocation. config.SinglyLinked is ignored.
func NewQueueWithConfig[T any](config Config[T]) (*Queue[T], error) {
	c, err := newChain(KindQueue, config)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{c: c}, nil
}

func (q *Queue[T]) self() (*chain[T], error) {
	if q == nil {
		return nil, ErrNullSelf
	}
	return q.c, q.c.check()
}

func (q *Queue[T]) Kind() Kind {
	return KindQueue
}

func (q *Queue[T]) Capabilities() Capability {
	c, err := q.self()
	if err != nil {
		return 0
	}
	return c.caps
}

// Length returns the number of elements within the queue.
func (q *Queue[T]) Length() (int, error) {
	c, err := q.self()
	if err != nil {
		return -1, err
	}
	return c.length, nil
}

// Empty returns true if queue does not contain any elements.
func (q *Queue[T]) Empty() (bool, error) {
	c, err := q.self()
	if err != nil {
		return false, err
	}
	return c.length == 0, nil
}

// Enqueue adds a value to the end of the queue.
func (q *Queue[T]) Enqueue(data T) error {
	c, err := q.self()
	if err != nil {
		return err
	}
	if err := c.checkData(data); err != nil {
		return err
	}
	return c.append(data)
}

// Dequeue removes first element of the queue and returns it.
// Second result is true, unless the queue was empty and there was nothing to dequeue.
func (q *Queue[T]) Dequeue() (value T, ok bool, _ error) {
	c, err := q.self()
	if err != nil {
		return value, false, err
	}
	value, ok = c.popHead()
	return value, ok, nil
}

// Peek returns first element of the queue without removing it.
// Second result is true, unless the queue was empty and there was nothing to peek.
func (q *Queue[T]) Peek() (value T, ok bool, _ error) {
	c, err := q.self()
	if err != nil {
		return value, false, err
	}
	if c.head == nil {
		return value, false, nil
	}
	return c.head.data, true, nil
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() error {
	c, err := q.self()
	if err != nil {
		return err
	}
	return c.clear(nil)
}

// Delete dequeues all elements, passing each of them to destroy if it is not nil, then releases the queue.
// Any later call on the queue fails with ErrNullSelf.
func (q *Queue[T]) Delete(destroy func(v T)) error {
	c, err := q.self()
	if err != nil {
		return err
	}
	return c.delete(destroy)
}

// Values returns all elements in the queue (FIFO order).
func (q *Queue[T]) Values() []T {
	c, err := q.self()
	if err != nil {
		return nil
	}
	return c.values()
}

func (q *Queue[T]) ForEachElem(fn func(i int, e T) error) error {
	c, err := q.self()
	if err != nil {
		return err
	}
	return c.forEachElem(fn)
}

func (q *Queue[T]) Validate() error {
	c, err := q.self()
	if err != nil {
		return err
	}
	return c.validate()
}
