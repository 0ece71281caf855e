package memds

var _ Container[int] = (*LinkedList[int])(nil)

// LinkedList is a thread unsafe linked list, by default it is doubly linked and tracks its tail.
// Elements are stored as is: the list never copies, compares or destroys them, except by calling
// the destructor passed to Delete.
type LinkedList[T any] struct {
	c *chain[T]
}

// NewLinkedList returns an empty doubly linked list.
func NewLinkedList[T any]() *LinkedList[T] {
	list, _ := NewLinkedListWithConfig(Config[T]{})
	return list
}

// NewLinkedListWithConfig returns an empty linked list, it fails with ErrStructureAllocFailed if
// the configured allocator refuses the allocation.
func NewLinkedListWithConfig[T any](config Config[T]) (*LinkedList[T], error) {
	c, err := newChain(KindLinkedList, config)
	if err != nil {
		return nil, err
	}
	return &LinkedList[T]{c: c}, nil
}

func (l *LinkedList[T]) self() (*chain[T], error) {
	if l == nil {
		return nil, ErrNullSelf
	}
	return l.c, l.c.check()
}

func (l *LinkedList[T]) Kind() Kind {
	return KindLinkedList
}

func (l *LinkedList[T]) Capabilities() Capability {
	c, err := l.self()
	if err != nil {
		return 0
	}
	return c.caps
}

// Length returns the number of elements in the list.
func (l *LinkedList[T]) Length() (int, error) {
	c, err := l.self()
	if err != nil {
		return -1, err
	}
	return c.length, nil
}

// Empty returns true if the list has no elements.
func (l *LinkedList[T]) Empty() (bool, error) {
	c, err := l.self()
	if err != nil {
		return false, err
	}
	return c.length == 0, nil
}

// Append adds data after the last element.
func (l *LinkedList[T]) Append(data T) error {
	c, err := l.self()
	if err != nil {
		return err
	}
	if err := c.checkData(data); err != nil {
		return err
	}
	return c.append(data)
}

// Prepend adds data before the first element.
func (l *LinkedList[T]) Prepend(data T) error {
	c, err := l.self()
	if err != nil {
		return err
	}
	if err := c.checkData(data); err != nil {
		return err
	}
	return c.prepend(data)
}

// Add inserts data at index, index should be in [0, length]: 0 prepends and length appends.
func (l *LinkedList[T]) Add(data T, index int) error {
	c, err := l.self()
	if err != nil {
		return err
	}
	if err := c.checkData(data); err != nil {
		return err
	}
	if err := c.checkIndex(index, c.length+1); err != nil {
		return err
	}

	switch index {
	case 0:
		return c.prepend(data)
	case c.length:
		return c.append(data)
	default:
		return c.insertAt(data, index)
	}
}

// At returns the element at index, index should be in [0, length).
func (l *LinkedList[T]) At(index int) (value T, _ error) {
	c, err := l.self()
	if err != nil {
		return value, err
	}
	if err := c.checkIndex(index, c.length); err != nil {
		return value, err
	}
	return c.nodeAt(index).data, nil
}

// Replace replaces the element at index with data and returns the replaced element,
// index should be in [0, length).
func (l *LinkedList[T]) Replace(data T, index int) (old T, _ error) {
	c, err := l.self()
	if err != nil {
		return old, err
	}
	if err := c.checkData(data); err != nil {
		return old, err
	}
	if err := c.checkIndex(index, c.length); err != nil {
		return old, err
	}

	n := c.nodeAt(index)
	old = n.data
	n.data = data
	return old, nil
}

// Front returns the first element without removing it.
// The second result is false if the list is empty.
func (l *LinkedList[T]) Front() (value T, ok bool, _ error) {
	c, err := l.self()
	if err != nil {
		return value, false, err
	}
	if c.head == nil {
		return value, false, nil
	}
	return c.head.data, true, nil
}

// Back returns the last element without removing it.
// The second result is false if the list is empty.
func (l *LinkedList[T]) Back() (value T, ok bool, _ error) {
	c, err := l.self()
	if err != nil {
		return value, false, err
	}
	if c.head == nil {
		return value, false, nil
	}
	return c.last().data, true, nil
}

// Pop removes the first element and returns it.
// The second result is false if the list is empty, this is not an error.
func (l *LinkedList[T]) Pop() (value T, ok bool, _ error) {
	c, err := l.self()
	if err != nil {
		return value, false, err
	}
	value, ok = c.popHead()
	return value, ok, nil
}

// Pull removes the last element and returns it.
// The second result is false if the list is empty, this is not an error.
func (l *LinkedList[T]) Pull() (value T, ok bool, _ error) {
	c, err := l.self()
	if err != nil {
		return value, false, err
	}
	value, ok = c.popTail()
	return value, ok, nil
}

// Remove removes the element at index and returns it, index should be in [0, length).
func (l *LinkedList[T]) Remove(index int) (value T, _ error) {
	c, err := l.self()
	if err != nil {
		return value, err
	}
	if err := c.checkIndex(index, c.length); err != nil {
		return value, err
	}

	switch index {
	case 0:
		value, _ = c.popHead()
	case c.length - 1:
		value, _ = c.popTail()
	default:
		value = c.removeAt(index)
	}
	return value, nil
}

// Clear removes all elements, they are not passed to any destructor.
func (l *LinkedList[T]) Clear() error {
	c, err := l.self()
	if err != nil {
		return err
	}
	return c.clear(nil)
}

// Delete removes all elements, passing each of them to destroy if it is not nil, then releases the list.
// Any later call on the list fails with ErrNullSelf.
func (l *LinkedList[T]) Delete(destroy func(v T)) error {
	c, err := l.self()
	if err != nil {
		return err
	}
	return c.delete(destroy)
}

// Values returns the elements of the list from the first to the last one.
func (l *LinkedList[T]) Values() []T {
	c, err := l.self()
	if err != nil {
		return nil
	}
	return c.values()
}

// ForEachElem calls fn for each element from the first to the last one, it stops at the first error.
// fn should not modify the list.
func (l *LinkedList[T]) ForEachElem(fn func(i int, e T) error) error {
	c, err := l.self()
	if err != nil {
		return err
	}
	return c.forEachElem(fn)
}

// Validate checks the structural invariants of the list.
func (l *LinkedList[T]) Validate() error {
	c, err := l.self()
	if err != nil {
		return err
	}
	return c.validate()
}
