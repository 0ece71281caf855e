package memds

var _ Container[int] = (*Stack[int])(nil)

// Stack is a thread unsafe LIFO stack backed by a singly linked chain, the top of the stack is
// the head of the chain.
type Stack[T any] struct {
	c *chain[T]
}

func NewStack[T any]() *Stack[T] {
	stack, _ := NewStackWithConfig(Config[T]{})
	return stack
}

// NewStackWithConfig returns an empty stack, it fails with ErrStructureAllocFailed if
// the configured allocator refuses the allocation. config.SinglyLinked is ignored.
func NewStackWithConfig[T any](config Config[T]) (*Stack[T], error) {
	c, err := newChain(KindStack, config)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{c: c}, nil
}

func (s *Stack[T]) self() (*chain[T], error) {
	if s == nil {
		return nil, ErrNullSelf
	}
	return s.c, s.c.check()
}

func (s *Stack[T]) Kind() Kind {
	return KindStack
}

func (s *Stack[T]) Capabilities() Capability {
	c, err := s.self()
	if err != nil {
		return 0
	}
	return c.caps
}

// Size returns the number of elements in the stack.
func (s *Stack[T]) Size() (int, error) {
	c, err := s.self()
	if err != nil {
		return -1, err
	}
	return c.length, nil
}

// Length is an alias of Size.
func (s *Stack[T]) Length() (int, error) {
	return s.Size()
}

func (s *Stack[T]) Empty() (bool, error) {
	c, err := s.self()
	if err != nil {
		return false, err
	}
	return c.length == 0, nil
}

// Push adds data on top of the stack.
func (s *Stack[T]) Push(data T) error {
	c, err := s.self()
	if err != nil {
		return err
	}
	if err := c.checkData(data); err != nil {
		return err
	}
	return c.prepend(data)
}

// Peek returns the top element without removing it.
// The second result is false if the stack is empty, this is not an error.
func (s *Stack[T]) Peek() (value T, ok bool, _ error) {
	c, err := s.self()
	if err != nil {
		return value, false, err
	}
	if c.head == nil {
		return value, false, nil
	}
	return c.head.data, true, nil
}

// Pop removes the top element and returns it.
// The second result is false if the stack is empty, this is not an error.
func (s *Stack[T]) Pop() (value T, ok bool, _ error) {
	c, err := s.self()
	if err != nil {
		return value, false, err
	}
	value, ok = c.popHead()
	return value, ok, nil
}

func (s *Stack[T]) Clear() error {
	c, err := s.self()
	if err != nil {
		return err
	}
	return c.clear(nil)
}

// Delete pops all elements, passing each of them to destroy if it is not nil, then releases the stack.
// Any later call on the stack fails with ErrNullSelf.
func (s *Stack[T]) Delete(destroy func(v T)) error {
	c, err := s.self()
	if err != nil {
		return err
	}
	return c.delete(destroy)
}

// Values returns the elements of the stack from the top to the bottom.
func (s *Stack[T]) Values() []T {
	c, err := s.self()
	if err != nil {
		return nil
	}
	return c.values()
}

func (s *Stack[T]) ForEachElem(fn func(i int, e T) error) error {
	c, err := s.self()
	if err != nil {
		return err
	}
	return c.forEachElem(fn)
}

func (s *Stack[T]) Validate() error {
	c, err := s.self()
	if err != nil {
		return err
	}
	return c.validate()
}
