// Package memds implements link-based containers: a linked list, a stack and a queue.
package memds

import "fmt"

// Container is the operation set shared by LinkedList, Stack and Queue.
type Container[T any] interface {
	Kind() Kind
	Capabilities() Capability

	Length() (int, error)
	Empty() (bool, error)

	//Values returns the elements in removal order of the container, nil if the container is invalid.
	Values() []T
	ForEachElem(fn func(i int, e T) error) error

	Clear() error
	Delete(destroy func(v T)) error

	//Validate returns an error wrapping ErrCorrupted if a structural invariant does not hold.
	Validate() error
}

// New creates an empty container of the given kind.
func New[T any](kind Kind, config Config[T]) (Container[T], error) {
	switch kind {
	case KindLinkedList:
		list, err := NewLinkedListWithConfig(config)
		if err != nil {
			return nil, err
		}
		return list, nil
	case KindStack:
		stack, err := NewStackWithConfig(config)
		if err != nil {
			return nil, err
		}
		return stack, nil
	case KindQueue:
		queue, err := NewQueueWithConfig(config)
		if err != nil {
			return nil, err
		}
		return queue, nil
	default:
		return nil, fmt.Errorf("%w: unknown container kind %d", ErrGeneric, kind)
	}
}
