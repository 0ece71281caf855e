package memds

import (
	"reflect"

	"github.com/rs/zerolog"
)

// Config configures a container, the zero value is a valid configuration.
type Config[T any] struct {
	//Allocator accounts for the structure and the nodes of the container,
	//if nil allocations are never refused.
	Allocator Allocator

	//if nil nothing is logged.
	Logger *zerolog.Logger

	//IsAbsent reports whether a payload should be rejected with ErrNullData.
	//Defaults to IsNil.
	IsAbsent func(v T) bool

	//SinglyLinked only applies to linked lists: nodes do not store a link to their predecessor,
	//Pull and the traversal of the second half of the list become O(n).
	SinglyLinked bool
}

func (c Config[T]) allocator() Allocator {
	if c.Allocator == nil {
		return unlimitedAllocator{}
	}
	return c.Allocator
}

func (c Config[T]) logger(kind Kind) zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return c.Logger.With().Str("container", kind.String()).Logger()
}

func (c Config[T]) isAbsent() func(v T) bool {
	if c.IsAbsent == nil {
		return IsNil[T]
	}
	return c.IsAbsent
}

// IsNil returns true if v is a nil interface, pointer, map, slice, channel or function.
// Values of other kinds are never nil.
func IsNil[T any](v T) bool {
	boxed := any(v)
	if boxed == nil {
		return true
	}
	switch val := reflect.ValueOf(boxed); val.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return val.IsNil()
	}
	return false
}
