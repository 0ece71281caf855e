package memds

import (
	"testing"

	"github.com/inoxlang/ldsc/internal/testconfig"
	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("new stack", func(t *testing.T) {
		s := NewStack[int]()

		size, err := s.Size()
		assert.NoError(t, err)
		assert.Zero(t, size)

		empty, err := s.Empty()
		assert.NoError(t, err)
		assert.True(t, empty)

		assert.Equal(t, KindStack, s.Kind())
		assert.False(t, s.Capabilities().Has(CapHeadTail))
		assert.False(t, s.Capabilities().Has(CapDoublyLinked))
		assert.NoError(t, s.Validate())
	})

	t.Run("push, peek & pop", func(t *testing.T) {
		s := NewStack[int]()

		assert.NoError(t, s.Push(17))
		assert.NoError(t, s.Push(9))
		assert.NoError(t, s.Push(19))

		top, ok, err := s.Peek()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 19, top)

		size, _ := s.Size()
		assert.Equal(t, 3, size)
		assert.Equal(t, []int{19, 9, 17}, s.Values())
		assert.NoError(t, s.Validate())

		for _, expected := range []int{19, 9, 17} {
			v, ok, err := s.Pop()
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, expected, v)
			assert.NoError(t, s.Validate())
		}

		empty, _ := s.Empty()
		assert.True(t, empty)

		//a fourth pop is not an error.
		v, ok, err := s.Pop()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, v)

		_, ok, err = s.Peek()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("LIFO", func(t *testing.T) {
		s := NewStack[int]()
		const count = 100

		for i := 0; i < count; i++ {
			if !assert.NoError(t, s.Push(i)) {
				return
			}
		}

		for i := count - 1; i >= 0; i-- {
			v, ok, err := s.Pop()
			if !assert.NoError(t, err) || !assert.True(t, ok) {
				return
			}
			assert.Equal(t, i, v)
		}
		assert.NoError(t, s.Validate())
	})

	t.Run("interleaved pushes and pops", func(t *testing.T) {
		s := NewStack[int]()

		s.Push(1)
		s.Push(2)
		v, _, _ := s.Pop()
		assert.Equal(t, 2, v)

		s.Push(3)
		v, _, _ = s.Pop()
		assert.Equal(t, 3, v)
		v, _, _ = s.Pop()
		assert.Equal(t, 1, v)

		length, _ := s.Length()
		assert.Zero(t, length)
	})

	t.Run("clear & delete", func(t *testing.T) {
		s := NewStack[int]()
		s.Push(1)
		s.Push(2)

		assert.NoError(t, s.Clear())
		size, _ := s.Size()
		assert.Zero(t, size)

		s.Push(3)
		s.Push(4)

		var destroyed []int
		assert.NoError(t, s.Delete(func(v int) {
			destroyed = append(destroyed, v)
		}))
		assert.Equal(t, []int{4, 3}, destroyed)

		_, err := s.Size()
		assert.ErrorIs(t, err, ErrNullSelf)
		assert.ErrorIs(t, s.Push(5), ErrNullSelf)
	})

	t.Run("invalid references", func(t *testing.T) {
		var nilStack *Stack[*int]

		size, err := nilStack.Size()
		assert.ErrorIs(t, err, ErrNullSelf)
		assert.Equal(t, -1, size)

		_, err = nilStack.Empty()
		assert.ErrorIs(t, err, ErrNullSelf)

		one := 1
		assert.ErrorIs(t, nilStack.Push(&one), ErrNullSelf)

		_, _, err = nilStack.Peek()
		assert.ErrorIs(t, err, ErrNullSelf)

		_, _, err = nilStack.Pop()
		assert.ErrorIs(t, err, ErrNullSelf)

		assert.ErrorIs(t, nilStack.Clear(), ErrNullSelf)
		assert.ErrorIs(t, nilStack.Delete(nil), ErrNullSelf)
		assert.Nil(t, nilStack.Values())

		s := NewStack[*int]()
		assert.ErrorIs(t, s.Push(nil), ErrNullData)

		empty, _ := s.Empty()
		assert.True(t, empty)
	})
}
