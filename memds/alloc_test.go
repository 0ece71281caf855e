package memds

import (
	"testing"

	"github.com/inoxlang/ldsc/internal/testconfig"
	"github.com/stretchr/testify/assert"
)

func TestCountingAllocator(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("structure allocation failure", func(t *testing.T) {
		alloc := &CountingAllocator{MaxStructures: 1}

		list, err := NewLinkedListWithConfig(Config[int]{Allocator: alloc})
		assert.NoError(t, err)
		assert.NotNil(t, list)

		stack, err := NewStackWithConfig(Config[int]{Allocator: alloc})
		assert.ErrorIs(t, err, ErrStructureAllocFailed)
		assert.Nil(t, stack)

		queue, err := NewQueueWithConfig(Config[int]{Allocator: alloc})
		assert.ErrorIs(t, err, ErrStructureAllocFailed)
		assert.Nil(t, queue)

		assert.Equal(t, 2, alloc.Refused())
		assert.Equal(t, 1, alloc.LiveStructures())

		//deleting the list frees a slot.
		assert.NoError(t, list.Delete(nil))
		assert.Zero(t, alloc.LiveStructures())

		queue, err = NewQueueWithConfig(Config[int]{Allocator: alloc})
		assert.NoError(t, err)
		assert.NotNil(t, queue)
	})

	t.Run("node allocation failure", func(t *testing.T) {
		alloc := &CountingAllocator{MaxNodes: 2}
		list := newListOf(t, Config[int]{Allocator: alloc}, 1, 2)

		assert.ErrorIs(t, list.Append(3), ErrNodeAllocFailed)
		assert.ErrorIs(t, list.Prepend(0), ErrNodeAllocFailed)
		err := list.Add(5, 1)
		assert.ErrorIs(t, err, ErrNodeAllocFailed)
		assert.Equal(t, StatusNodeAllocFailed, StatusOf(err))

		//nothing has been linked.
		assert.Equal(t, []int{1, 2}, list.Values())
		assert.NoError(t, list.Validate())
		assert.Equal(t, 2, alloc.LiveNodes())

		//removing an element frees a node.
		list.Pop()
		assert.Equal(t, 1, alloc.LiveNodes())
		assert.NoError(t, list.Append(3))
		assert.Equal(t, []int{2, 3}, list.Values())
	})

	t.Run("stack & queue node allocation failures", func(t *testing.T) {
		alloc := &CountingAllocator{MaxNodes: 1}

		s, _ := NewStackWithConfig(Config[int]{Allocator: alloc})
		assert.NoError(t, s.Push(1))
		assert.ErrorIs(t, s.Push(2), ErrNodeAllocFailed)
		assert.Equal(t, []int{1}, s.Values())

		q, _ := NewQueueWithConfig(Config[int]{Allocator: alloc})
		assert.ErrorIs(t, q.Enqueue(1), ErrNodeAllocFailed)

		empty, _ := q.Empty()
		assert.True(t, empty)
		assert.NoError(t, q.Validate())
	})

	t.Run("counters", func(t *testing.T) {
		alloc := NewCountingAllocator()
		q, _ := NewQueueWithConfig(Config[string]{Allocator: alloc})

		q.Enqueue("a")
		q.Enqueue("b")
		q.Dequeue()
		q.Enqueue("c")

		assert.Equal(t, 2, alloc.LiveNodes())
		assert.Equal(t, 3, alloc.TotalNodes())
		assert.Equal(t, 1, alloc.LiveStructures())
		assert.Zero(t, alloc.Refused())
	})
}
