package memds

import (
	"bytes"
	"errors"
	"testing"

	"github.com/inoxlang/ldsc/internal/testconfig"
	"github.com/inoxlang/ldsc/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTeardownReleasesAllNodes(t *testing.T) {
	testconfig.AllowParallelization(t)

	for _, kind := range []Kind{KindLinkedList, KindStack, KindQueue} {
		for _, size := range []int{0, 1, 2, 10, 1000} {
			alloc := NewCountingAllocator()
			container, err := New(kind, Config[int]{Allocator: alloc})
			if !assert.NoError(t, err) {
				return
			}

			for i := 0; i < size; i++ {
				var err error
				switch c := container.(type) {
				case *LinkedList[int]:
					err = c.Append(i)
				case *Stack[int]:
					err = c.Push(i)
				case *Queue[int]:
					err = c.Enqueue(i)
				}
				if !assert.NoError(t, err) {
					return
				}
			}
			assert.Equal(t, size, alloc.LiveNodes())

			destroyed := 0
			assert.NoError(t, container.Delete(func(v int) { destroyed++ }))

			assert.Equal(t, size, destroyed, kind.String())
			assert.Zero(t, alloc.LiveNodes(), kind.String())
			assert.Zero(t, alloc.LiveStructures(), kind.String())
			assert.Equal(t, size, alloc.TotalNodes(), kind.String())
		}
	}
}

func TestTeardownDestructorPanic(t *testing.T) {
	testconfig.AllowParallelization(t)

	buf := bytes.NewBuffer(nil)
	logger := zerolog.New(buf)
	alloc := NewCountingAllocator()
	list := newListOf(t, Config[int]{Allocator: alloc, Logger: &logger}, 1, 2, 3)

	var destroyed []int
	err := list.Delete(func(v int) {
		if v == 2 {
			panic(errors.New("cannot destroy 2"))
		}
		destroyed = append(destroyed, v)
	})

	assert.ErrorIs(t, err, ErrGeneric)
	assert.Equal(t, StatusError, StatusOf(err))
	assert.ErrorContains(t, err, "cannot destroy 2")
	assert.Contains(t, buf.String(), "element destructor panicked")

	//teardown went on after the panic.
	assert.Equal(t, []int{1, 3}, destroyed)
	assert.Zero(t, alloc.LiveNodes())
	assert.Zero(t, alloc.LiveStructures())
}

func TestTeardownNoMemoryLeak(t *testing.T) {
	//not parallelized: other tests would allocate during the measurement.

	type payload struct {
		data [8]int64
	}

	startStats := utils.ReadMemStats()

	func() {
		list := NewLinkedList[*payload]()
		for i := 0; i < 50_000; i++ {
			if !assert.NoError(t, list.Append(&payload{})) {
				return
			}
		}
		assert.NoError(t, list.Delete(nil))
	}()

	utils.AssertNoMemoryLeak(t, startStats, 500_000)
}
