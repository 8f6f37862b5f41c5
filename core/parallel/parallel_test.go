package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

func TestParallelizeCoversEveryItem(t *testing.T) {
	for _, items := range []int{0, 1, 7, 1000} {
		t.Run(fmt.Sprintf("items=%d", items), func(t *testing.T) {
			seen := make([]int32, items)
			Parallelize(items, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})
			for i, n := range seen {
				assert.Equalf(t, int32(1), n, "item %d visited %d times", i, n)
			}
		})
	}
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)
}

func TestForEachWritesDisjointSlots(t *testing.T) {
	const n = 16
	out := make([]int, n)
	err := ForEach(n, func(i int) error {
		out[i] = i * i
		return nil
	})
	require.NoError(t, err)
	for i := range out {
		assert.Equal(t, i*i, out[i])
	}
}

func TestForEachFailureIsFatal(t *testing.T) {
	var finished int32
	err := ForEach(4, func(i int) error {
		defer atomic.AddInt32(&finished, 1)
		if i == 2 {
			return fmt.Errorf("shard %d failed", i)
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task 2 of 4 failed")
	// the join still waits for every task
	assert.Equal(t, int32(4), atomic.LoadInt32(&finished))
}

func TestForEachRecoversPanics(t *testing.T) {
	err := ForEach(3, func(i int) error {
		if i == 1 {
			panic("index out of range")
		}
		return nil
	})
	require.Error(t, err)

	var panicErr *errors.PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "task[1]", panicErr.Operation)
}

func TestForEachZeroTasks(t *testing.T) {
	assert.NoError(t, ForEach(0, func(int) error { return fmt.Errorf("never called") }))
}
