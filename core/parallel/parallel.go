package parallel

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// Parallelize divides the specified total number (items) according to the number of CPU cores,
// and executes the specified function (fn) in parallel for each range (start, end)
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk absorbs the remainder
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold performs parallelization only when the number of items exceeds the threshold
// If below threshold, normal sequential processing is performed
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ForEach runs fn once per task index, each in its own goroutine, and blocks
// until every task has returned. There is no timeout and no cancellation.
//
// A panicking task is converted into a PanicError. When any task fails, the
// error of the lowest failing index is returned; callers must treat the whole
// batch as failed.
func ForEach(tasks int, fn func(i int) error) error {
	if tasks <= 0 {
		return nil
	}

	errs := make([]error, tasks)

	var wg sync.WaitGroup
	wg.Add(tasks)
	for i := 0; i < tasks; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = errors.SafeExecute(fmt.Sprintf("task[%d]", i), func() error {
				return fn(i)
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return errors.Wrapf(err, "task %d of %d failed", i, tasks)
		}
	}
	return nil
}
