package ensemble

import (
	"fmt"
	"math/rand"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// Partition splits ds into k shards for ensemble training.
//
// Every shard first receives floor(N/k) rows drawn without replacement, so
// the base shards are disjoint. Each shard is then extended by
// floor(shardSize*overlap/100) rows drawn with replacement from the base rows
// of the other shards; a shard never receives its own rows twice.
//
// Rows left over by the integer division are not used and raise a
// DiscardedRowsWarning. With k == 1 there are no other shards, so a non-zero
// overlap raises an IgnoredParameterWarning.
//
// Every returned shard is a deep copy and shares no memory with ds or with
// the other shards.
func Partition(ds dataset.Dataset, k, overlap int, rng *rand.Rand) ([]dataset.Dataset, error) {
	n := ds.Len()
	if n == 0 {
		return nil, errors.NewModelError("ensemble.Partition", "empty training data", errors.ErrEmptyData)
	}
	if k < 1 || k > n {
		return nil, errors.NewValidationError("n_estimators", fmt.Sprintf("must be in [1, %d]", n), k)
	}
	if overlap < 0 || overlap > 100 {
		return nil, errors.NewValidationError("overlap", "must be in [0, 100]", overlap)
	}

	shardSize := n / k
	if left := n - shardSize*k; left > 0 {
		errors.Warn(errors.NewDiscardedRowsWarning("ensemble.Partition", left,
			fmt.Sprintf("%d rows do not divide into %d shards", n, k)))
	}
	if k == 1 && overlap > 0 {
		errors.Warn(errors.NewIgnoredParameterWarning("overlap", overlap, "a single shard has no other shards to overlap with"))
		overlap = 0
	}

	// 残りの行から一様に取り出して各シャードへ割り当てる
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	base := make([][]int, k)
	for s := range base {
		base[s] = make([]int, 0, shardSize)
		for len(base[s]) < shardSize {
			r := rng.Intn(len(pool))
			base[s] = append(base[s], pool[r])
			last := len(pool) - 1
			pool[r] = pool[last]
			pool = pool[:last]
		}
	}

	extra := shardSize * overlap / 100
	shards := make([]dataset.Dataset, k)
	for s := range base {
		idx := append(make([]int, 0, shardSize+extra), base[s]...)
		for e := 0; e < extra; e++ {
			other := rng.Intn(k - 1)
			if other >= s {
				other++
			}
			idx = append(idx, base[other][rng.Intn(shardSize)])
		}
		shards[s] = ds.Subset(idx).Clone()
	}
	return shards, nil
}
