package ensemble

import (
	"math/rand"
	"time"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/core/parallel"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/pkg/log"
	"github.com/YuminosukeSato/entropyforest/sklearn/tree"
)

// Build partitions ds into k shards and grows one tree per shard in parallel.
//
// opts.Rand drives the partitioning and seeds an independent generator for
// every shard; a nil Rand is seeded from the clock. The returned roots are
// ordered by shard index. If any tree fails the whole build fails.
func Build(ds dataset.Dataset, k, overlap int, opts tree.BuildOptions) ([]tree.Node, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	shards, err := Partition(ds, k, overlap, rng)
	if err != nil {
		return nil, err
	}
	seeds := make([]int64, k)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	logger := log.GetLoggerWithName("ensemble")
	roots := make([]tree.Node, k)

	err = parallel.ForEach(k, func(i int) error {
		start := time.Now()
		shardOpts := tree.BuildOptions{
			MaxDepth:   opts.MaxDepth,
			Randomized: opts.Randomized,
			Rand:       rand.New(rand.NewSource(seeds[i])),
		}
		root := tree.Grow(shards[i], shardOpts)
		if root == nil {
			return errors.NewModelError("ensemble.Build", "empty tree", errors.ErrEmptyData)
		}
		roots[i] = root

		logger.Debug("Tree built",
			log.ShardKey, i,
			log.ShardSizeKey, shards[i].Len(),
			log.DepthKey, tree.Depth(root),
			log.NodesKey, tree.Count(root),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "ensemble build aborted")
	}
	return roots, nil
}
