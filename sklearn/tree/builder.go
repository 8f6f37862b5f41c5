package tree

import (
	"math/rand"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
)

// BuildOptions controls tree construction.
type BuildOptions struct {
	// MaxDepth stops growth at this depth; 0 means unlimited.
	MaxDepth int
	// Randomized switches split selection to the random-forest rule.
	Randomized bool
	// Rand drives randomized selection. Each concurrent build needs its own.
	Rand *rand.Rand
}

// Build grows a tree over ds. ranges and classes must describe ds restricted
// to features. The stopping rules apply in order:
//
//  1. depth limit reached: leaf with the majority class (empty data gives nil)
//  2. no rows: nil
//  3. a single class among the rows of ds: leaf with that class
//  4. no features left: leaf with the majority class
//
// A node where no feature yields a finite split also becomes a majority leaf.
//
// Otherwise the selected feature is split on and removed from both subtrees.
func Build(ds dataset.Dataset, ranges dataset.Ranges, classes []int, features []int, depth int, opts BuildOptions) Node {
	if opts.MaxDepth > 0 && depth == opts.MaxDepth {
		return majorityLeaf(ds)
	}
	if ds.Len() == 0 {
		return nil
	}
	if present := dataset.Classes(ds.Y); len(present) == 1 {
		return &Leaf{Class: present[0]}
	}
	if len(features) == 0 {
		return majorityLeaf(ds)
	}

	cands := Candidates(ds, classes, features, ranges)
	if len(cands) == 0 {
		return majorityLeaf(ds)
	}
	chosen := SelectFeature(cands, opts.Randomized, opts.Rand)

	remaining := make([]int, 0, len(features)-1)
	for _, f := range features {
		if f != chosen.Feature {
			remaining = append(remaining, f)
		}
	}

	return &Split{
		Feature:   chosen.Feature,
		Threshold: chosen.Threshold,
		Left:      growChild(chosen.Left, remaining, depth+1, opts),
		Right:     growChild(chosen.Right, remaining, depth+1, opts),
	}
}

func growChild(part dataset.Dataset, features []int, depth int, opts BuildOptions) Node {
	return Build(part, dataset.FeatureRanges(part, features), dataset.Classes(part.Y), features, depth, opts)
}

func majorityLeaf(ds dataset.Dataset) Node {
	label, ok := dataset.Majority(ds.Y)
	if !ok {
		return nil
	}
	return &Leaf{Class: label}
}

// Grow builds a tree over every feature of ds starting at depth 0.
func Grow(ds dataset.Dataset, opts BuildOptions) Node {
	features := dataset.AllFeatures(ds.NumFeatures())
	return Build(ds, dataset.FeatureRanges(ds, features), dataset.Classes(ds.Y), features, 0, opts)
}
