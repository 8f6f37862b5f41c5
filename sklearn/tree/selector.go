package tree

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// NumThresholds is the number of evenly spaced candidate thresholds scanned per feature.
const NumThresholds = 5

// Candidate is the best split found for one feature.
type Candidate struct {
	Feature   int
	Threshold float64
	Gain      float64
	Left      dataset.Dataset
	Right     dataset.Dataset
}

// Thresholds returns NumThresholds evenly spaced values from lo to hi inclusive.
// lo == hi yields NumThresholds copies of lo.
func Thresholds(lo, hi float64) []float64 {
	out := make([]float64, NumThresholds)
	if !math.IsInf(hi-lo, 0) {
		return floats.Span(out, lo, hi)
	}
	// hi-lo overflows; scale the endpoints first
	step := hi/(NumThresholds-1) - lo/(NumThresholds-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[NumThresholds-1] = hi
	return out
}

// BestThreshold scans the candidate thresholds of one feature and keeps the
// first one reaching the maximum gain. Non-finite thresholds and gains are
// skipped; if none remain the returned Gain is -Inf.
func BestThreshold(ds dataset.Dataset, classes []int, feature int, r dataset.Range) Candidate {
	best := Candidate{Feature: feature, Gain: math.Inf(-1)}
	for _, v := range Thresholds(r.Min, r.Max) {
		if errors.CheckScalar("threshold", v, feature) != nil {
			continue
		}
		gain, left, right := Gain(ds, classes, feature, v)
		if errors.CheckScalar("gain", gain, feature) != nil {
			continue
		}
		if gain > best.Gain {
			best = Candidate{Feature: feature, Threshold: v, Gain: gain, Left: left, Right: right}
		}
	}
	return best
}

// Candidates evaluates every feature in scan order. Features without a finite
// split are left out.
func Candidates(ds dataset.Dataset, classes []int, features []int, ranges dataset.Ranges) []Candidate {
	out := make([]Candidate, 0, len(features))
	for _, f := range features {
		r, ok := ranges[f]
		if !ok {
			// range tables always cover the candidate features of a non-empty subset
			r = dataset.FeatureRanges(ds, []int{f})[f]
		}
		if c := BestThreshold(ds, classes, f, r); !math.IsInf(c.Gain, -1) {
			out = append(out, c)
		}
	}
	return out
}

// SelectFeature picks the split to apply among per-feature candidates.
//
// Greedy selection returns the first candidate with maximum gain.
//
// Randomized selection orders candidates by ascending gain and draws an index
// uniformly from [0, m], m = floor(sqrt(len(candidates))), capped at the last
// index. The draw therefore favors low-gain features.
//
// cands must not be empty.
func SelectFeature(cands []Candidate, randomized bool, rng *rand.Rand) Candidate {
	if !randomized {
		best := cands[0]
		for _, c := range cands[1:] {
			if c.Gain > best.Gain {
				best = c
			}
		}
		return best
	}

	ordered := append([]Candidate(nil), cands...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Gain < ordered[j].Gain })

	m := int(math.Sqrt(float64(len(ordered))))
	if m > len(ordered)-1 {
		m = len(ordered) - 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return ordered[rng.Intn(m+1)]
}
