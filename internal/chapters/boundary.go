package chapters

import (
	"sort"

	"github.com/chapgen/chapgen/internal/segment"
)

// boundaryPercentile is the cutoff over the talk's own similarity
// distribution. A fixed absolute threshold is unreliable across genres;
// the bottom quartile of each talk's drift adapts per talk.
const boundaryPercentile = 25.0

// fallbackSimilarity is the neutral placeholder recorded when no real
// vector space was available.
const fallbackSimilarity = 0.5

// MarkBoundaries annotates segments in place given the adjacent
// similarity sequence (sims[i] compares segments i and i+1). A segment
// starts a chapter when its predecessor similarity falls at or below
// the 25th percentile of the whole talk. The first segment is always a
// boundary with a placeholder similarity of 1.0, denoting "no
// predecessor". Two-pass: the full sequence must exist before any
// single boundary is decided.
func MarkBoundaries(segments []*segment.Segment, sims []float64) {
	if len(segments) == 0 {
		return
	}

	if len(sims) > 0 {
		threshold := Percentile(sims, boundaryPercentile)
		for i, sim := range sims {
			segments[i+1].IsBoundary = sim <= threshold
			segments[i+1].Similarity = sim
		}
	}

	segments[0].IsBoundary = true
	segments[0].Similarity = 1.0
}

// MarkPeriodic is the low-confidence fallback when no vector space
// could be built: every third segment starts a chapter, so the pipeline
// never produces zero chapters solely due to a numerics failure.
func MarkPeriodic(segments []*segment.Segment) {
	for i, s := range segments {
		s.IsBoundary = i%3 == 0
		s.Similarity = fallbackSimilarity
	}
	if len(segments) > 0 {
		segments[0].Similarity = 1.0
	}
}

// Percentile computes the pct-th percentile of values using linear
// interpolation between closest ranks over the sorted sample.
func Percentile(values []float64, pct float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if pct <= 0 {
		return sorted[0]
	}
	if pct >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := pct / 100 * float64(len(sorted)-1)
	lo := int(rank)
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
