package chapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapgen/chapgen/internal/segment"
)

func makeSegments(n int) []*segment.Segment {
	segments := make([]*segment.Segment, n)
	for i := range segments {
		segments[i] = &segment.Segment{
			Start: float64(i) * 60,
			End:   float64(i)*60 + 50,
			Text:  "segment text",
		}
	}
	return segments
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		pct    float64
		want   float64
	}{
		{"empty", nil, 25, 0},
		{"single", []float64{5}, 25, 5},
		{"median of four", []float64{1, 2, 3, 4}, 50, 2.5},
		{"quartile of similarity sample", []float64{0.9, 0.9, 0.1, 0.9}, 25, 0.7},
		{"zeroth", []float64{3, 1, 2}, 0, 1},
		{"hundredth", []float64{3, 1, 2}, 100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentile(tt.values, tt.pct), 1e-9)
		})
	}
}

func TestMarkBoundaries_QuartileThreshold(t *testing.T) {
	// 5 segments, 4 adjacent similarities; the 25th percentile of
	// [0.9 0.9 0.1 0.9] is 0.7, so only the 0.1 drop marks a boundary
	segments := makeSegments(5)
	sims := []float64{0.9, 0.9, 0.1, 0.9}

	MarkBoundaries(segments, sims)

	assert.True(t, segments[0].IsBoundary)
	assert.Equal(t, 1.0, segments[0].Similarity)

	assert.False(t, segments[1].IsBoundary)
	assert.False(t, segments[2].IsBoundary)
	assert.True(t, segments[3].IsBoundary)
	assert.False(t, segments[4].IsBoundary)

	assert.Equal(t, 0.1, segments[3].Similarity)
	assert.Equal(t, 0.9, segments[4].Similarity)
}

func TestMarkBoundaries_ThresholdIsInclusive(t *testing.T) {
	// all equal similarities: every value sits at the percentile, so
	// every segment after the first is a boundary
	segments := makeSegments(4)
	MarkBoundaries(segments, []float64{0.5, 0.5, 0.5})

	for i, s := range segments {
		assert.True(t, s.IsBoundary, "segment %d", i)
	}
}

func TestMarkBoundaries_SingleSegment(t *testing.T) {
	segments := makeSegments(1)
	MarkBoundaries(segments, nil)

	require.Len(t, segments, 1)
	assert.True(t, segments[0].IsBoundary)
	assert.Equal(t, 1.0, segments[0].Similarity)
}

func TestMarkBoundaries_Empty(t *testing.T) {
	MarkBoundaries(nil, nil) // must not panic
}

func TestMarkPeriodic(t *testing.T) {
	segments := makeSegments(7)
	MarkPeriodic(segments)

	for i, s := range segments {
		assert.Equal(t, i%3 == 0, s.IsBoundary, "segment %d", i)
	}
	assert.Equal(t, 1.0, segments[0].Similarity)
	assert.Equal(t, fallbackSimilarity, segments[1].Similarity)
}
