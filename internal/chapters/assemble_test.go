package chapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	segments := makeSegments(4)
	segments[0].Text = "welcome to the introduction"
	segments[2].Text = "now for something different about databases"
	MarkBoundaries(segments, []float64{0.9, 0.1, 0.9})

	summary := Assemble(segments, 3)

	require.Equal(t, 2, summary.TotalChapters)
	require.Len(t, summary.Chapters, 2)
	assert.Equal(t, segments[3].End, summary.TotalDuration)

	first := summary.Chapters[0]
	assert.Equal(t, "Introduction", first.Title)
	assert.Equal(t, 0.0, first.Start)
	assert.Equal(t, "0:00", first.Timestamp)
	assert.Equal(t, 1.0, first.SimilarityScore)

	second := summary.Chapters[1]
	assert.Equal(t, 120.0, second.Start)
	assert.Equal(t, "2:00", second.Timestamp)
	assert.Equal(t, 0.1, second.SimilarityScore)

	// chapter starts strictly increase
	assert.Greater(t, second.Start, first.Start)
}

func TestAssemble_CountMatchesBoundaries(t *testing.T) {
	segments := makeSegments(6)
	MarkPeriodic(segments)

	summary := Assemble(segments, 3)

	boundaries := 0
	for _, s := range segments {
		if s.IsBoundary {
			boundaries++
		}
	}
	assert.Equal(t, boundaries, summary.TotalChapters)
	assert.LessOrEqual(t, summary.TotalChapters, len(segments))
}

func TestAssemble_Empty(t *testing.T) {
	summary := Assemble(nil, 3)
	assert.Zero(t, summary.TotalChapters)
	assert.Zero(t, summary.TotalDuration)
	assert.Empty(t, summary.Chapters)
}
