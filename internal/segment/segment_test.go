package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapgen/chapgen/internal/srt"
)

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, 60))
}

func TestAggregate_SingleCue(t *testing.T) {
	cues := []srt.Cue{{Start: 5, End: 9, Text: "only cue"}}
	segments := Aggregate(cues, 60)
	require.Len(t, segments, 1)
	assert.Equal(t, 5.0, segments[0].Start)
	assert.Equal(t, 9.0, segments[0].End)
	assert.Equal(t, "only cue", segments[0].Text)
}

func TestAggregate_ThreeWindows(t *testing.T) {
	// three cues spanning 0-150s with a 60s window: one segment each
	cues := []srt.Cue{
		{Start: 0, End: 50, Text: "first"},
		{Start: 60, End: 110, Text: "second"},
		{Start: 120, End: 150, Text: "third"},
	}

	segments := Aggregate(cues, 60)
	require.Len(t, segments, 3)

	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 50.0, segments[0].End)
	assert.Equal(t, 60.0, segments[1].Start)
	assert.Equal(t, 110.0, segments[1].End)
	assert.Equal(t, 120.0, segments[2].Start)
	assert.Equal(t, 150.0, segments[2].End)
}

func TestAggregate_EvenlySpacedCount(t *testing.T) {
	// cues every 10s over 0-145s; segment count is ceil(span/window)
	var cues []srt.Cue
	for s := 0.0; s < 150; s += 10 {
		cues = append(cues, srt.Cue{Start: s, End: s + 5, Text: fmt.Sprintf("cue %.0f", s)})
	}

	segments := Aggregate(cues, 60)
	assert.Len(t, segments, 3) // ceil(145/60)

	segments = Aggregate(cues, 90)
	assert.Len(t, segments, 2) // ceil(145/90)
}

func TestAggregate_PartitionPreservesText(t *testing.T) {
	cues := []srt.Cue{
		{Start: 0, End: 3, Text: "a"},
		{Start: 30, End: 33, Text: "b"},
		{Start: 59, End: 62, Text: "c"},
		{Start: 60, End: 64, Text: "d"},
		{Start: 125, End: 130, Text: "e"},
	}

	segments := Aggregate(cues, 60)

	// every cue's text appears exactly once, in original order
	var got []string
	for _, s := range segments {
		require.NotEmpty(t, s.Text)
		got = append(got, s.Text)
	}
	assert.Equal(t, "a b c d e", strings.Join(got, " "))

	// segment starts strictly increase; each covers its cues
	for i := 1; i < len(segments); i++ {
		assert.Greater(t, segments[i].Start, segments[i-1].Start)
	}
	for _, s := range segments {
		assert.GreaterOrEqual(t, s.End, s.Start)
	}
}

func TestAggregate_WindowBoundaryIsExclusive(t *testing.T) {
	// a cue starting exactly window seconds after the segment start
	// opens a new segment
	cues := []srt.Cue{
		{Start: 0, End: 10, Text: "a"},
		{Start: 60, End: 70, Text: "b"},
	}
	segments := Aggregate(cues, 60)
	require.Len(t, segments, 2)
	assert.Equal(t, 60.0, segments[1].Start)
}

func TestTexts(t *testing.T) {
	segments := []*Segment{{Text: "one"}, {Text: "two"}}
	assert.Equal(t, []string{"one", "two"}, Texts(segments))
}
