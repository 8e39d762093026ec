package segment

import (
	"strings"

	"github.com/chapgen/chapgen/internal/keywords"
	"github.com/chapgen/chapgen/internal/srt"
)

// Segment is a fixed-duration aggregation of consecutive cues, the unit
// of topic analysis. Later pipeline stages annotate it in place.
type Segment struct {
	Start float64 // seconds, start of the first cue
	End   float64 // seconds, end of the last absorbed cue
	Text  string  // space-joined cue texts, never empty once emitted

	Keywords   []keywords.Keyword
	IsBoundary bool
	Similarity float64 // similarity to the previous segment; 1.0 for the first
}

// DefaultWindow is the analysis window used when the caller passes no
// duration. 90s windows give enough text for stable term weighting.
const DefaultWindow = 90.0

// Aggregate groups ordered cues into analysis windows. A new segment
// starts whenever the next cue's start minus the current segment's start
// meets or exceeds window. One-pass and greedy: no rebalancing, no
// look-ahead, every cue lands in exactly one segment.
func Aggregate(cues []srt.Cue, window float64) []*Segment {
	if len(cues) == 0 {
		return nil
	}
	if window <= 0 {
		window = DefaultWindow
	}

	var segments []*Segment
	var texts []string
	start := cues[0].Start
	end := cues[0].End

	flush := func() {
		if len(texts) == 0 {
			return
		}
		segments = append(segments, &Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(texts, " "),
		})
		texts = texts[:0]
	}

	for _, cue := range cues {
		if cue.Start-start >= window {
			flush()
			start = cue.Start
		}
		texts = append(texts, cue.Text)
		end = cue.End
	}
	flush()

	return segments
}

// Texts returns the combined text of each segment in order, the corpus
// the similarity engine vectorizes jointly.
func Texts(segments []*Segment) []string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return texts
}
