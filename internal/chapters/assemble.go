package chapters

import (
	"github.com/chapgen/chapgen/internal/keywords"
	"github.com/chapgen/chapgen/internal/segment"
	"github.com/chapgen/chapgen/internal/srt"
)

// Chapter is one labeled chapter, immutable once assembled.
type Chapter struct {
	Title           string
	Start           float64 // seconds
	Timestamp       string  // H:MM:SS, hours omitted when zero
	Keywords        []keywords.Keyword
	SimilarityScore float64
}

// Summary is the terminal artifact of a pipeline run, read-only after
// construction.
type Summary struct {
	Chapters      []Chapter
	TotalChapters int
	TotalDuration float64 // seconds, end of the final segment
}

// Assemble collects boundary segments into chapter records, one per
// boundary, synthesizing each title. Non-boundary segments produce no
// record.
func Assemble(segments []*segment.Segment, titleMaxPhrases int) *Summary {
	summary := &Summary{}
	for _, s := range segments {
		if !s.IsBoundary {
			continue
		}
		summary.Chapters = append(summary.Chapters, Chapter{
			Title:           SynthesizeTitle(s.Text, s.Keywords, titleMaxPhrases),
			Start:           s.Start,
			Timestamp:       srt.FormatTimestamp(s.Start),
			Keywords:        s.Keywords,
			SimilarityScore: s.Similarity,
		})
	}
	summary.TotalChapters = len(summary.Chapters)
	if len(segments) > 0 {
		summary.TotalDuration = segments[len(segments)-1].End
	}
	return summary
}
