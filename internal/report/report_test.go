package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapgen/chapgen/internal/chapters"
	"github.com/chapgen/chapgen/internal/keywords"
)

func sampleSummary() *chapters.Summary {
	return &chapters.Summary{
		Chapters: []chapters.Chapter{
			{Title: "Introduction", Start: 0, Timestamp: "0:00", SimilarityScore: 1.0,
				Keywords: []keywords.Keyword{
					{Phrase: "opening remarks", Score: 1.0},
					{Phrase: "conference welcome", Score: 0.8},
				}},
			{Title: "Raft Consensus", Start: 754, Timestamp: "12:34", SimilarityScore: 0.123},
		},
		TotalChapters: 2,
		TotalDuration: 3930,
	}
}

func TestLinear(t *testing.T) {
	got := Linear(sampleSummary())
	assert.Equal(t, "0:00 Introduction\n12:34 Raft Consensus\n", got)
}

func TestLinear_Empty(t *testing.T) {
	assert.Equal(t, "", Linear(&chapters.Summary{}))
}

func TestDetailed(t *testing.T) {
	got := Detailed(sampleSummary(), false, "")

	assert.Contains(t, got, "Total Chapters: 2")
	assert.Contains(t, got, "Total Duration: 1:05:30")
	assert.Contains(t, got, "Chapter 1: Introduction")
	assert.Contains(t, got, "Topic Change Score: 0.123")
	assert.Contains(t, got, "Keywords: opening remarks, conference welcome")
	assert.NotContains(t, got, "low-confidence")

	// chapters without keywords omit the line entirely
	lines := strings.Split(got, "\n")
	var raftKeywords bool
	for i, line := range lines {
		if strings.Contains(line, "Chapter 2") {
			for _, l := range lines[i:] {
				if strings.Contains(l, "Keywords:") {
					raftKeywords = true
				}
			}
		}
	}
	assert.False(t, raftKeywords)
}

func TestDetailed_Degraded(t *testing.T) {
	got := Detailed(sampleSummary(), true, "vocabulary collapsed: no content terms in any segment")
	assert.Contains(t, got, "low-confidence run (vocabulary collapsed: no content terms in any segment)")
}

func TestTopKeywords(t *testing.T) {
	c := sampleSummary().Chapters[0]
	assert.Equal(t, "opening remarks, conference welcome", TopKeywords(c, 3))
	assert.Equal(t, "opening remarks", TopKeywords(c, 1))
	assert.Equal(t, "", TopKeywords(chapters.Chapter{}, 3))
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	yt, det, err := WriteFiles(dir, "talk", sampleSummary(), false, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "talk_chapters_youtube.txt"), yt)
	assert.Equal(t, filepath.Join(dir, "talk_chapters_detailed.txt"), det)

	ytBody, err := os.ReadFile(yt)
	require.NoError(t, err)
	assert.Contains(t, string(ytBody), "YouTube Chapters (copy to video description):")
	assert.Contains(t, string(ytBody), "0:00 Introduction\n12:34 Raft Consensus\n")

	detBody, err := os.ReadFile(det)
	require.NoError(t, err)
	assert.Contains(t, string(detBody), "Detailed Chapter Analysis")
}

func TestWriteFiles_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, _, err := WriteFiles(dir, "talk", sampleSummary(), false, "")
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
