package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chapgen/chapgen/internal/chapters"
	"github.com/chapgen/chapgen/internal/srt"
)

// Linear renders the chapter list one line per chapter,
// "<timestamp> <title>", the format chapter-aware video platforms
// consume from a video description.
func Linear(summary *chapters.Summary) string {
	var b strings.Builder
	for _, c := range summary.Chapters {
		fmt.Fprintf(&b, "%s %s\n", c.Timestamp, c.Title)
	}
	return b.String()
}

// Detailed renders the human-review report: counts, duration, and
// per-chapter title, timestamp, similarity score, and top keywords.
func Detailed(summary *chapters.Summary, degraded bool, reason string) string {
	var b strings.Builder
	b.WriteString("Detailed Chapter Analysis\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Total Chapters: %d\n", summary.TotalChapters)
	fmt.Fprintf(&b, "Total Duration: %s\n", srt.FormatTimestamp(summary.TotalDuration))
	if degraded {
		fmt.Fprintf(&b, "Note: low-confidence run (%s)\n", reason)
	}
	b.WriteString("\n")

	for i, c := range summary.Chapters {
		fmt.Fprintf(&b, "Chapter %d: %s\n", i+1, c.Title)
		fmt.Fprintf(&b, "  Timestamp: %s\n", c.Timestamp)
		fmt.Fprintf(&b, "  Topic Change Score: %.3f\n", c.SimilarityScore)
		if phrases := TopKeywords(c, 3); phrases != "" {
			fmt.Fprintf(&b, "  Keywords: %s\n", phrases)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TopKeywords joins a chapter's first n keyword phrases for display.
func TopKeywords(c chapters.Chapter, n int) string {
	if len(c.Keywords) == 0 {
		return ""
	}
	if n > len(c.Keywords) {
		n = len(c.Keywords)
	}
	phrases := make([]string, n)
	for i := 0; i < n; i++ {
		phrases[i] = c.Keywords[i].Phrase
	}
	return strings.Join(phrases, ", ")
}

// WriteFiles saves both rendering targets next to each other in dir:
// a YouTube-format file for video descriptions and the detailed report
// for human review. Returns both paths.
func WriteFiles(dir, name string, summary *chapters.Summary, degraded bool, reason string) (youtubePath, detailedPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	youtubePath = filepath.Join(dir, name+"_chapters_youtube.txt")
	var yb strings.Builder
	yb.WriteString("YouTube Chapters (copy to video description):\n")
	yb.WriteString(strings.Repeat("=", 50) + "\n\n")
	yb.WriteString(Linear(summary))
	if err := os.WriteFile(youtubePath, []byte(yb.String()), 0o644); err != nil {
		return "", "", fmt.Errorf("write youtube chapters: %w", err)
	}

	detailedPath = filepath.Join(dir, name+"_chapters_detailed.txt")
	if err := os.WriteFile(detailedPath, []byte(Detailed(summary, degraded, reason)), 0o644); err != nil {
		return "", "", fmt.Errorf("write detailed report: %w", err)
	}

	return youtubePath, detailedPath, nil
}
