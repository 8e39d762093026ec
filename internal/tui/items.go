package tui

import (
	"fmt"
	"strings"

	"github.com/chapgen/chapgen/internal/index"
	"github.com/chapgen/chapgen/internal/pipeline"
	"github.com/chapgen/chapgen/internal/report"
	"github.com/chapgen/chapgen/internal/srt"
)

// ChapterItems builds the browser entries for a fresh pipeline result:
// one entry per chapter, previewing the boundary segment's full text
// and keywords. Enter copies the whole YouTube block.
func ChapterItems(result *pipeline.Result, name string) []Item {
	block := strings.TrimRight(report.Linear(result.Summary), "\n")

	var boundaries []int
	for i, s := range result.Segments {
		if s.IsBoundary {
			boundaries = append(boundaries, i)
		}
	}

	items := make([]Item, 0, len(result.Summary.Chapters))
	for i, c := range result.Summary.Chapters {
		var preview strings.Builder
		fmt.Fprintf(&preview, "%s  %s\n", styleTimestamp.Render(c.Timestamp), c.Title)
		fmt.Fprintf(&preview, "similarity: %.3f\n", c.SimilarityScore)
		if phrases := report.TopKeywords(c, 3); phrases != "" {
			fmt.Fprintf(&preview, "keywords: %s\n", phrases)
		}
		if i < len(boundaries) {
			preview.WriteString("\n")
			preview.WriteString(result.Segments[boundaries[i]].Text)
		}

		meta := fmt.Sprintf("%s  %s", name, report.TopKeywords(c, 2))
		items = append(items, Item{
			Title:    fmt.Sprintf("%s  %s", c.Timestamp, c.Title),
			Meta:     strings.TrimSpace(meta),
			Preview:  preview.String(),
			CopyText: block,
			Degraded: result.Degraded,
		})
	}
	return items
}

// RunItems builds the browser entries for previously processed files:
// one entry per stored run, previewing its chapter list. Enter copies
// that run's YouTube block.
func RunItems(db *index.DB) ([]Item, error) {
	runs, err := db.ListRuns()
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	var items []Item
	for _, run := range runs {
		rows, err := db.GetChapters(run.Path)
		if err != nil {
			return nil, fmt.Errorf("chapters for %s: %w", run.Path, err)
		}

		var block strings.Builder
		var preview strings.Builder
		preview.WriteString(run.Path + "\n\n")
		for _, c := range rows {
			fmt.Fprintf(&block, "%s %s\n", c.Timestamp, c.Title)
			fmt.Fprintf(&preview, "%s  %s\n", styleTimestamp.Render(c.Timestamp), c.Title)
			if c.Keywords != "" {
				fmt.Fprintf(&preview, "        %s\n", styleMeta.Render(c.Keywords))
			}
		}

		meta := fmt.Sprintf("%d chapters  %s  %s",
			run.ChapterCount, srt.FormatTimestamp(run.Duration), shortDate(run.ProcessedAt))
		if run.Degraded {
			meta += "  low-confidence"
		}

		items = append(items, Item{
			Title:    run.Name,
			Meta:     meta,
			Preview:  preview.String(),
			CopyText: strings.TrimRight(block.String(), "\n"),
			Degraded: run.Degraded,
		})
	}
	return items, nil
}

// shortDate trims a stored RFC3339-ish timestamp to YYYY-MM-DD.
func shortDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
