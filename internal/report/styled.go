package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/chapgen/chapgen/internal/chapters"
	"github.com/chapgen/chapgen/internal/srt"
)

var (
	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	styleStat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	styleTimestamp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	styleKeywords = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleDegraded = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

const titleColWidth = 32

// Styled renders the chapter preview for an interactive terminal:
// summary stats, a chapter table, and the copy-paste YouTube block.
func Styled(summary *chapters.Summary, degraded bool, reason string) string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("Generated Chapters") + "\n\n")

	avg := "n/a"
	if summary.TotalChapters > 0 {
		avg = srt.FormatTimestamp(summary.TotalDuration / float64(summary.TotalChapters))
	}
	b.WriteString(styleStat.Render(fmt.Sprintf("chapters: %d   duration: %s   avg length: %s",
		summary.TotalChapters, srt.FormatTimestamp(summary.TotalDuration), avg)) + "\n")
	if degraded {
		b.WriteString(styleDegraded.Render("low-confidence run: "+reason) + "\n")
	}
	b.WriteString("\n")

	for i, c := range summary.Chapters {
		title := c.Title
		if runewidth.StringWidth(title) > titleColWidth {
			title = runewidth.Truncate(title, titleColWidth, "...")
		}
		line := fmt.Sprintf("%2d  %s  %s",
			i+1,
			styleTimestamp.Render(fmt.Sprintf("%8s", c.Timestamp)),
			runewidth.FillRight(title, titleColWidth))
		if phrases := TopKeywords(c, 3); phrases != "" {
			line += "  " + styleKeywords.Render(phrases)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + styleHeader.Render("YouTube format") + "\n")
	b.WriteString(styleBox.Render(strings.TrimRight(Linear(summary), "\n")) + "\n")

	return b.String()
}
