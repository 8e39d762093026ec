package srt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTimestamp marks a cue timing line that cannot be parsed.
// Callers skip the cue; it is never fatal for the whole file.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Cue is a single timed line of transcript text.
type Cue struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

// Duration returns the cue length in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// ParseTiming parses an SRT timing line like
// "00:00:20,000 --> 00:00:24,400" into (start, end) seconds.
// Hours may have any width; milliseconds use the comma separator.
func ParseTiming(line string) (start, end float64, err error) {
	startStr, endStr, ok := strings.Cut(line, " --> ")
	if !ok {
		return 0, 0, fmt.Errorf("%w: missing separator in %q", ErrMalformedTimestamp, line)
	}

	start, err = timeToSeconds(strings.TrimSpace(startStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}
	end, err = timeToSeconds(strings.TrimSpace(endStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}
	if end <= start {
		return 0, 0, fmt.Errorf("%w: end %.3f not after start %.3f", ErrMalformedTimestamp, end, start)
	}
	return start, end, nil
}

func timeToSeconds(s string) (float64, error) {
	// comma is the SRT millisecond separator
	s = strings.Replace(s, ",", ".", 1)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected H:MM:SS in %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("hours %q: %v", parts[0], err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("minutes %q: %v", parts[1], err)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("seconds %q: %v", parts[2], err)
	}
	return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
}

// FormatTimestamp renders seconds as H:MM:SS, omitting hours when zero
// (the format chapter-aware video platforms expect).
func FormatTimestamp(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// formatTiming renders seconds in full SRT form, e.g. "00:01:02,345".
func formatTiming(seconds float64) string {
	millis := int(seconds*1000 + 0.5)
	hours := millis / 3600000
	millis %= 3600000
	minutes := millis / 60000
	millis %= 60000
	secs := millis / 1000
	millis %= 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
