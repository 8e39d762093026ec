package srt

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const maxLineSize = 1 * 1024 * 1024 // 1MB, single subtitle lines never get close

// ReadResult is the outcome of reading one SRT file.
type ReadResult struct {
	Cues    []Cue
	Skipped int // blocks dropped because of malformed timing or structure
}

// ReadFile parses an SRT file into ordered cues. Malformed blocks are
// counted and skipped rather than failing the file.
func ReadFile(path string) (*ReadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses SRT content from r. Blocks are separated by blank lines:
// an index line, a timing line, then one or more text lines. The index
// line is tolerated missing; text lines are joined with newlines.
func Read(r io.Reader) (*ReadResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	result := &ReadResult{}
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		cue, ok := parseBlock(block)
		if ok {
			result.Cues = append(result.Cues, cue)
		} else {
			result.Skipped++
		}
		block = block[:0]
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	return result, scanner.Err()
}

// parseBlock converts one subtitle block into a cue. The timing line is
// found by looking for the arrow separator so a missing index line still
// parses.
func parseBlock(lines []string) (Cue, bool) {
	timingIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			timingIdx = i
			break
		}
	}
	if timingIdx < 0 || timingIdx == len(lines)-1 {
		return Cue{}, false
	}

	start, end, err := ParseTiming(lines[timingIdx])
	if err != nil {
		return Cue{}, false
	}

	text := strings.TrimSpace(strings.Join(lines[timingIdx+1:], "\n"))
	if text == "" {
		return Cue{}, false
	}

	return Cue{Start: start, End: end, Text: text}, true
}
