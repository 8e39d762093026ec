package srt

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write renders cues as SRT blocks: 1-based index, full timing line,
// text, blank-line separated.
func Write(w io.Writer, cues []Cue) error {
	bw := bufio.NewWriter(w)
	for i, c := range cues {
		fmt.Fprintf(bw, "%d\n", i+1)
		fmt.Fprintf(bw, "%s --> %s\n", formatTiming(c.Start), formatTiming(c.End))
		fmt.Fprintf(bw, "%s\n\n", c.Text)
	}
	return bw.Flush()
}

// WriteFile writes cues to path in SRT format.
func WriteFile(path string, cues []Cue) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, cues); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
