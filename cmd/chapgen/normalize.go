package main

import (
	"fmt"
	"os"

	"github.com/chapgen/chapgen/internal/srt"
	"github.com/spf13/cobra"
)

func normalizeCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "normalize <file.srt>",
		Short: "Re-emit a subtitle file with malformed cues dropped",
		Long: `Parses an SRT file the same way the pipeline does, drops malformed
blocks, renumbers the cues, and writes clean SRT to stdout or --output.
Useful before sharing a file that generate warned about.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := srt.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if parsed.Skipped > 0 {
				fmt.Fprintf(os.Stderr, "  WARN: dropped %d malformed cues\n", parsed.Skipped)
			}
			if len(parsed.Cues) == 0 {
				return fmt.Errorf("no valid cues in %s", args[0])
			}

			if outPath == "" {
				return srt.Write(os.Stdout, parsed.Cues)
			}
			if err := srt.WriteFile(outPath, parsed.Cues); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %d cues to %s\n", len(parsed.Cues), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
