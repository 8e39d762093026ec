package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chapgen/chapgen/internal/config"
	"github.com/chapgen/chapgen/internal/keywords"
	"github.com/chapgen/chapgen/internal/pipeline"
	"github.com/chapgen/chapgen/internal/report"
	"github.com/chapgen/chapgen/internal/srt"
	"github.com/chapgen/chapgen/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func previewCmd() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "preview <file.srt>",
		Short: "Browse generated chapters interactively",
		Long: `Runs the segmentation engine over one SRT file and opens a browser:
chapters on the left, the selected chapter's segment text and keywords
on the right. Nothing is written to disk. Enter copies the YouTube
chapter block to the clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			parsed, err := srt.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if parsed.Skipped > 0 {
				fmt.Fprintf(os.Stderr, "  WARN: skipped %d malformed cues\n", parsed.Skipped)
			}

			result, err := pipeline.New(keywords.NewRake(), flags.options(cfg)).Run(cmd.Context(), parsed.Cues)
			if err != nil {
				return err
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Print(report.Detailed(result.Summary, result.Degraded, result.Reason))
				return nil
			}

			name := filepath.Base(args[0])
			return tui.Run(tui.ChapterItems(result, name))
		},
	}

	flags.register(cmd)

	return cmd
}
