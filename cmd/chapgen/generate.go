package main

import (
	"fmt"
	"os"

	"github.com/chapgen/chapgen/internal/config"
	"github.com/chapgen/chapgen/internal/index"
	"github.com/chapgen/chapgen/internal/keywords"
	"github.com/chapgen/chapgen/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func generateCmd() *cobra.Command {
	var flags pipelineFlags
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate <file.srt>",
		Short: "Generate chapters for one subtitle file",
		Long: `Runs the segmentation engine over one SRT file, prints the chapter
list, and writes two files into the output directory:
  <name>_chapters_youtube.txt   timestamps for a video description
  <name>_chapters_detailed.txt  full report for human review`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			result, err := processFile(cmd.Context(), db, cfg, keywords.NewRake(), args[0], flags.options(cfg))
			if err != nil {
				return err
			}

			// Styled report on a terminal, bare chapter lines for pipes
			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Print(report.Styled(result.Summary, result.Degraded, result.Reason))
			} else {
				fmt.Print(report.Linear(result.Summary))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory (default from config)")

	return cmd
}
