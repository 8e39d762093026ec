package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chapgen/chapgen/internal/config"
	"github.com/chapgen/chapgen/internal/index"
	"github.com/chapgen/chapgen/internal/keywords"
	"github.com/chapgen/chapgen/internal/scan"
	"github.com/spf13/cobra"
)

type batchStats struct {
	Scanned   int
	Processed int
	Skipped   int
	Errors    int
}

func (s batchStats) String() string {
	return fmt.Sprintf("scanned=%d processed=%d skipped=%d errors=%d",
		s.Scanned, s.Processed, s.Skipped, s.Errors)
}

func batchCmd() *cobra.Command {
	var flags pipelineFlags
	var recursive, force bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "batch <path>...",
		Short: "Generate chapters for many subtitle files",
		Long: `Resolves files and directories into SRT files and processes each.
Files whose size and mtime are unchanged since the last run are skipped
unless --force is given.`,
		Args: cobra.MinimumNArgs(1),
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

			files, missing, err := scan.FindSubtitles(args, recursive)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			for _, m := range missing {
				fmt.Fprintf(os.Stderr, "  WARN: not a subtitle file: %s\n", m)
			}
			if len(files) == 0 {
				fmt.Fprintln(os.Stderr, "No subtitle files found.")
				return nil
			}

			opts := flags.options(cfg)
			extractor := keywords.NewRake()
			var stats batchStats
			stats.Scanned = len(files)

			for i, path := range files {
				name := filepath.Base(path)
				info, err := os.Stat(path)
				if err != nil {
					stats.Errors++
					fmt.Fprintf(os.Stderr, "  WARN: stat %s: %v\n", path, err)
					continue
				}

				if !force {
					needs, err := index.NeedsUpdate(db, path, info.ModTime().Unix(), info.Size())
					if err != nil {
						stats.Errors++
						continue
					}
					if !needs {
						stats.Skipped++
						fmt.Fprintf(os.Stderr, "[%d/%d] %s (unchanged, skipped)\n", i+1, len(files), name)
						continue
					}
				}

				fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", i+1, len(files), name)
				result, err := processFile(cmd.Context(), db, cfg, extractor, path, opts)
				if err != nil {
					stats.Errors++
					fmt.Fprintf(os.Stderr, "  WARN: %v\n", err)
					continue
				}
				stats.Processed++
				fmt.Fprintf(os.Stderr, "  %d chapters, %d segments\n",
					result.Summary.TotalChapters, len(result.Segments))
			}

			fmt.Fprintf(os.Stderr, "Done. %s\n", stats)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recurse into directories")
	cmd.Flags().BoolVar(&force, "force", false, "Reprocess files even when unchanged")
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory (default from config)")

	return cmd
}
