package main

import (
	"fmt"
	"os"

	"github.com/chapgen/chapgen/internal/config"
	"github.com/chapgen/chapgen/internal/index"
	"github.com/chapgen/chapgen/internal/srt"
	"github.com/chapgen/chapgen/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Browse previously generated chapter runs",
		Long:  `Opens a browser over all recorded runs, newest first. Type to filter by file name. Pipe-friendly TSV output when stdout is not a terminal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			if term.IsTerminal(int(os.Stdout.Fd())) {
				items, err := tui.RunItems(db)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintln(os.Stderr, "No runs recorded yet. Run 'chapgen generate' first.")
					return nil
				}
				return tui.Run(items)
			}

			runs, err := db.ListRuns()
			if err != nil {
				return err
			}
			for _, r := range runs {
				degraded := ""
				if r.Degraded {
					degraded = "low-confidence"
				}
				fmt.Printf("%s\t%s\t%d\t%s\t%s\n",
					r.Path, r.ProcessedAt, r.ChapterCount,
					srt.FormatTimestamp(r.Duration), degraded)
			}
			return nil
		},
	}
}
