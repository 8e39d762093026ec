package main

import (
	"fmt"
	"os"

	"github.com/chapgen/chapgen/internal/config"
	"github.com/chapgen/chapgen/internal/index"
	"github.com/chapgen/chapgen/internal/tokenize"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, analyzer, DB, and show stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			checkDir("Output dir", cfg.OutputDir)
			fmt.Printf("  Window: %.0fs  Keywords: %d  Title phrases: %d\n",
				cfg.WindowDuration, cfg.MaxKeywords, cfg.TitleMaxPhrases)

			fmt.Println("\n=== Analyzer ===")
			tok, err := tokenize.New()
			if err != nil {
				fmt.Printf("  Stopword set: FAILED (%v)\n", err)
				fmt.Println("  Pipelines will fall back to periodic boundaries.")
			} else {
				terms := tok.ContentTerms("The quick brown fox jumps over the lazy dog")
				fmt.Printf("  Stopword set: OK (sample kept %d of 9 words)\n", len(terms))
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'chapgen generate' first)")
				return nil
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			runCount, err := db.RunCount()
			if err != nil {
				return fmt.Errorf("count runs: %w", err)
			}
			chapterCount, err := db.ChapterCount()
			if err != nil {
				return fmt.Errorf("count chapters: %w", err)
			}

			fmt.Printf("  Runs:     %d\n", runCount)
			fmt.Printf("  Chapters: %d\n", chapterCount)

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("  Size:     %.1f MB\n", sizeMB)
			}

			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (will be created)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
