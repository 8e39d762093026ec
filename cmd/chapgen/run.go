package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chapgen/chapgen/internal/config"
	"github.com/chapgen/chapgen/internal/index"
	"github.com/chapgen/chapgen/internal/keywords"
	"github.com/chapgen/chapgen/internal/pipeline"
	"github.com/chapgen/chapgen/internal/report"
	"github.com/chapgen/chapgen/internal/srt"
	"github.com/spf13/cobra"
)

// pipelineFlags are the per-run overrides shared by generate, batch and
// preview. Zero values fall back to the config file, then to defaults.
type pipelineFlags struct {
	window      float64
	maxKeywords int
	maxPhrases  int
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.window, "window", 0, "Analysis window in seconds (default from config, 90)")
	cmd.Flags().IntVar(&f.maxKeywords, "keywords", 0, "Keyphrases extracted per segment (default from config, 5)")
	cmd.Flags().IntVar(&f.maxPhrases, "title-phrases", 0, "Keyphrases considered per title (default from config, 3)")
}

func (f *pipelineFlags) options(cfg *config.Config) pipeline.Options {
	opts := pipeline.Options{
		WindowDuration:  cfg.WindowDuration,
		MaxKeywords:     cfg.MaxKeywords,
		TitleMaxPhrases: cfg.TitleMaxPhrases,
	}
	if f.window > 0 {
		opts.WindowDuration = f.window
	}
	if f.maxKeywords > 0 {
		opts.MaxKeywords = f.maxKeywords
	}
	if f.maxPhrases > 0 {
		opts.TitleMaxPhrases = f.maxPhrases
	}
	return opts
}

// processFile runs the whole pipeline for one subtitle file: parse,
// segment, annotate, assemble, write both report files, and record the
// run in the index. The extractor is shared across calls so its lazily
// loaded state is reused in batch mode.
func processFile(ctx context.Context, db *index.DB, cfg *config.Config, extractor keywords.Extractor, path string, opts pipeline.Options) (*pipeline.Result, error) {
	parsed, err := srt.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if parsed.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "  WARN: %s: skipped %d malformed cues\n", filepath.Base(path), parsed.Skipped)
	}

	result, err := pipeline.New(extractor, opts).Run(ctx, parsed.Cues)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}
	if result.Degraded {
		fmt.Fprintf(os.Stderr, "  WARN: %s: low-confidence chapters (%s)\n", filepath.Base(path), result.Reason)
	}

	name := outputName(path)
	if _, _, err := report.WriteFiles(cfg.OutputDir, name, result.Summary, result.Degraded, result.Reason); err != nil {
		return nil, err
	}

	if db != nil {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if err := index.SaveRun(db, path, name, info.ModTime().Unix(), info.Size(), result); err != nil {
			return nil, fmt.Errorf("record run %s: %w", path, err)
		}
	}

	return result, nil
}

func outputName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
