package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-converter/internal/config"
	"github.com/jonathan/resume-converter/internal/converter"
)

var batchCommand = &cobra.Command{
	Use:   "batch [files or globs]",
	Short: "Convert many markdown resumes concurrently",
	Long: `Converts every given markdown file with a bounded worker pool. Glob patterns are expanded; per-file failures are reported at the end without aborting the batch.

Configuration can be loaded from a JSON file using --config; command-line arguments override config file values. Interrupting the run stops new conversions; in-flight ones finish.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatchCmd,
}

var (
	batchConfigPath    string
	batchOutputDir     string
	batchFormats       []string
	batchWorkers       int
	batchStrict        bool
	batchMaxLineLength int
	batchBulletStyle   string
	batchDatabaseURL   string
)

func init() {
	// Config file flag (processed first)
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCommand.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "Directory for generated files")
	batchCommand.Flags().StringSliceVarP(&batchFormats, "formats", "f", nil, "Output formats: text, html, pdf, json")
	batchCommand.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent conversions (default 4)")
	batchCommand.Flags().BoolVar(&batchStrict, "strict", false, "Treat quality findings as errors")
	batchCommand.Flags().IntVar(&batchMaxLineLength, "max-line-length", 0, "Maximum output line length")
	batchCommand.Flags().StringVar(&batchBulletStyle, "bullet-style", "", "Bullet marker for text output (•, - or *)")
	batchCommand.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadBatchConfig(cmd)
	if err != nil {
		return err
	}

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files matched")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Converting %d file(s)...\n", len(inputs))
	summary := converter.ConvertBatch(ctx, inputs, cfg.Workers, converter.Options{
		Formats:     cfg.Formats,
		OutputDir:   cfg.OutputDir,
		Strict:      cfg.Strict,
		ATS:         cfg.ATSConfig(),
		DatabaseURL: cfg.DatabaseURL,
	})

	for _, item := range summary.Items {
		if item.Err != nil {
			fmt.Printf("FAIL %s: %v\n", item.Input, item.Err)
			continue
		}
		fmt.Printf("OK   %s (%d file(s), %s)\n", item.Input, len(item.Result.Outputs),
			item.Result.Duration.Round(time.Millisecond))
	}
	fmt.Printf("Done: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", summary.Failed, len(inputs))
	}
	return nil
}

// loadBatchConfig builds the effective batch config: config file first,
// explicit CLI flags override, defaults fill the rest. Inputs come from the
// positional arguments, never from the config file.
func loadBatchConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if batchConfigPath != "" {
		loaded, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		cfg.Input = ""
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = batchOutputDir
	}
	if cmd.Flags().Changed("formats") {
		cfg.Formats = batchFormats
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = batchStrict
	}
	if cmd.Flags().Changed("max-line-length") {
		cfg.MaxLineLength = batchMaxLineLength
	}
	if cmd.Flags().Changed("bullet-style") {
		cfg.BulletStyle = batchBulletStyle
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Formats: config.DefaultFormats(),
	})

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// expandInputs resolves glob patterns and deduplicates while keeping order
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	seen := make(map[string]bool)
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if matches == nil {
			matches = []string{arg}
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				inputs = append(inputs, match)
			}
		}
	}
	return inputs, nil
}
