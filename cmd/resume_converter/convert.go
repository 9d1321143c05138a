package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-converter/internal/config"
	"github.com/jonathan/resume-converter/internal/converter"
)

var convertCommand = &cobra.Command{
	Use:   "convert",
	Short: "Convert one markdown resume into ATS-ready outputs",
	Long: `Parses a markdown resume, applies ATS normalization, and renders the requested output formats.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runConvertCmd,
}

var (
	convertConfigPath    string
	convertInput         string
	convertOutputDir     string
	convertFormats       []string
	convertMaxLineLength int
	convertBulletStyle   string
	convertStrict        bool
	convertSkipValidate  bool
	convertVerbose       bool
	convertDatabaseURL   string
)

func init() {
	// Config file flag (processed first)
	convertCommand.Flags().StringVar(&convertConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	convertCommand.Flags().StringVarP(&convertInput, "input", "i", "", "Path to the markdown resume")
	convertCommand.Flags().StringVarP(&convertOutputDir, "output-dir", "o", "", "Directory for generated files (defaults to the input's directory)")
	convertCommand.Flags().StringSliceVarP(&convertFormats, "formats", "f", nil, "Output formats: text, html, pdf, json")
	convertCommand.Flags().IntVar(&convertMaxLineLength, "max-line-length", 0, "Maximum output line length")
	convertCommand.Flags().StringVar(&convertBulletStyle, "bullet-style", "", "Bullet marker for text output (•, - or *)")
	convertCommand.Flags().BoolVar(&convertStrict, "strict", false, "Treat quality findings as errors")
	convertCommand.Flags().BoolVar(&convertSkipValidate, "skip-input-validation", false, "Skip pre-parse markdown structure checks")
	convertCommand.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for conversion history persistence
	convertCommand.Flags().StringVar(&convertDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(convertCommand)
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig(cmd, args)
	if err != nil {
		return err
	}

	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag, argument, or config)")
	}

	result, err := converter.Convert(context.Background(), cfg.Input, converterOptions(cfg))
	if err != nil {
		if result != nil && len(result.Findings.Errors) > 0 {
			fmt.Fprintf(os.Stderr, "Validation errors:\n  %s\n", strings.Join(result.Findings.Errors, "\n  "))
		}
		return err
	}

	if len(result.Findings.Warnings) > 0 && !cfg.Verbose {
		fmt.Printf("%d warning(s); re-run with --verbose for details\n", len(result.Findings.Warnings))
	}
	for _, path := range result.Outputs {
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// loadMergedConfig builds the effective config: config file first, explicit
// CLI flags override, defaults fill the rest.
func loadMergedConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	var cfg config.Config
	if convertConfigPath != "" {
		loaded, err := config.LoadConfig(convertConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if convertVerbose {
			fmt.Printf("Loaded config from: %s\n", convertConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = convertInput
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = convertOutputDir
	}
	if cmd.Flags().Changed("formats") {
		cfg.Formats = convertFormats
	}
	if cmd.Flags().Changed("max-line-length") {
		cfg.MaxLineLength = convertMaxLineLength
	}
	if cmd.Flags().Changed("bullet-style") {
		cfg.BulletStyle = convertBulletStyle
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = convertStrict
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = convertVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = convertDatabaseURL
	}

	// a bare positional argument is the input path
	if cfg.Input == "" && len(args) > 0 {
		cfg.Input = args[0]
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

func converterOptions(cfg config.Config) converter.Options {
	return converter.Options{
		Formats:             cfg.Formats,
		OutputDir:           cfg.OutputDir,
		Strict:              cfg.Strict,
		SkipInputValidation: convertSkipValidate,
		ATS:                 cfg.ATSConfig(),
		Verbose:             cfg.Verbose,
		DatabaseURL:         cfg.DatabaseURL,
	}
}
