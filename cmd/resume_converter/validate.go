package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-converter/internal/observability"
	"github.com/jonathan/resume-converter/internal/parsing"
	"github.com/jonathan/resume-converter/internal/schemas"
	"github.com/jonathan/resume-converter/internal/validation"
)

var validateCommand = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a resume without converting it",
	Long: `Checks a markdown resume for structural and quality problems and prints a report. Passing a .json file validates it against the resume data schema instead.

Exits non-zero when errors are found; warnings alone succeed.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateCmd,
}

var (
	validateStrict  bool
	validateVerbose bool
)

func init() {
	validateCommand.Flags().BoolVar(&validateStrict, "strict", false, "Treat quality findings as errors")
	validateCommand.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print the parsed resume summary as well")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, args []string) error {
	input := args[0]

	if strings.HasSuffix(strings.ToLower(input), ".json") {
		return runValidateJSON(input)
	}

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", input, err)
	}

	printer := observability.NewPrinter(os.Stdout)

	result := validation.ValidateMarkdownStructure(string(content))
	if !result.Valid {
		printer.PrintValidationReport(result)
		return fmt.Errorf("resume failed structural validation")
	}

	parser := parsing.NewParser(parsing.Options{
		SkipInputValidation: true,
		Strict:              validateStrict,
	})
	data, findings, err := parser.ParseWithWarnings(string(content))
	if err != nil {
		printer.PrintValidationReport(findings)
		return err
	}

	result.Merge(findings)
	printer.PrintValidationReport(result)
	if validateVerbose {
		printer.PrintResumeSummary(data)
	}

	if !result.Valid {
		return fmt.Errorf("resume failed validation with %d error(s)", len(result.Errors))
	}
	return nil
}

func runValidateJSON(input string) error {
	if err := schemas.ValidateJSONFile(input); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	fmt.Printf("%s conforms to the resume data schema\n", input)
	return nil
}
