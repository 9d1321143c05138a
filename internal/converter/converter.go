// Package converter provides the high-level orchestration for turning a
// markdown resume into ATS-ready output documents.
package converter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-converter/internal/db"
	"github.com/jonathan/resume-converter/internal/formatting"
	"github.com/jonathan/resume-converter/internal/observability"
	"github.com/jonathan/resume-converter/internal/parsing"
	"github.com/jonathan/resume-converter/internal/rendering"
	"github.com/jonathan/resume-converter/internal/schemas"
	"github.com/jonathan/resume-converter/internal/types"
)

// Options holds configuration for running a conversion
type Options struct {
	Formats             []string
	OutputDir           string
	Strict              bool
	SkipInputValidation bool
	ATS                 formatting.ATSConfig
	PDFTimeout          time.Duration
	Verbose             bool
	DatabaseURL         string
	Quiet               bool // suppress step progress output (batch mode)
}

// Result is the outcome of one conversion
type Result struct {
	ID       uuid.UUID
	Source   string
	Data     *types.ResumeData
	Findings types.ValidationResult
	Outputs  []string
	Duration time.Duration
}

// Convert runs the full pipeline for one input file: parse, validate,
// format, render each requested output, and optionally persist the run.
func Convert(ctx context.Context, inputPath string, opts Options) (*Result, error) {
	started := time.Now()
	result := &Result{ID: uuid.New(), Source: inputPath}
	printer := observability.NewPrinter(os.Stdout)

	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{"text", "html"}
	}

	// Initialize database connection if configured
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: %v\n", err)
				database.Close()
				database = nil
			}
		}
	}
	var conversionID uuid.UUID
	if database != nil {
		var err error
		conversionID, err = database.CreateConversion(ctx, filepath.Base(inputPath))
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
			database = nil
		}
	}

	finish := func(status string, findings types.ValidationResult) {
		result.Duration = time.Since(started)
		if database != nil {
			formatNames := append([]string{}, formats...)
			if err := database.CompleteConversion(ctx, conversionID, status,
				findings.Errors, findings.Warnings, formatNames, result.Duration); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}
		}
	}

	step := func(n int, format string, args ...any) {
		if !opts.Quiet {
			fmt.Printf("Step %d/5: %s\n", n, fmt.Sprintf(format, args...))
		}
	}

	// Step 1: Read input
	step(1, "Reading %s...", inputPath)
	source, err := os.ReadFile(inputPath)
	if err != nil {
		finish("failed", result.Findings)
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	// Step 2: Parse and validate
	step(2, "Parsing markdown resume...")
	parser := parsing.NewParser(parsing.Options{
		SkipInputValidation: opts.SkipInputValidation,
		Strict:              opts.Strict,
	})
	data, findings, err := parser.ParseWithWarnings(string(source))
	result.Findings = findings
	if err != nil {
		finish("failed", findings)
		return nil, err
	}
	result.Data = data
	if len(findings.Errors) > 0 {
		finish("failed", findings)
		return result, &parsing.InvalidMarkdownError{
			Kind:      parsing.KindValidation,
			Component: "Converter",
			Message:   strings.Join(findings.Errors, "; "),
		}
	}
	if opts.Verbose {
		printer.PrintResumeSummary(data)
		printer.PrintValidationReport(findings)
	}

	// Step 3: Format for ATS compliance
	step(3, "Applying ATS formatting...")
	formatted, err := formatting.NewFormatter(opts.ATS).FormatResume(data)
	if err != nil {
		finish("failed", result.Findings)
		return result, err
	}
	if database != nil {
		if err := database.SaveResumeData(ctx, conversionID, formatted); err != nil {
			fmt.Printf("Warning: %v\n", err)
		}
	}

	// Step 4: Render outputs
	step(4, "Rendering outputs (%s)...", strings.Join(formats, ", "))
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			finish("failed", result.Findings)
			return result, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	outputs, renderFindings, err := renderOutputs(ctx, formatted, formats, inputPath, opts, database, conversionID)
	result.Findings.Merge(renderFindings)
	result.Outputs = outputs
	if err != nil {
		finish("failed", result.Findings)
		return result, err
	}

	// Step 5: Report
	step(5, "Done: %d file(s) in %s", len(outputs), time.Since(started).Round(time.Millisecond))
	if opts.Verbose {
		printer.PrintOutputs(outputs)
	}

	finish("completed", result.Findings)
	return result, nil
}

// renderOutputs produces every requested format. HTML is rendered once and
// shared by the pdf output; a rendered document that fails output validation
// aborts the conversion.
func renderOutputs(ctx context.Context, data *types.ResumeData, formats []string, inputPath string, opts Options, database *db.DB, conversionID uuid.UUID) ([]string, types.ValidationResult, error) {
	var findings types.ValidationResult
	findings.Valid = true

	needsHTML := false
	for _, format := range formats {
		if format == "html" || format == "pdf" {
			needsHTML = true
		}
	}

	var html string
	if needsHTML {
		var err error
		html, err = rendering.RenderHTML(data)
		if err != nil {
			return nil, findings, err
		}
		check := rendering.ValidateHTMLOutput(html, data)
		findings.Merge(check)
		if !check.Valid {
			return nil, findings, &rendering.RenderError{
				Message: "rendered HTML failed output validation: " + strings.Join(check.Errors, "; "),
			}
		}
	}

	var outputs []string
	write := func(format, extension string, content []byte) error {
		path := outputPath(inputPath, opts.OutputDir, extension)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s output: %w", format, err)
		}
		outputs = append(outputs, path)
		if database != nil {
			if err := database.SaveOutput(ctx, conversionID, format, content); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}
		}
		return nil
	}

	for _, format := range formats {
		switch format {
		case "text":
			text, err := rendering.RenderText(data, opts.ATS)
			if err != nil {
				return outputs, findings, err
			}
			if err := write("text", ".txt", []byte(text)); err != nil {
				return outputs, findings, err
			}
		case "html":
			if err := write("html", ".html", []byte(html)); err != nil {
				return outputs, findings, err
			}
		case "pdf":
			pdf, err := rendering.RenderPDF(ctx, html, opts.PDFTimeout)
			if err != nil {
				return outputs, findings, err
			}
			if err := write("pdf", ".pdf", pdf); err != nil {
				return outputs, findings, err
			}
		case "json":
			if err := schemas.ValidateResumeData(data); err != nil {
				return outputs, findings, err
			}
			encoded, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return outputs, findings, fmt.Errorf("failed to serialize resume data: %w", err)
			}
			if err := write("json", ".json", encoded); err != nil {
				return outputs, findings, err
			}
		default:
			return outputs, findings, fmt.Errorf("unknown output format %q", format)
		}
	}

	return outputs, findings, nil
}

// outputPath derives the output file path from the input name. An empty
// output directory writes next to the input.
func outputPath(inputPath, outputDir, extension string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outputDir, base+extension)
}
