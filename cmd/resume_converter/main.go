// Package main provides the entry point for the resume converter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_converter",
	Short: "Markdown resume to ATS-ready document converter",
	Long:  "Resume Converter parses markdown resumes into structured data, normalizes them for applicant tracking systems, and renders text, HTML, PDF, and JSON outputs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
