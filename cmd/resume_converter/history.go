package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-converter/internal/db"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List stored conversions",
	Long:  `Lists conversions persisted to PostgreSQL. With --id, prints the stored resume data for one conversion as JSON instead.`,
	RunE:  runHistoryCmd,
}

var (
	historyLimit       int
	historyID          string
	historyDatabaseURL string
)

func init() {
	historyCommand.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum conversions to list (default 20)")
	historyCommand.Flags().StringVar(&historyID, "id", "", "Print the stored resume data for this conversion ID")
	historyCommand.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(historyCommand)
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("--db-url or DATABASE_URL is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if historyID != "" {
		return printStoredResume(ctx, database, historyID)
	}

	records, err := database.ListConversions(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	for _, record := range records {
		completed := "-"
		if record.CompletedAt != nil {
			completed = record.CompletedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%s  %-10s %-30s %4dms  errors=%d warnings=%d  %s\n",
			record.ID, record.Status, record.SourceName, record.DurationMS,
			len(record.Errors), len(record.Warnings), completed)
	}
	return nil
}

func printStoredResume(ctx context.Context, database *db.DB, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid conversion ID %q: %w", rawID, err)
	}

	data, err := database.GetResumeData(ctx, id)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("no resume data stored for conversion %s", id)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize resume data: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
