// Stats command reports journaling statistics.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journaling statistics",
	Long: `Stats reports totals, the current daily streak, and entries written
on this date in earlier years.`,
	RunE: runStats,
}

// statsReport is the JSON shape of the stats command output.
type statsReport struct {
	Entries       int   `json:"entries"`
	Journals      int   `json:"journals"`
	WordsWritten  int   `json:"wordsWritten"`
	CurrentStreak int   `json:"currentStreak"`
	DaysJournaled int   `json:"daysJournaled"`
	OnThisDay     int   `json:"onThisDay"`
	DatabaseBytes int64 `json:"databaseBytes"`
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	entries := a.entries.Entries()
	words := 0
	for _, e := range entries {
		words += e.WordCount
	}
	size, err := a.store.EstimateSize()
	if err != nil {
		return err
	}

	report := statsReport{
		Entries:       len(entries),
		Journals:      len(a.journals.Journals()),
		WordsWritten:  words,
		CurrentStreak: a.entries.CurrentStreak(),
		DaysJournaled: a.entries.DaysJournaled(),
		OnThisDay:     len(a.entries.OnThisDay()),
		DatabaseBytes: size,
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Printf("Entries:        %d\n", report.Entries)
	fmt.Printf("Journals:       %d\n", report.Journals)
	fmt.Printf("Words written:  %d\n", report.WordsWritten)
	fmt.Printf("Current streak: %d day(s)\n", report.CurrentStreak)
	fmt.Printf("Days journaled: %d\n", report.DaysJournaled)
	fmt.Printf("On this day:    %d\n", report.OnThisDay)
	fmt.Printf("Database size:  %d bytes\n", report.DatabaseBytes)
	return nil
}
