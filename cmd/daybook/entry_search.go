// Entry search command runs the ranked full-text search.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var entrySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries",
	Long: `Search ranks entries against the query across titles, content, and
tags. Title matches rank above content matches, and close misspellings
still match.

Example:
  daybook entry search coffee
  daybook entry search "morning walk" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEntrySearch,
}

func runEntrySearch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	results := a.entries.Search(strings.Join(args, " "))
	if flagJSON {
		return printJSON(results)
	}
	printEntryTable(results, a.journalNames())
	return nil
}
