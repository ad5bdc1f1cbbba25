// Entry list command shows stored entries.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

var (
	listTag       string
	listCategory  string
	listFavorites bool
	listJournal   string
	listLimit     int
)

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	Long: `List shows entries newest first, optionally filtered.

Example:
  daybook entry list
  daybook entry list --tag work --limit 10
  daybook entry list --favorites --json`,
	RunE: runEntryList,
}

func init() {
	entryListCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag")
	entryListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	entryListCmd.Flags().StringVar(&listJournal, "journal", "", "filter by journal id")
	entryListCmd.Flags().BoolVar(&listFavorites, "favorites", false, "only favorites")
	entryListCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results (0 = no limit)")
}

func runEntryList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var entries []types.Entry
	switch {
	case listTag != "":
		entries = a.entries.ByTag(listTag)
	case listCategory != "":
		entries = a.entries.ByCategory(listCategory)
	case listFavorites:
		entries = a.entries.Favorites()
	default:
		entries = a.entries.Entries()
	}
	if listJournal != "" {
		kept := entries[:0]
		for _, e := range entries {
			if e.JournalID == listJournal {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	if listLimit > 0 && len(entries) > listLimit {
		entries = entries[:listLimit]
	}

	if flagJSON {
		return printJSON(entries)
	}
	printEntryTable(entries, a.journalNames())
	return nil
}

// printEntryTable prints entries in a human-readable table format.
func printEntryTable(entries []types.Entry, journals map[string]string) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDATE\tTITLE\tJOURNAL\tMOOD\tTAGS")
	for _, e := range entries {
		fav := ""
		if e.IsFavorite {
			fav = " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\t%s\t%s\t%s\n",
			shortID(e.ID),
			e.CreatedAt.Local().Format("2006-01-02"),
			e.DisplayTitle(), fav,
			journals[e.JournalID],
			moodNames[e.Mood],
			strings.Join(e.Tags, ","),
		)
	}
	w.Flush()
	fmt.Print(sb.String())
}
