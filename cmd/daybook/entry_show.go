// Entry show command prints one entry in full.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var entryShowCmd = &cobra.Command{
	Use:   "show <entry-id>",
	Short: "Show a single entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryShow,
}

func runEntryShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := findEntry(a, args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(e)
	}

	fmt.Println(e.DisplayTitle())
	fmt.Println(e.CreatedAt.Local().Format("2006-01-02 15:04"))
	if name := a.journalNames()[e.JournalID]; name != "" {
		fmt.Printf("Journal: %s\n", name)
	}
	if mood := moodNames[e.Mood]; mood != "" {
		fmt.Printf("Mood: %s\n", mood)
	}
	if e.Category != "" {
		fmt.Printf("Category: %s\n", e.Category)
	}
	if len(e.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(e.Tags, ", "))
	}
	fmt.Printf("\n%s\n", e.Content)
	return nil
}
