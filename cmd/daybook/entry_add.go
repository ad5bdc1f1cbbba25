// Entry add command creates a new journal entry.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

var (
	addTitle    string
	addJournal  string
	addCategory string
	addMood     string
	addTags     []string
	addFavorite bool
)

var entryAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a new entry",
	Long: `Add creates a journal entry. Content is taken from the argument, or
from stdin when no argument is given. Without --journal the entry lands in
the default journal.

Example:
  daybook entry add "Slept in, long walk by the river."
  daybook entry add --title "Standup notes" --mood happy --tag work < notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEntryAdd,
}

func init() {
	entryAddCmd.Flags().StringVar(&addTitle, "title", "", "entry title")
	entryAddCmd.Flags().StringVar(&addJournal, "journal", "", "journal id (default: the default journal)")
	entryAddCmd.Flags().StringVar(&addCategory, "category", "", "category name")
	entryAddCmd.Flags().StringVar(&addMood, "mood", "", "mood (very-sad, sad, neutral, happy, very-happy)")
	entryAddCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag (repeatable)")
	entryAddCmd.Flags().BoolVar(&addFavorite, "favorite", false, "mark as favorite")
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	var content string
	if len(args) == 1 {
		content = args[0]
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = strings.TrimRight(string(raw), "\n")
	}

	mood := types.MoodUnset
	if addMood != "" {
		m, ok := moodValues[addMood]
		if !ok {
			return fmt.Errorf("unknown mood %q", addMood)
		}
		mood = m
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	journalID := addJournal
	if journalID == "" {
		def, err := a.journals.DefaultJournal()
		if err != nil {
			return err
		}
		journalID = def.ID
	} else if _, err := a.journals.Journal(journalID); err != nil {
		return err
	}

	id, err := a.entries.Add(types.EntryDraft{
		JournalID:  journalID,
		Title:      addTitle,
		Content:    content,
		Mood:       mood,
		Category:   addCategory,
		Tags:       addTags,
		IsFavorite: addFavorite,
	})
	if err != nil {
		return err
	}
	if err := a.journals.TouchLastUsed(journalID); err != nil {
		return err
	}

	if flagJSON {
		e, err := a.entries.Entry(id)
		if err != nil {
			return err
		}
		return printJSON(e)
	}
	fmt.Printf("Entry %s added\n", shortID(id))
	return nil
}
