// Entry favorite command toggles the favorite flag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entryFavoriteCmd = &cobra.Command{
	Use:   "favorite <entry-id>",
	Short: "Toggle an entry's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryFavorite,
}

func runEntryFavorite(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := findEntry(a, args[0])
	if err != nil {
		return err
	}
	if err := a.entries.ToggleFavorite(e.ID); err != nil {
		return err
	}

	e, err = a.entries.Entry(e.ID)
	if err != nil {
		return err
	}
	if e.IsFavorite {
		fmt.Printf("Entry %s marked favorite\n", shortID(e.ID))
	} else {
		fmt.Printf("Entry %s unmarked\n", shortID(e.ID))
	}
	return nil
}
