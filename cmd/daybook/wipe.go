// Wipe command deletes all journal data.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wipeConfirmed bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all data",
	Long: `Wipe removes every entry, journal, category, tag, and setting from
the database. Irreversible; requires --yes.`,
	RunE: runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeConfirmed, "yes", false, "confirm deletion of all data")
}

func runWipe(cmd *cobra.Command, args []string) error {
	if !wipeConfirmed {
		return fmt.Errorf("refusing to delete all data without --yes")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Clear(); err != nil {
		return err
	}
	fmt.Println("All data deleted")
	return nil
}
