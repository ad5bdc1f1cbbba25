// Entry delete command removes an entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryDelete,
}

func runEntryDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := findEntry(a, args[0])
	if err != nil {
		return err
	}
	if err := a.entries.Delete(e.ID); err != nil {
		return err
	}
	fmt.Printf("Entry %s deleted\n", shortID(e.ID))
	return nil
}
