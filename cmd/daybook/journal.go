// Journal command group: create, list, set-default, delete, transfer.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journals",
}

func init() {
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalSetDefaultCmd)
	journalCmd.AddCommand(journalDeleteCmd)
	journalCmd.AddCommand(journalTransferCmd)
}

var (
	journalAddColor   string
	journalAddIcon    string
	journalAddTheme   string
	journalAddDefault bool
)

var journalAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := a.journals.Add(types.JournalDraft{
			Name:      args[0],
			Color:     journalAddColor,
			Icon:      journalAddIcon,
			Theme:     journalAddTheme,
			IsDefault: journalAddDefault,
		})
		if err != nil {
			return err
		}
		if flagJSON {
			j, err := a.journals.Journal(id)
			if err != nil {
				return err
			}
			return printJSON(j)
		}
		fmt.Printf("Journal %s created\n", shortID(id))
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringVar(&journalAddColor, "color", "", "hex color, e.g. #10B981")
	journalAddCmd.Flags().StringVar(&journalAddIcon, "icon", "", "icon")
	journalAddCmd.Flags().StringVar(&journalAddTheme, "theme", "", "theme (solid, gradient, dots, grid, waves, stripes, paper, texture)")
	journalAddCmd.Flags().BoolVar(&journalAddDefault, "default", false, "make this the default journal")
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journals with entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		js := a.journals.Journals()
		if flagJSON {
			return printJSON(js)
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tENTRIES\tDEFAULT")
		for _, j := range js {
			def := ""
			if j.IsDefault {
				def = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", shortID(j.ID), j.Name, j.EntryCount, def)
		}
		w.Flush()
		fmt.Print(sb.String())
		return nil
	},
}

var journalSetDefaultCmd = &cobra.Command{
	Use:   "set-default <journal-id>",
	Short: "Make a journal the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		j, err := findJournal(a, args[0])
		if err != nil {
			return err
		}
		if err := a.journals.SetDefault(j.ID); err != nil {
			return err
		}
		fmt.Printf("Journal %q is now the default\n", j.Name)
		return nil
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <journal-id>",
	Short: "Delete a journal and all its entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		j, err := findJournal(a, args[0])
		if err != nil {
			return err
		}
		if err := a.journals.Delete(j.ID); err != nil {
			return err
		}
		fmt.Printf("Journal %q deleted\n", j.Name)
		return nil
	},
}

var journalTransferCmd = &cobra.Command{
	Use:   "transfer <from-journal-id> <to-journal-id>",
	Short: "Move every entry from one journal to another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		from, err := findJournal(a, args[0])
		if err != nil {
			return err
		}
		to, err := findJournal(a, args[1])
		if err != nil {
			return err
		}
		if err := a.journals.TransferEntries(from.ID, to.ID); err != nil {
			return err
		}
		fmt.Printf("Entries moved from %q to %q\n", from.Name, to.Name)
		return nil
	},
}

// findJournal resolves a journal by full id or unique id prefix.
func findJournal(a *app, id string) (types.Journal, error) {
	if j, err := a.journals.Journal(id); err == nil {
		return j, nil
	}

	var matches []types.Journal
	for _, j := range a.journals.Journals() {
		if strings.HasPrefix(j.ID, id) {
			matches = append(matches, j)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return types.Journal{}, fmt.Errorf("journal %s: %w", id, types.ErrNotFound)
	default:
		return types.Journal{}, fmt.Errorf("journal id %q is ambiguous (%d matches)", id, len(matches))
	}
}
