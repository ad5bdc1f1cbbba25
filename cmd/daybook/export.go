// Export and import commands move snapshots in and out of the store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/internal/export"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal",
	Long: `Export writes the journal to stdout or a file. The json format is a
complete snapshot that import accepts back; csv, markdown, and text are
one-way renderings of the entries.

Example:
  daybook export --out backup.json
  daybook export --format csv --out entries.csv`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, csv, markdown, text)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var out string
	switch exportFormat {
	case "json":
		data, err := export.NewCodec(a.store, a.log).ExportJSON()
		if err != nil {
			return err
		}
		out = string(data)
	case "csv":
		if out, err = export.RenderCSV(a.entries.Entries()); err != nil {
			return err
		}
	case "markdown":
		out = export.RenderMarkdown(a.entries.Entries())
	case "text":
		out = export.RenderText(a.entries.Entries())
	default:
		return fmt.Errorf("unknown format %q (want json, csv, markdown, or text)", exportFormat)
	}

	if exportOut == "" {
		fmt.Print(out)
		if out != "" && out[len(out)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported to %s\n", exportOut)
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a journal snapshot",
	Long: `Import restores entries, journals, categories, tags, and settings
from a JSON export. Records are merged by id; nothing is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := export.NewCodec(a.store, a.log).ImportJSON(data); err != nil {
		return err
	}
	// Reload so the confirmation reflects the imported records.
	if err := a.entries.Load(); err != nil {
		return err
	}
	if err := a.journals.Load(); err != nil {
		return err
	}
	fmt.Printf("Imported %d entries across %d journals\n",
		len(a.entries.Entries()), len(a.journals.Journals()))
	return nil
}
