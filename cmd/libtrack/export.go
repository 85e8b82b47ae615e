package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [yaml|json]",
	Short: "Export the catalog and issued records",
	Long: `Export the whole library as YAML (default) or JSON.

Every book is listed with the student holding it, followed by the books
held by each student. This is a one-way export for viewing and sharing.

Examples:
  libtrack export
  libtrack export json > library.json`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"yaml", "json"},
	RunE:      runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := "yaml"
	if len(args) == 1 {
		format = args[0]
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	snap := lib.Snapshot()
	var data []byte
	switch format {
	case "json":
		data, err = snap.EncodeJSON()
	default:
		data, err = snap.EncodeYAML()
	}
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
